// seed genera un script SQL con datos demo (empresa, almacén, sucursal,
// usuario admin) y el catálogo de productos a partir de un CSV exportado del
// ERP en ISO-8859-1 (separador ';': codigo_sku;nombre;precio;cantidad;stock_minimo;stock_maximo).
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
// El password del admin se toma de SEED_ADMIN_PASSWORD (default "Cambiar123!").
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/andescloud/inventario-service/pkg/nit"
)

const (
	demoCompanyID   = 1
	demoWarehouseID = 1
	demoBranchID    = 1
	demoNITBase     = "900123456" // el dígito de verificación se calcula al generar
	adminEmail      = "admin@demo.local"
)

type productRow struct {
	sku      string
	nombre   string
	precio   decimal.Decimal
	cantidad decimal.Decimal
	stockMin decimal.Decimal
	stockMax decimal.Decimal
}

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exportes del ERP vienen en ISO-8859-1 con ';' como separador
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var products []productRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "codigo_sku") {
			continue // encabezado
		}
		if len(rec) < 6 || rec[0] == "" || rec[1] == "" {
			continue
		}
		p := productRow{sku: strings.TrimSpace(rec[0]), nombre: strings.TrimSpace(rec[1])}
		if p.precio, err = parseDecimal(rec[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q\n", i+1, rec[2])
			os.Exit(1)
		}
		if p.cantidad, err = parseDecimal(rec[3]); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: cantidad inválida %q\n", i+1, rec[3])
			os.Exit(1)
		}
		if p.stockMin, err = parseDecimal(rec[4]); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: stock_minimo inválido %q\n", i+1, rec[4])
			os.Exit(1)
		}
		if p.stockMax, err = parseDecimal(rec[5]); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: stock_maximo inválido %q\n", i+1, rec[5])
			os.Exit(1)
		}
		products = append(products, p)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "Cambiar123!"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos demo: empresa, ubicaciones, usuario admin y catálogo de productos\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	// 1. Empresa y ubicaciones con IDs fijos
	out.WriteString("-- 1. Empresa demo\n")
	fmt.Fprintf(out, "INSERT INTO empresas (id_empresa, nombre, nit, estado) VALUES\n")
	fmt.Fprintf(out, "  (%d, 'Distribuidora Andes SAS', '%s', 'activa')\n", demoCompanyID, nit.Format(demoNITBase))
	out.WriteString("ON CONFLICT (id_empresa) DO NOTHING;\n")
	out.WriteString("SELECT setval('empresas_id_empresa_seq', GREATEST((SELECT MAX(id_empresa) FROM empresas), 1));\n\n")

	out.WriteString("-- 2. Almacén y sucursal demo\n")
	fmt.Fprintf(out, "INSERT INTO almacenes (id_almacen, empresas_id_empresa, nombre, direccion) VALUES\n")
	fmt.Fprintf(out, "  (%d, %d, 'Bodega Central', 'Parque Industrial, Bodega 12')\n", demoWarehouseID, demoCompanyID)
	out.WriteString("ON CONFLICT (id_almacen) DO NOTHING;\n")
	out.WriteString("SELECT setval('almacenes_id_almacen_seq', GREATEST((SELECT MAX(id_almacen) FROM almacenes), 1));\n\n")

	fmt.Fprintf(out, "INSERT INTO sucursales (id_sucursal, empresas_id_empresa, nombre, direccion) VALUES\n")
	fmt.Fprintf(out, "  (%d, %d, 'Punto de Venta Centro', 'Calle 10 # 5-31')\n", demoBranchID, demoCompanyID)
	out.WriteString("ON CONFLICT (id_sucursal) DO NOTHING;\n")
	out.WriteString("SELECT setval('sucursales_id_sucursal_seq', GREATEST((SELECT MAX(id_sucursal) FROM sucursales), 1));\n\n")

	// 3. Usuario admin con hash bcrypt real
	out.WriteString("-- 3. Usuario admin\n")
	fmt.Fprintf(out, "INSERT INTO usuarios (id, empresas_id_empresa, email, password_hash, nombre, rol, estado) VALUES\n")
	fmt.Fprintf(out, "  ('%s', %d, '%s', '%s', 'Administrador Demo', 'admin', 'active')\n",
		uuid.New().String(), demoCompanyID, adminEmail, string(hash))
	out.WriteString("ON CONFLICT (empresas_id_empresa, email) DO NOTHING;\n\n")

	// 4. Catálogo de productos (upsert por SKU)
	out.WriteString("-- 4. Productos\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO productos (empresas_id_empresa, codigo_sku, nombre, precio)\n")
		fmt.Fprintf(out, "VALUES (%d, '%s', '%s', %s)\n", demoCompanyID, escapeSQL(p.sku), escapeSQL(p.nombre), p.precio.String())
		out.WriteString("ON CONFLICT (empresas_id_empresa, codigo_sku) DO UPDATE SET nombre = EXCLUDED.nombre, precio = EXCLUDED.precio;\n")
	}
	out.WriteString("\n")

	// 5. Inventario inicial del almacén demo, referenciando productos por SKU
	out.WriteString("-- 5. Inventario inicial (Bodega Central)\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO almacen_inventario (productos_id_producto, almacenes_id_almacen, cantidad, stock_minimo, stock_maximo)\n")
		fmt.Fprintf(out, "SELECT id_producto, %d, %s, %s, %s FROM productos WHERE codigo_sku = '%s' AND empresas_id_empresa = %d\n",
			demoWarehouseID, p.cantidad.String(), p.stockMin.String(), p.stockMax.String(), escapeSQL(p.sku), demoCompanyID)
		out.WriteString("ON CONFLICT (productos_id_producto, almacenes_id_almacen) DO UPDATE SET cantidad = EXCLUDED.cantidad, stock_minimo = EXCLUDED.stock_minimo, stock_maximo = EXCLUDED.stock_maximo;\n")
	}

	fmt.Printf("Generado %s: %d productos, admin %s\n", outPath, len(products), adminEmail)
}

// parseDecimal acepta coma o punto como separador decimal.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
