package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andescloud/inventario-service/internal/application/auth"
	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
	"github.com/andescloud/inventario-service/internal/infrastructure/export"
	"github.com/andescloud/inventario-service/internal/infrastructure/pdf"
	apphttp "github.com/andescloud/inventario-service/internal/interfaces/http"
	pkgjwt "github.com/andescloud/inventario-service/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stores en memoria para el stack completo (router + usecases reales)
// ──────────────────────────────────────────────────────────────────────────────

type prodInfo struct {
	companyID int64
	name      string
	sku       string
}

type memProducts struct{ products map[int64]prodInfo }

func (r memProducts) ExistsInCompany(_ context.Context, productID, companyID int64) (bool, error) {
	p, ok := r.products[productID]
	return ok && p.companyID == companyID, nil
}

func (r memProducts) GetRef(_ context.Context, productID int64) (*entity.ProductRef, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, nil
	}
	return &entity.ProductRef{ID: productID, Name: p.name, SKU: p.sku}, nil
}

type memLocations struct {
	kind entity.LocationKind
	locs map[int64]int64 // id ubicación → id empresa
}

func (r memLocations) GetInCompany(_ context.Context, locationID, companyID int64) (*entity.Location, error) {
	if r.locs[locationID] != companyID {
		return nil, nil
	}
	return &entity.Location{ID: locationID, CompanyID: companyID, Kind: r.kind, Name: "Ubicación Test"}, nil
}

type memInventory struct {
	rows     map[[2]int64]*entity.InventoryRecord
	products map[int64]prodInfo
}

func (r memInventory) ListByLocation(_ context.Context, locationID, companyID int64, belowMin bool) ([]repository.InventoryItem, error) {
	var out []repository.InventoryItem
	for key, rec := range r.rows {
		if key[1] != locationID {
			continue
		}
		p, ok := r.products[rec.ProductID]
		if !ok || p.companyID != companyID {
			continue
		}
		if belowMin && !rec.Quantity.LessThan(rec.StockMin) {
			continue
		}
		out = append(out, repository.InventoryItem{
			ProductID:   rec.ProductID,
			LocationID:  rec.LocationID,
			Quantity:    rec.Quantity,
			StockMin:    rec.StockMin,
			StockMax:    rec.StockMax,
			UpdatedAt:   rec.UpdatedAt,
			ProductName: p.name,
			ProductSKU:  p.sku,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}

func (r memInventory) Get(_ context.Context, productID, locationID int64) (*entity.InventoryRecord, error) {
	rec, ok := r.rows[[2]int64{productID, locationID}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r memInventory) Exists(_ context.Context, productID, locationID int64) (bool, error) {
	_, ok := r.rows[[2]int64{productID, locationID}]
	return ok, nil
}

func (r memInventory) Create(_ context.Context, rec *entity.InventoryRecord) error {
	rec.UpdatedAt = time.Now()
	cp := *rec
	r.rows[[2]int64{rec.ProductID, rec.LocationID}] = &cp
	return nil
}

func (r memInventory) Update(_ context.Context, rec *entity.InventoryRecord) error {
	rec.UpdatedAt = time.Now()
	cp := *rec
	r.rows[[2]int64{rec.ProductID, rec.LocationID}] = &cp
	return nil
}

func (r memInventory) Delete(_ context.Context, productID, locationID int64) (bool, error) {
	key := [2]int64{productID, locationID}
	_, ok := r.rows[key]
	delete(r.rows, key)
	return ok, nil
}

type memTx struct{ inv memInventory }

func (t memTx) Run(_ context.Context, fn func(repository.InventoryRepository) error) error {
	return fn(t.inv)
}

type memUsers struct{ byEmail map[string]*entity.User }

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r memUsers) GetByEmailAndCompany(_ context.Context, email string, companyID int64) (*entity.User, error) {
	u := r.byEmail[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

type memCompanies struct{}

func (memCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if id != 1 && id != 2 {
		return nil, nil
	}
	return &entity.Company{ID: id, Name: "Distribuidora Andes SAS", NIT: "900123456-8", Status: "activa"}, nil
}

// newTestServer arma la aplicación completa: router real, usecases reales y
// stores en memoria. Almacén 10 y sucursal 20 son de la empresa 1; el almacén
// 99 es de la empresa 2. Productos 100 y 101 son de la empresa 1, el 999 no.
func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	products := map[int64]prodInfo{
		100: {companyID: 1, name: "Tornillo 3/8", sku: "TOR-038"},
		101: {companyID: 1, name: "Arandela plana", sku: "ARA-001"},
		999: {companyID: 2, name: "Ajeno", sku: "AJE-999"},
	}
	prodRepo := memProducts{products: products}

	whInv := memInventory{rows: make(map[[2]int64]*entity.InventoryRecord), products: products}
	whLocs := memLocations{kind: entity.KindWarehouse, locs: map[int64]int64{10: 1, 99: 2}}
	whUC := inventario.NewUseCase(memTx{whInv}, whInv, whLocs, prodRepo)

	brInv := memInventory{rows: make(map[[2]int64]*entity.InventoryRecord), products: products}
	brLocs := memLocations{kind: entity.KindBranch, locs: map[int64]int64{20: 1}}
	brUC := inventario.NewUseCase(memTx{brInv}, brInv, brLocs, prodRepo)

	pdfGen := pdf.NewStockReportGenerator()
	xmlExp := export.NewXMLExporter()
	whReports := inventario.NewReportUseCase(whInv, whLocs, memCompanies{}, pdfGen, xmlExp)
	brReports := inventario.NewReportUseCase(brInv, brLocs, memCompanies{}, pdfGen, xmlExp)

	authUC := auth.NewUseCase(
		memUsers{byEmail: make(map[string]*entity.User)},
		memCompanies{},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		WarehouseInvUC:   whUC,
		BranchInvUC:      brUC,
		WarehouseReports: whReports,
		BranchReports:    brReports,
		JWTSecret:        testJWTSecret,
	})
	return app
}

// apiToken genera un token firmado para la empresa indicada.
func apiToken(t *testing.T, role string, companyID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, companyID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de autenticación por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthFlow_RegisterYLogin(t *testing.T) {
	app := newTestServer(t)

	// Registro
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      "admin@demo.local",
		"password":   "password123",
		"name":       "Administrador",
		"company_id": 1,
		"role":       "admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "admin", created["role"])

	// Registro duplicado
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      "admin@demo.local",
		"password":   "password123",
		"company_id": 1,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Login correcto
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@demo.local",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logged := decodeBody(t, resp)
	token, _ := logged["token"].(string)
	require.NotEmpty(t, token, "el login emite un token")

	// El token sirve para las rutas protegidas
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Login con password incorrecto
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@demo.local",
		"password": "otraclave",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthFlow_RegisterEmpresaInexistente_Retorna404(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      "nadie@demo.local",
		"password":   "password123",
		"company_id": 77,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de inventario de almacén por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestInventarioAlmacen_CicloCompleto(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              120,
		"stock_minimo":          10,
		"stock_maximo":          500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.EqualValues(t, 100, created["productos_id_producto"])
	assert.EqualValues(t, 10, created["almacenes_id_almacen"], "la respuesta usa la clave de almacén")
	assert.Equal(t, "120", created["cantidad"], "los decimales viajan como string")
	assert.Equal(t, "Tornillo 3/8", created["producto_nombre"])
	assert.Equal(t, "TOR-038", created["producto_codigo_sku"])
	assert.NotEmpty(t, created["ultima_actualizacion"])

	// Listar
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.EqualValues(t, 100, list[0]["productos_id_producto"])

	// Actualizar parcialmente (solo cantidad)
	resp = doJSON(t, app, http.MethodPatch, "/api/almacenes/10/inventario/100", token, fiber.Map{
		"cantidad": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "5", updated["cantidad"])
	assert.Equal(t, "10", updated["stock_minimo"], "el umbral mínimo no se toca")
	assert.Equal(t, "500", updated["stock_maximo"])

	// El filtro bajo_minimo ahora la incluye (5 < 10)
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario?bajo_minimo=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list, 1, "con cantidad < stock_minimo la fila aparece en el filtro")

	// Eliminar
	resp = doJSON(t, app, http.MethodDelete, "/api/almacenes/10/inventario/100", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Segunda eliminación: ya no existe
	resp = doJSON(t, app, http.MethodDelete, "/api/almacenes/10/inventario/100", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestInventarioAlmacen_CreateDuplicado_Retorna400(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	body := fiber.Map{"productos_id_producto": 100, "cantidad": 1, "stock_minimo": 0, "stock_maximo": 10}
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody(t, resp)
	assert.Equal(t, "ALREADY_EXISTS", errBody["code"])
}

func TestInventarioAlmacen_UbicacionDeOtraEmpresa_Retorna404(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes/99/inventario", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Contains(t, errBody["message"], "almacén", "el mensaje nombra el tipo de ubicación")
}

func TestInventarioAlmacen_ProductoDeOtraEmpresa_Retorna400(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 999,
		"cantidad":              1,
		"stock_minimo":          0,
		"stock_maximo":          10,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody(t, resp)
	assert.Equal(t, "PRODUCT_NOT_IN_COMPANY", errBody["code"])
}

func TestInventarioAlmacen_CantidadNegativa_Retorna400(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              -5,
		"stock_minimo":          0,
		"stock_maximo":          10,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", errBody["code"])
}

func TestInventarioAlmacen_CamposFaltantes_Retorna400(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	// Sin stock_minimo ni stock_maximo el registro se rechaza
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              7,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", errBody["code"])
}

func TestInventarioAlmacen_SinToken_Retorna401(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Sucursales: forma de respuesta y permisos cruzados
// ──────────────────────────────────────────────────────────────────────────────

func TestInventarioSucursal_FormatoDeRespuesta(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "vendedor", 1)

	// El vendedor es dueño del inventario de sucursal
	resp := doJSON(t, app, http.MethodPost, "/api/sucursales/20/inventario", token, fiber.Map{
		"productos_id_producto": 101,
		"cantidad":              30,
		"stock_minimo":          5,
		"stock_maximo":          80,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.EqualValues(t, 20, created["sucursales_id_sucursal"], "la respuesta usa la clave de sucursal")
	assert.NotContains(t, created, "almacenes_id_almacen")
	assert.Equal(t, "Arandela plana", created["producto_nombre"])
}

func TestInventario_PermisosPorRol(t *testing.T) {
	app := newTestServer(t)
	vendedor := apiToken(t, "vendedor", 1)
	bodeguero := apiToken(t, "bodeguero", 1)

	// vendedor no escribe en almacenes
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", vendedor, fiber.Map{
		"productos_id_producto": 100,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "vendedor no puede crear en almacén")
	resp.Body.Close()

	// pero sí lee almacenes
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario", vendedor, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "vendedor puede consultar almacén")
	resp.Body.Close()

	// bodeguero no modifica sucursales
	resp = doJSON(t, app, http.MethodPatch, "/api/sucursales/20/inventario/101", bodeguero, fiber.Map{
		"cantidad": 1,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "bodeguero no puede modificar sucursal")
	resp.Body.Close()

	// bodeguero sí escribe en almacenes
	resp = doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", bodeguero, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              10,
		"stock_minimo":          0,
		"stock_maximo":          50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte PDF y exportación XML por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestInventarioAlmacen_ReporteYExportacion(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              120,
		"stock_minimo":          10,
		"stock_maximo":          500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Reporte PDF
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario/reporte", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_almacen_10.pdf")
	resp.Body.Close()

	// Exportación XML
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/10/inventario/exportar", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_almacen_10.xml")
	resp.Body.Close()

	// Sobre ubicación ajena ambos devuelven 404
	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/99/inventario/reporte", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// El parser de cuerpo acepta números JSON y strings en los campos decimal.
func TestInventarioAlmacen_CantidadDecimal(t *testing.T) {
	app := newTestServer(t)
	token := apiToken(t, "admin", 1)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/10/inventario", token, fiber.Map{
		"productos_id_producto": 100,
		"cantidad":              12.5,
		"stock_minimo":          "0.5",
		"stock_maximo":          99.999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, "12.5", created["cantidad"])
	assert.Equal(t, "0.5", created["stock_minimo"])
	assert.Equal(t, "99.999", created["stock_maximo"])
}
