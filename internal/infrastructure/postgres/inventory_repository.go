package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andescloud/inventario-service/internal/domain"
	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL,
// parametrizada por tabla de inventario (usable con pool o tx).
type InventoryRepo struct {
	q      Querier
	table  string
	locCol string
}

// NewWarehouseInventoryRepository construye el adaptador sobre almacen_inventario.
func NewWarehouseInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q, table: "almacen_inventario", locCol: "almacenes_id_almacen"}
}

// NewBranchInventoryRepository construye el adaptador sobre sucursal_inventario.
func NewBranchInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q, table: "sucursal_inventario", locCol: "sucursales_id_sucursal"}
}

// ListByLocation lista el inventario de la ubicación con datos de producto,
// acotado a la empresa vía el JOIN con productos y ordenado por nombre.
func (r *InventoryRepo) ListByLocation(ctx context.Context, locationID, companyID int64, belowMin bool) ([]repository.InventoryItem, error) {
	filter := ""
	if belowMin {
		filter = " AND i.cantidad < i.stock_minimo"
	}
	query := fmt.Sprintf(`
		SELECT
		  i.productos_id_producto,
		  i.%s,
		  i.cantidad,
		  i.stock_minimo,
		  i.stock_maximo,
		  i.ultima_actualizacion,
		  p.nombre AS producto_nombre,
		  p.codigo_sku AS producto_codigo_sku
		FROM %s i
		JOIN productos p ON p.id_producto = i.productos_id_producto
		WHERE i.%s = $1 AND p.empresas_id_empresa = $2%s
		ORDER BY p.nombre`, r.locCol, r.table, r.locCol, filter)

	rows, err := r.q.Query(ctx, query, locationID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var items []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.LocationID, &it.Quantity, &it.StockMin, &it.StockMax,
			&it.UpdatedAt, &it.ProductName, &it.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get obtiene el registro de inventario de un producto en la ubicación.
func (r *InventoryRepo) Get(ctx context.Context, productID, locationID int64) (*entity.InventoryRecord, error) {
	query := fmt.Sprintf(`
		SELECT productos_id_producto, %s, cantidad, stock_minimo, stock_maximo, ultima_actualizacion
		FROM %s WHERE productos_id_producto = $1 AND %s = $2`, r.locCol, r.table, r.locCol)
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&rec.ProductID, &rec.LocationID, &rec.Quantity, &rec.StockMin, &rec.StockMax, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return &rec, nil
}

// Exists verifica si el producto ya está registrado en la ubicación.
func (r *InventoryRepo) Exists(ctx context.Context, productID, locationID int64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT 1 FROM %s WHERE productos_id_producto = $1 AND %s = $2`, r.table, r.locCol)
	var one int
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists %s: %w", r.table, err)
	}
	return true, nil
}

// Create inserta el registro y rellena rec.UpdatedAt con el valor asignado
// por la BD. Devuelve domain.ErrDuplicate en violación de la PK compuesta.
func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (productos_id_producto, %s, cantidad, stock_minimo, stock_maximo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ultima_actualizacion`, r.table, r.locCol)
	err := r.q.QueryRow(ctx, query,
		rec.ProductID, rec.LocationID, rec.Quantity, rec.StockMin, rec.StockMax,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// Update actualiza cantidad y umbrales, refrescando ultima_actualizacion.
func (r *InventoryRepo) Update(ctx context.Context, rec *entity.InventoryRecord) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET cantidad = $3, stock_minimo = $4, stock_maximo = $5, ultima_actualizacion = now()
		WHERE productos_id_producto = $1 AND %s = $2
		RETURNING ultima_actualizacion`, r.table, r.locCol)
	err := r.q.QueryRow(ctx, query,
		rec.ProductID, rec.LocationID, rec.Quantity, rec.StockMin, rec.StockMax,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return nil
}

// Delete elimina el registro; devuelve false si la fila no existía.
func (r *InventoryRepo) Delete(ctx context.Context, productID, locationID int64) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE productos_id_producto = $1 AND %s = $2`, r.table, r.locCol)
	tag, err := r.q.Exec(ctx, query, productID, locationID)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.table, err)
	}
	return tag.RowsAffected() > 0, nil
}
