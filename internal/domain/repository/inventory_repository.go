package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// InventoryItem es la fila de inventario unida con los datos del producto,
// tal como la devuelven los listados (ordenados por nombre de producto).
type InventoryItem struct {
	ProductID   int64
	LocationID  int64
	Quantity    decimal.Decimal
	StockMin    decimal.Decimal
	StockMax    decimal.Decimal
	UpdatedAt   time.Time
	ProductName string
	ProductSKU  string
}

// InventoryRepository define el puerto de persistencia para las filas de
// inventario de una ubicación (DIP). Hay dos implementaciones con el mismo
// contrato: una sobre `almacen_inventario` y otra sobre `sucursal_inventario`.
type InventoryRepository interface {
	// ListByLocation devuelve el inventario de la ubicación unido con producto,
	// restringido a la empresa y ordenado por nombre de producto. Con
	// belowMin=true solo devuelve filas con cantidad < stock_minimo.
	ListByLocation(ctx context.Context, locationID, companyID int64, belowMin bool) ([]InventoryItem, error)

	// Get devuelve la fila (producto, ubicación) o nil si no existe.
	Get(ctx context.Context, productID, locationID int64) (*entity.InventoryRecord, error)

	// Exists informa si ya hay una fila para (producto, ubicación).
	Exists(ctx context.Context, productID, locationID int64) (bool, error)

	// Create inserta la fila; la DB fija ultima_actualizacion y el valor
	// queda reflejado en rec.UpdatedAt.
	Create(ctx context.Context, rec *entity.InventoryRecord) error

	// Update sobreescribe cantidad y umbrales; la DB renueva
	// ultima_actualizacion y el valor queda reflejado en rec.UpdatedAt.
	Update(ctx context.Context, rec *entity.InventoryRecord) error

	// Delete elimina la fila. Devuelve false si no existía.
	Delete(ctx context.Context, productID, locationID int64) (bool, error)
}
