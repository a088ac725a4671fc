package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es una fila de inventario: la existencia de un producto en
// una ubicación (almacén o sucursal) con sus umbrales de stock. La clave es
// (ProductID, LocationID); la tabla física depende del tipo de ubicación.
type InventoryRecord struct {
	ProductID  int64
	LocationID int64
	Quantity   decimal.Decimal // cantidad en existencia, >= 0
	StockMin   decimal.Decimal // stock_minimo, >= 0
	StockMax   decimal.Decimal // stock_maximo, >= 0
	UpdatedAt  time.Time       // ultima_actualizacion, la fija la DB
}

// BelowMinimum indica si la existencia actual está por debajo del umbral mínimo.
func (r *InventoryRecord) BelowMinimum() bool {
	return r.Quantity.LessThan(r.StockMin)
}
