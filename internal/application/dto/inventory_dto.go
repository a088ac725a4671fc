package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los nombres de campo JSON del inventario son el formato de intercambio
// heredado del servicio original: se conservan en español tal cual.

// CreateInventoryRequest entrada para crear una fila de inventario en una
// ubicación. Los tres campos numéricos son obligatorios y deben ser >= 0;
// van como punteros para distinguir "ausente" de cero (se valida en el caso
// de uso).
type CreateInventoryRequest struct {
	ProductID int64            `json:"productos_id_producto" validate:"required"`
	Quantity  *decimal.Decimal `json:"cantidad" validate:"required" swaggertype:"string"`
	StockMin  *decimal.Decimal `json:"stock_minimo" validate:"required" swaggertype:"string"`
	StockMax  *decimal.Decimal `json:"stock_maximo" validate:"required" swaggertype:"string"`
}

// UpdateInventoryRequest entrada para actualización parcial: los campos
// ausentes no se tocan (semántica PATCH).
type UpdateInventoryRequest struct {
	Quantity *decimal.Decimal `json:"cantidad" swaggertype:"string"`
	StockMin *decimal.Decimal `json:"stock_minimo" swaggertype:"string"`
	StockMax *decimal.Decimal `json:"stock_maximo" swaggertype:"string"`
}

// HasChanges informa si el PATCH trae al menos un campo.
func (r *UpdateInventoryRequest) HasChanges() bool {
	return r.Quantity != nil || r.StockMin != nil || r.StockMax != nil
}

// InventoryDetail es la salida neutral de los casos de uso de inventario;
// el handler la convierte a la forma de cable según el tipo de ubicación.
type InventoryDetail struct {
	ProductID   int64
	LocationID  int64
	Quantity    decimal.Decimal
	StockMin    decimal.Decimal
	StockMax    decimal.Decimal
	UpdatedAt   time.Time
	ProductName string
	ProductSKU  string
}

// WarehouseInventoryResponse fila de inventario de almacén con datos de producto.
type WarehouseInventoryResponse struct {
	ProductID   int64           `json:"productos_id_producto"`
	WarehouseID int64           `json:"almacenes_id_almacen"`
	Quantity    decimal.Decimal `json:"cantidad" swaggertype:"string"`
	StockMin    decimal.Decimal `json:"stock_minimo" swaggertype:"string"`
	StockMax    decimal.Decimal `json:"stock_maximo" swaggertype:"string"`
	UpdatedAt   time.Time       `json:"ultima_actualizacion"`
	ProductName string          `json:"producto_nombre"`
	ProductSKU  string          `json:"producto_codigo_sku"`
}

// BranchInventoryResponse fila de inventario de sucursal con datos de producto.
type BranchInventoryResponse struct {
	ProductID   int64           `json:"productos_id_producto"`
	BranchID    int64           `json:"sucursales_id_sucursal"`
	Quantity    decimal.Decimal `json:"cantidad" swaggertype:"string"`
	StockMin    decimal.Decimal `json:"stock_minimo" swaggertype:"string"`
	StockMax    decimal.Decimal `json:"stock_maximo" swaggertype:"string"`
	UpdatedAt   time.Time       `json:"ultima_actualizacion"`
	ProductName string          `json:"producto_nombre"`
	ProductSKU  string          `json:"producto_codigo_sku"`
}
