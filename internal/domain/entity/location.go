package entity

import "time"

// LocationKind distingue los dos tipos de ubicación que llevan inventario.
// El esquema heredado los guarda en tablas separadas (`almacenes` y
// `sucursales`) con la misma estructura.
type LocationKind string

const (
	KindWarehouse LocationKind = "almacen"
	KindBranch    LocationKind = "sucursal"
)

// Location representa un almacén o una sucursal de una empresa.
type Location struct {
	ID        int64
	CompanyID int64
	Kind      LocationKind
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
