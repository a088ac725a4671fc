package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la empresa (tabla `productos`).
// Este servicio solo lo consulta: la administración del catálogo vive en otro
// servicio de la plataforma.
type Product struct {
	ID        int64
	CompanyID int64
	SKU       string // código único por empresa
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductRef es la proyección mínima del producto que viaja en las respuestas
// de inventario (nombre + SKU).
type ProductRef struct {
	ID   int64
	Name string
	SKU  string
}
