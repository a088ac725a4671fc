package repository

import (
	"context"

	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// ProductRepository define el puerto de consulta del catálogo de productos.
// El catálogo lo administra otro servicio; aquí solo se valida pertenencia
// y se leen nombre + SKU para las respuestas.
type ProductRepository interface {
	// ExistsInCompany informa si el producto existe y pertenece a la empresa.
	ExistsInCompany(ctx context.Context, productID, companyID int64) (bool, error)

	// GetRef devuelve nombre y SKU del producto, o nil si no existe.
	GetRef(ctx context.Context, productID int64) (*entity.ProductRef, error)
}
