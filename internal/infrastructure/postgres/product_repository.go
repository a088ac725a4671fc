package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ExistsInCompany verifica que el producto exista y sea de la empresa.
func (r *ProductRepo) ExistsInCompany(ctx context.Context, productID, companyID int64) (bool, error) {
	query := `
		SELECT 1 FROM productos
		WHERE id_producto = $1 AND empresas_id_empresa = $2`
	var one int
	err := r.q.QueryRow(ctx, query, productID, companyID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists producto: %w", err)
	}
	return true, nil
}

// GetRef obtiene nombre y SKU de un producto; nil si no existe.
func (r *ProductRepo) GetRef(ctx context.Context, productID int64) (*entity.ProductRef, error) {
	query := `
		SELECT id_producto, nombre, codigo_sku
		FROM productos WHERE id_producto = $1`
	var ref entity.ProductRef
	err := r.q.QueryRow(ctx, query, productID).Scan(&ref.ID, &ref.Name, &ref.SKU)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &ref, nil
}
