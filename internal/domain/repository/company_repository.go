package repository

import (
	"context"

	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// CompanyRepository define el puerto de consulta de empresas (DIP).
type CompanyRepository interface {
	// GetByID devuelve la empresa o nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}
