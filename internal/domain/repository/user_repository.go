package repository

import (
	"context"

	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail devuelve el usuario por email o nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByEmailAndCompany devuelve el usuario por email dentro de una empresa, o nil.
	GetByEmailAndCompany(ctx context.Context, email string, companyID int64) (*entity.User, error)
}
