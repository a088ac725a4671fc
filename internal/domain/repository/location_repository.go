package repository

import (
	"context"

	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// LocationRepository define el puerto de consulta de ubicaciones (almacenes o
// sucursales). Este servicio no administra ubicaciones; solo verifica
// pertenencia a la empresa y lee el nombre para reportes.
type LocationRepository interface {
	// GetInCompany devuelve la ubicación solo si pertenece a la empresa;
	// nil si no existe o es de otra empresa.
	GetInCompany(ctx context.Context, locationID, companyID int64) (*entity.Location, error)
}
