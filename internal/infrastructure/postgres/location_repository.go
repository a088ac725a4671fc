package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL,
// parametrizada por tabla de ubicaciones (almacenes o sucursales).
type LocationRepo struct {
	q     Querier
	kind  entity.LocationKind
	table string
	idCol string
}

// NewWarehouseRepository construye el adaptador sobre almacenes.
func NewWarehouseRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q, kind: entity.KindWarehouse, table: "almacenes", idCol: "id_almacen"}
}

// NewBranchRepository construye el adaptador sobre sucursales.
func NewBranchRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q, kind: entity.KindBranch, table: "sucursales", idCol: "id_sucursal"}
}

// GetInCompany obtiene la ubicación solo si pertenece a la empresa; nil si no.
func (r *LocationRepo) GetInCompany(ctx context.Context, locationID, companyID int64) (*entity.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s, empresas_id_empresa, nombre, direccion, creado_en, actualizado_en
		FROM %s WHERE %s = $1 AND empresas_id_empresa = $2`, r.idCol, r.table, r.idCol)
	loc := entity.Location{Kind: r.kind}
	err := r.q.QueryRow(ctx, query, locationID, companyID).Scan(
		&loc.ID, &loc.CompanyID, &loc.Name, &loc.Address, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return &loc, nil
}
