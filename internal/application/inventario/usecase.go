package inventario

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/andescloud/inventario-service/internal/application/dto"
	"github.com/andescloud/inventario-service/internal/domain"
	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

// UseCase operaciones de inventario por ubicación. Una instancia por tipo de
// ubicación: los repositorios inyectados ya están atados a la tabla de
// almacenes o a la de sucursales.
type UseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventoryRepository
	locRepo     repository.LocationRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso para un tipo de ubicación.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	locRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		invRepo:     invRepo,
		locRepo:     locRepo,
		productRepo: productRepo,
	}
}

// List lista el inventario de una ubicación con datos de producto, ordenado
// por nombre de producto. Con belowMin=true devuelve solo las filas con
// cantidad < stock_minimo.
func (uc *UseCase) List(ctx context.Context, companyID, locationID int64, belowMin bool) ([]dto.InventoryDetail, error) {
	if err := uc.checkLocation(ctx, locationID, companyID); err != nil {
		return nil, err
	}
	items, err := uc.invRepo.ListByLocation(ctx, locationID, companyID, belowMin)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryDetail, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryDetail{
			ProductID:   it.ProductID,
			LocationID:  it.LocationID,
			Quantity:    it.Quantity,
			StockMin:    it.StockMin,
			StockMax:    it.StockMax,
			UpdatedAt:   it.UpdatedAt,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
		})
	}
	return out, nil
}

// Create registra un producto en el inventario de la ubicación. Cantidad y
// umbrales son obligatorios y >= 0.
// Devuelve ErrDuplicate si el producto ya está registrado en esa ubicación.
func (uc *UseCase) Create(ctx context.Context, companyID, locationID int64, in dto.CreateInventoryRequest) (*dto.InventoryDetail, error) {
	for _, f := range []*decimal.Decimal{in.Quantity, in.StockMin, in.StockMax} {
		if f == nil || f.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.checkLocation(ctx, locationID, companyID); err != nil {
		return nil, err
	}
	if err := uc.checkProduct(ctx, in.ProductID, companyID); err != nil {
		return nil, err
	}

	rec := &entity.InventoryRecord{
		ProductID:  in.ProductID,
		LocationID: locationID,
		Quantity:   *in.Quantity,
		StockMin:   *in.StockMin,
		StockMax:   *in.StockMax,
	}
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		exists, err := invRepo.Exists(ctx, in.ProductID, locationID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
		// Create rellena rec.UpdatedAt con el valor asignado por la BD
		return invRepo.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return uc.withProduct(ctx, rec)
}

// Update actualiza cantidad y/o umbrales de un producto en la ubicación.
// Los campos ausentes del request no se tocan; un PATCH vacío devuelve la
// fila tal cual está.
func (uc *UseCase) Update(ctx context.Context, companyID, locationID, productID int64, in dto.UpdateInventoryRequest) (*dto.InventoryDetail, error) {
	for _, f := range []*decimal.Decimal{in.Quantity, in.StockMin, in.StockMax} {
		if f != nil && f.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.checkLocation(ctx, locationID, companyID); err != nil {
		return nil, err
	}
	if err := uc.checkProduct(ctx, productID, companyID); err != nil {
		return nil, err
	}

	var rec *entity.InventoryRecord
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		var err error
		rec, err = invRepo.Get(ctx, productID, locationID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if !in.HasChanges() {
			return nil
		}
		if in.Quantity != nil {
			rec.Quantity = *in.Quantity
		}
		if in.StockMin != nil {
			rec.StockMin = *in.StockMin
		}
		if in.StockMax != nil {
			rec.StockMax = *in.StockMax
		}
		// Update refresca rec.UpdatedAt con el nuevo valor de la BD
		return invRepo.Update(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return uc.withProduct(ctx, rec)
}

// Delete elimina el registro de inventario de un producto en la ubicación.
// Solo verifica la pertenencia de la ubicación; la fila se identifica por
// producto y ubicación.
func (uc *UseCase) Delete(ctx context.Context, companyID, locationID, productID int64) error {
	if err := uc.checkLocation(ctx, locationID, companyID); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		deleted, err := invRepo.Delete(ctx, productID, locationID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
}

// checkLocation devuelve ErrLocationNotOwned si la ubicación no existe o no
// pertenece a la empresa.
func (uc *UseCase) checkLocation(ctx context.Context, locationID, companyID int64) error {
	loc, err := uc.locRepo.GetInCompany(ctx, locationID, companyID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrLocationNotOwned
	}
	return nil
}

// checkProduct devuelve ErrProductNotOwned si el producto no existe o no
// pertenece a la empresa.
func (uc *UseCase) checkProduct(ctx context.Context, productID, companyID int64) error {
	ok, err := uc.productRepo.ExistsInCompany(ctx, productID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotOwned
	}
	return nil
}

// withProduct enriquece el registro con nombre y SKU del producto, igual que
// en los listados.
func (uc *UseCase) withProduct(ctx context.Context, rec *entity.InventoryRecord) (*dto.InventoryDetail, error) {
	ref, err := uc.productRepo.GetRef(ctx, rec.ProductID)
	if err != nil {
		return nil, err
	}
	d := &dto.InventoryDetail{
		ProductID:  rec.ProductID,
		LocationID: rec.LocationID,
		Quantity:   rec.Quantity,
		StockMin:   rec.StockMin,
		StockMax:   rec.StockMax,
		UpdatedAt:  rec.UpdatedAt,
	}
	if ref != nil {
		d.ProductName = ref.Name
		d.ProductSKU = ref.SKU
	}
	return d, nil
}
