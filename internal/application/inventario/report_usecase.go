package inventario

import (
	"context"
	"fmt"
	"time"

	"github.com/andescloud/inventario-service/internal/domain"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF y la exportación XML del inventario
// de una ubicación.
type ReportUseCase struct {
	invRepo     repository.InventoryRepository
	locRepo     repository.LocationRepository
	companyRepo repository.CompanyRepository
	pdf         ReportGenerator
	xml         SnapshotExporter
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	invRepo repository.InventoryRepository,
	locRepo repository.LocationRepository,
	companyRepo repository.CompanyRepository,
	pdf ReportGenerator,
	xml SnapshotExporter,
) *ReportUseCase {
	return &ReportUseCase{
		invRepo:     invRepo,
		locRepo:     locRepo,
		companyRepo: companyRepo,
		pdf:         pdf,
		xml:         xml,
	}
}

// StockReportPDF recupera el inventario completo de la ubicación y genera
// el PDF del reporte de stock.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrLocationNotOwned  si la ubicación no es de la empresa.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, companyID, locationID int64) ([]byte, string, error) {
	data, err := uc.collect(ctx, companyID, locationID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.StockReportPDF(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s_%d.pdf", data.LocationKind, locationID)
	return b, filename, nil
}

// SnapshotXML recupera el inventario completo de la ubicación y lo serializa
// como documento XML.
func (uc *ReportUseCase) SnapshotXML(ctx context.Context, companyID, locationID int64) ([]byte, string, error) {
	data, err := uc.collect(ctx, companyID, locationID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xml.InventorySnapshot(*data)
	if err != nil {
		return nil, "", fmt.Errorf("exportación: serialización fallida: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s_%d.xml", data.LocationKind, locationID)
	return b, filename, nil
}

// collect valida la pertenencia de la ubicación y arma los datos del reporte.
func (uc *ReportUseCase) collect(ctx context.Context, companyID, locationID int64) (*ReportData, error) {
	loc, err := uc.locRepo.GetInCompany(ctx, locationID, companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener ubicación: %w", err)
	}
	if loc == nil {
		return nil, domain.ErrLocationNotOwned
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invRepo.ListByLocation(ctx, locationID, companyID, false)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener inventario: %w", err)
	}
	return &ReportData{
		CompanyName:  company.Name,
		CompanyNIT:   company.NIT,
		LocationKind: loc.Kind,
		LocationName: loc.Name,
		GeneratedAt:  time.Now(),
		Items:        items,
	}, nil
}
