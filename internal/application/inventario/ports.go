package inventario

import (
	"context"
	"time"

	"github.com/andescloud/inventario-service/internal/domain/entity"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza atomicidad en las
// mutaciones de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}

// ReportData datos ya resueltos para el reporte de stock de una ubicación.
type ReportData struct {
	CompanyName  string
	CompanyNIT   string
	LocationKind entity.LocationKind
	LocationName string
	GeneratedAt  time.Time
	Items        []repository.InventoryItem
}

// ReportGenerator produce la representación gráfica (PDF) del inventario
// de una ubicación.
type ReportGenerator interface {
	StockReportPDF(ctx context.Context, data ReportData) ([]byte, error)
}

// SnapshotExporter serializa el inventario de una ubicación como documento XML.
type SnapshotExporter interface {
	InventorySnapshot(data ReportData) ([]byte, error)
}
