// Package export serializa snapshots de inventario como XML para
// integraciones con sistemas externos (ERP, contabilidad).
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/pkg/nit"
)

// XMLExporter implementa inventario.SnapshotExporter usando etree.
type XMLExporter struct{}

var _ inventario.SnapshotExporter = (*XMLExporter)(nil)

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// InventorySnapshot serializa el inventario de una ubicación como documento
// XML con una Referencia por producto registrado.
func (e *XMLExporter) InventorySnapshot(data inventario.ReportData) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("InventarioSnapshot")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("generado", data.GeneratedAt.UTC().Format(time.RFC3339))

	empresa := root.CreateElement("Empresa")
	empresa.CreateAttr("nit", nit.Format(data.CompanyNIT))
	empresa.SetText(data.CompanyName)

	ubicacion := root.CreateElement("Ubicacion")
	ubicacion.CreateAttr("tipo", string(data.LocationKind))
	ubicacion.CreateAttr("nombre", data.LocationName)

	refs := root.CreateElement("Referencias")
	below := 0
	for _, it := range data.Items {
		if it.Quantity.LessThan(it.StockMin) {
			below++
		}
		ref := refs.CreateElement("Referencia")
		ref.CreateAttr("sku", it.ProductSKU)
		ref.CreateElement("Producto").SetText(it.ProductName)
		ref.CreateElement("Cantidad").SetText(it.Quantity.String())
		ref.CreateElement("StockMinimo").SetText(it.StockMin.String())
		ref.CreateElement("StockMaximo").SetText(it.StockMax.String())
		ref.CreateElement("UltimaActualizacion").SetText(it.UpdatedAt.UTC().Format(time.RFC3339))
	}
	refs.CreateAttr("total", strconv.Itoa(len(data.Items)))
	refs.CreateAttr("bajoMinimo", strconv.Itoa(below))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
