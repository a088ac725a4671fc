package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andescloud/inventario-service/internal/application/dto"
	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/internal/domain"
	"github.com/andescloud/inventario-service/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de inventario por ubicación
// (protegido). Una instancia por tipo de ubicación; locParam es el nombre del
// parámetro de ruta de la ubicación.
type InventoryHandler struct {
	kind     entity.LocationKind
	locParam string
	uc       *inventario.UseCase
	reports  *inventario.ReportUseCase
}

// NewWarehouseInventoryHandler construye el handler de inventario de almacenes.
func NewWarehouseInventoryHandler(uc *inventario.UseCase, reports *inventario.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{kind: entity.KindWarehouse, locParam: "almacen_id", uc: uc, reports: reports}
}

// NewBranchInventoryHandler construye el handler de inventario de sucursales.
func NewBranchInventoryHandler(uc *inventario.UseCase, reports *inventario.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{kind: entity.KindBranch, locParam: "sucursal_id", uc: uc, reports: reports}
}

// List godoc
// @Summary      Listar inventario de una ubicación
// @Description  Devuelve el inventario con nombre y SKU del producto, ordenado por nombre.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        almacen_id   path   int   true   "ID de la ubicación"
// @Param        bajo_minimo  query  bool  false  "Solo filas con cantidad < stock_minimo"
// @Success      200  {array}   dto.WarehouseInventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}
	belowMin := c.QueryBool("bajo_minimo", false)

	items, err := h.uc.List(c.Context(), companyID, int64(locID), belowMin)
	if err != nil {
		return h.errorJSON(c, err)
	}
	out := make([]any, 0, len(items))
	for _, d := range items {
		out = append(out, h.toResponse(d))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar producto en el inventario de una ubicación
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        almacen_id  path  int                         true  "ID de la ubicación"
// @Param        body        body  dto.CreateInventoryRequest  true  "productos_id_producto, cantidad, stock_minimo, stock_maximo"
// @Success      201  {object}  dto.WarehouseInventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productos_id_producto es requerido"})
	}

	out, err := h.uc.Create(c.Context(), companyID, int64(locID), in)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(*out))
}

// Update godoc
// @Summary      Actualizar cantidad o umbrales de un producto en una ubicación
// @Description  PATCH parcial: los campos ausentes no se modifican.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        almacen_id   path  int                         true  "ID de la ubicación"
// @Param        producto_id  path  int                         true  "ID del producto"
// @Param        body         body  dto.UpdateInventoryRequest  true  "cantidad, stock_minimo, stock_maximo (opcionales)"
// @Success      200  {object}  dto.WarehouseInventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario/{producto_id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}
	productID, err := c.ParamsInt("producto_id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id inválido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Update(c.Context(), companyID, int64(locID), int64(productID), in)
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(h.toResponse(*out))
}

// Delete godoc
// @Summary      Eliminar un producto del inventario de una ubicación
// @Tags         inventario
// @Security     Bearer
// @Param        almacen_id   path  int  true  "ID de la ubicación"
// @Param        producto_id  path  int  true  "ID del producto"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario/{producto_id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}
	productID, err := c.ParamsInt("producto_id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id inválido"})
	}

	if err := h.uc.Delete(c.Context(), companyID, int64(locID), int64(productID)); err != nil {
		return h.errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF del inventario de una ubicación
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Param        almacen_id  path  int  true  "ID de la ubicación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario/reporte [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}

	b, filename, err := h.reports.StockReportPDF(c.Context(), companyID, int64(locID))
	if err != nil {
		return h.errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

// Export godoc
// @Summary      Exportar el inventario de una ubicación como XML
// @Tags         inventario
// @Security     Bearer
// @Produce      application/xml
// @Param        almacen_id  path  int  true  "ID de la ubicación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen_id}/inventario/exportar [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	locID, err := c.ParamsInt(h.locParam)
	if err != nil || locID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.locParam + " inválido"})
	}

	b, filename, err := h.reports.SnapshotXML(c.Context(), companyID, int64(locID))
	if err != nil {
		return h.errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

// toResponse convierte el detalle neutro al DTO de salida de la ubicación.
func (h *InventoryHandler) toResponse(d dto.InventoryDetail) any {
	if h.kind == entity.KindBranch {
		return dto.BranchInventoryResponse{
			ProductID:   d.ProductID,
			BranchID:    d.LocationID,
			Quantity:    d.Quantity,
			StockMin:    d.StockMin,
			StockMax:    d.StockMax,
			UpdatedAt:   d.UpdatedAt,
			ProductName: d.ProductName,
			ProductSKU:  d.ProductSKU,
		}
	}
	return dto.WarehouseInventoryResponse{
		ProductID:   d.ProductID,
		WarehouseID: d.LocationID,
		Quantity:    d.Quantity,
		StockMin:    d.StockMin,
		StockMax:    d.StockMax,
		UpdatedAt:   d.UpdatedAt,
		ProductName: d.ProductName,
		ProductSKU:  d.ProductSKU,
	}
}

// errorJSON mapea errores de dominio a respuestas HTTP.
func (h *InventoryHandler) errorJSON(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrLocationNotOwned:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.locationMissingMsg()})
	case domain.ErrProductNotOwned:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_IN_COMPANY", Message: "el producto no pertenece a su empresa o no existe"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_EXISTS", Message: "ya existe inventario para este producto en esta ubicación"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de inventario no encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad, stock_minimo y stock_maximo son requeridos y deben ser >= 0"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func (h *InventoryHandler) locationMissingMsg() string {
	if h.kind == entity.KindBranch {
		return "sucursal no encontrada en su empresa"
	}
	return "almacén no encontrado en su empresa"
}
