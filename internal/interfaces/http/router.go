package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andescloud/inventario-service/internal/application/auth"
	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	WarehouseInvUC   *inventario.UseCase
	BranchInvUC      *inventario.UseCase
	WarehouseReports *inventario.ReportUseCase
	BranchReports    *inventario.ReportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario de almacenes (permiso por acción sobre almacen_inventario)
	whHandler := NewWarehouseInventoryHandler(deps.WarehouseInvUC, deps.WarehouseReports)
	almacenes := protected.Group("/almacenes")
	registerInventoryRoutes(almacenes, "almacen_id", domain.ResourceWarehouseInventory, whHandler)

	// Inventario de sucursales (permiso por acción sobre sucursal_inventario)
	brHandler := NewBranchInventoryHandler(deps.BranchInvUC, deps.BranchReports)
	sucursales := protected.Group("/sucursales")
	registerInventoryRoutes(sucursales, "sucursal_id", domain.ResourceBranchInventory, brHandler)
}

// registerInventoryRoutes registra el árbol de inventario de una ubicación
// con el chequeo de permisos de cada operación.
func registerInventoryRoutes(g fiber.Router, locParam, resource string, h *InventoryHandler) {
	base := "/:" + locParam + "/inventario"
	g.Get(base, RequirePermission(domain.ActionRead, resource), h.List)
	g.Post(base, RequirePermission(domain.ActionCreate, resource), h.Create)
	g.Get(base+"/reporte", RequirePermission(domain.ActionRead, resource), h.Report)
	g.Get(base+"/exportar", RequirePermission(domain.ActionRead, resource), h.Export)
	g.Patch(base+"/:producto_id", RequirePermission(domain.ActionUpdate, resource), h.Update)
	g.Delete(base+"/:producto_id", RequirePermission(domain.ActionDelete, resource), h.Delete)
}
