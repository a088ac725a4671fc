package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andescloud/inventario-service/internal/application/dto"
	"github.com/andescloud/inventario-service/internal/domain"
)

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token puede ejecutar la acción sobre el recurso (tabla de permisos en
// domain). Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → token sin claim de rol.
//   - 403 Forbidden    → el rol no tiene el permiso.
func RequirePermission(action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if !domain.Allowed(role, action, resource) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no puede '" + action + "' sobre '" + resource + "'",
			})
		}
		return c.Next()
	}
}
