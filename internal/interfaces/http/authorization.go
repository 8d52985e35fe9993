package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Operaciones con restricción de rol.
const (
	OpProductCreate = "products.create"
	OpProductUpdate = "products.update"
	OpProductDelete = "products.delete"
	OpProductExport = "products.export"
)

// RoleAuthenticated acepta cualquier usuario autenticado, sin importar el rol.
const RoleAuthenticated = "*"

// operationRoles tabla de autorización: operación -> rol requerido. Las
// operaciones ausentes son públicas y no pasan por RequireOperation.
var operationRoles = map[string]string{
	OpProductCreate: entity.RoleAdmin,
	OpProductUpdate: RoleAuthenticated,
	OpProductDelete: entity.RoleAdmin,
	OpProductExport: entity.RoleAdmin,
}

// RequireOperation devuelve un middleware Fiber que autoriza la operación
// consultando operationRoles contra el rol del token. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → token sin claim de rol.
//   - 403 Forbidden    → rol distinto al requerido.
func RequireOperation(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		required, ok := operationRoles[operation]
		if !ok {
			return c.Next() // operación sin restricción
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if required != RoleAuthenticated && role != required {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no puede ejecutar esta operación",
			})
		}
		return c.Next()
	}
}
