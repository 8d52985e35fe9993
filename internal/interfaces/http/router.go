package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)

	// Lecturas públicas. La ruta de export se registra antes de /:id para que
	// "export" no se intente parsear como ID.
	products.Get("/export/pdf",
		AuthMiddleware(deps.JWTSecret), RequireOperation(OpProductExport),
		productHandler.ExportPDF)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Escrituras protegidas: rol según la tabla operationRoles.
	products.Post("/",
		AuthMiddleware(deps.JWTSecret), RequireOperation(OpProductCreate),
		productHandler.Create)
	products.Patch("/",
		AuthMiddleware(deps.JWTSecret), RequireOperation(OpProductUpdate),
		productHandler.Update)
	products.Delete("/",
		AuthMiddleware(deps.JWTSecret), RequireOperation(OpProductDelete),
		productHandler.Delete)
}
