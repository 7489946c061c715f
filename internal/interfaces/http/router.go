package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blues182/sistema-transporte-admin/internal/application/auth"
	"github.com/blues182/sistema-transporte-admin/internal/application/inventario"
	"github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/application/usecase"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RefaccionUC     *usecase.RefaccionUseCase
	TrailerUC       *usecase.TrailerUseCase
	InventarioUC    *inventario.InventarioUseCase
	MantenimientoUC *mantenimiento.MantenimientoUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RolAdmin)

	// Refacciones: catálogo + inventario (protegido)
	refacciones := protected.Group("/refacciones")
	refaccionHandler := NewRefaccionHandler(deps.RefaccionUC)
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	refacciones.Get("/", refaccionHandler.List)
	refacciones.Get("/stock-bajo", inventarioHandler.StockBajo)
	refacciones.Post("/", admin, refaccionHandler.Create)
	refacciones.Get("/:id", refaccionHandler.GetByID)
	refacciones.Put("/:id", admin, refaccionHandler.Update)
	refacciones.Post("/:id/entrada", inventarioHandler.RegistrarEntrada)
	refacciones.Post("/:id/salida", inventarioHandler.RegistrarSalida)
	refacciones.Get("/:id/movimientos", inventarioHandler.Movimientos)

	// Trailers (protegido)
	trailers := protected.Group("/trailers")
	trailerHandler := NewTrailerHandler(deps.TrailerUC, deps.MantenimientoUC)
	trailers.Get("/", trailerHandler.List)
	trailers.Post("/", admin, trailerHandler.Create)
	trailers.Get("/:id", trailerHandler.GetByID)
	trailers.Put("/:id", admin, trailerHandler.Update)
	trailers.Get("/:id/mantenimientos", trailerHandler.Mantenimientos)

	// Mantenimientos (protegido)
	mantenimientos := protected.Group("/mantenimientos")
	mantenimientoHandler := NewMantenimientoHandler(deps.MantenimientoUC)
	mantenimientos.Get("/", mantenimientoHandler.List)
	mantenimientos.Post("/", mantenimientoHandler.Create)
	mantenimientos.Get("/:id", mantenimientoHandler.GetByID)
	mantenimientos.Put("/:id", mantenimientoHandler.Update)
	mantenimientos.Put("/:id/completar", mantenimientoHandler.Completar)
	mantenimientos.Get("/:id/costo-total", mantenimientoHandler.CostoTotal)
	mantenimientos.Get("/:id/pdf", mantenimientoHandler.PDF)
}
