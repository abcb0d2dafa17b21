package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/auth"
	"github.com/andresfq/caja-api/internal/application/usecase"
	"github.com/andresfq/caja-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DrawUC     *usecase.DrawUseCase
	ReconUC    *usecase.ReconciliationUseCase
	PurchaseUC *usecase.PurchaseUseCase
	ShopUC     *usecase.ShopUseCase
	SupplierUC *usecase.SupplierUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Draws: arqueos de caja y conciliación del día
	draws := protected.Group("/draw")
	drawHandler := NewDrawHandler(deps.DrawUC, deps.ReconUC)
	draws.Get("/all", drawHandler.List)
	draws.Get("/infos", drawHandler.Infos)
	draws.Post("/add", drawHandler.Create)
	draws.Patch("/update", drawHandler.Update)
	draws.Put("/delete", drawHandler.Delete)

	// Purchases
	purchases := protected.Group("/purchase")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/all", purchaseHandler.List)
	purchases.Get("/outside", purchaseHandler.ListOutside)
	purchases.Post("/add", purchaseHandler.Create)
	purchases.Patch("/update", purchaseHandler.Update)
	purchases.Put("/delete", purchaseHandler.Delete)

	// Suppliers (cualquier autenticado)
	suppliers := protected.Group("/supplier")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/all", supplierHandler.List)
	suppliers.Post("/add", supplierHandler.Create)
	suppliers.Patch("/update", supplierHandler.Update)
	suppliers.Put("/deactivate", supplierHandler.Deactivate)
	suppliers.Put("/restore", supplierHandler.Restore)
	suppliers.Put("/delete", supplierHandler.Delete)

	// Shops (solo superadmin)
	shops := protected.Group("/shop", RequireRole(entity.RoleSuperadmin))
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Get("/all", shopHandler.List)
	shops.Post("/add", shopHandler.Create)
	shops.Patch("/update", shopHandler.Update)
	shops.Put("/deactivate", shopHandler.Deactivate)
	shops.Put("/restore", shopHandler.Restore)
	shops.Put("/delete", shopHandler.Delete)

	// Users: perfil propio antes del grupo de administración para que el
	// RequireRole no tape /user/profile ni /user/password
	userHandler := NewUserHandler(deps.UserUC)
	protected.Patch("/user/profile", userHandler.UpdateProfile)
	protected.Put("/user/password", userHandler.ChangePassword)

	// Users (administración: superadmin y admin)
	users := protected.Group("/user", RequireRole(entity.RoleSuperadmin, entity.RoleAdmin))
	users.Get("/all", userHandler.List)
	users.Post("/add", userHandler.Create)
	users.Patch("/update", userHandler.Update)
	users.Put("/verify", userHandler.Verify)
	users.Put("/deactivate", userHandler.Deactivate)
	users.Put("/restore", userHandler.Restore)
	users.Put("/delete", userHandler.Delete)
}
