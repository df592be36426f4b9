package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/auth"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/application/order"
	"github.com/jhoicas/quincaillerie-api/internal/application/supplier"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Identity      *auth.IdentityService
	AuthUC        *auth.AuthUseCase
	CategoryUC    *catalog.CategoryUseCase
	SubCategoryUC *catalog.SubCategoryUseCase
	ProductUC     *catalog.ProductUseCase
	ImageUC       *catalog.ImageUseCase
	SupplierUC    *supplier.SupplierUseCase
	OrderUC       *order.OrderUseCase
	Errors        *ErrorWriter
}

// Router registra las rutas de la API. Las lecturas del catálogo son
// públicas; toda mutación pasa por AuthMiddleware + RequirePermission contra
// la tabla central de permisos.
func Router(app *fiber.App, deps RouterDeps) {
	errs := deps.Errors
	authed := AuthMiddleware(deps.Identity, errs)
	perm := func(op auth.Operation) fiber.Handler { return RequirePermission(op, errs) }

	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, errs)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", authed, authHandler.Profile)
	authGroup.Put("/password", authed, authHandler.ChangePassword)

	// Users (gestión de cuentas)
	users := api.Group("/users", authed)
	userHandler := NewUserHandler(deps.AuthUC, errs)
	users.Get("/", perm(auth.OpListUsers), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", perm(auth.OpCreateUser), userHandler.Create)
	users.Delete("/:id", perm(auth.OpDeactivateUser), userHandler.Deactivate)
	users.Post("/:id/reactivate", perm(auth.OpReactivateUser), userHandler.Reactivate)

	// Categories (lecturas públicas, mutaciones protegidas)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, errs)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authed, perm(auth.OpCreateCategory), categoryHandler.Create)
	categories.Put("/:id", authed, perm(auth.OpUpdateCategory), categoryHandler.Update)
	categories.Delete("/:id", authed, perm(auth.OpArchiveCategory), categoryHandler.Archive)

	// Sub-categories
	subcategories := api.Group("/subcategories")
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC, errs)
	subcategories.Get("/", subCategoryHandler.List)
	subcategories.Get("/:id", subCategoryHandler.GetByID)
	subcategories.Post("/", authed, perm(auth.OpCreateSubCategory), subCategoryHandler.Create)
	subcategories.Put("/:id", authed, perm(auth.OpUpdateSubCategory), subCategoryHandler.Update)
	subcategories.Delete("/:id", authed, perm(auth.OpArchiveSubCategory), subCategoryHandler.Archive)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImageUC, errs)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Post("/", authed, perm(auth.OpCreateProduct), productHandler.Create)
	products.Put("/:code", authed, perm(auth.OpUpdateProduct), productHandler.Update)
	products.Patch("/:code/stock", authed, perm(auth.OpUpdateStock), productHandler.UpdateStock)
	products.Delete("/:code", authed, perm(auth.OpArchiveProduct), productHandler.Archive)
	products.Get("/:code/image", productHandler.GetImage)
	products.Post("/:code/image", authed, perm(auth.OpManageImages), productHandler.UploadImage)
	products.Delete("/:code/image", authed, perm(auth.OpManageImages), productHandler.DeleteImage)

	// Suppliers (todo protegido; la lectura basta con estar autenticado)
	suppliers := api.Group("/suppliers", authed)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, errs)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", perm(auth.OpCreateSupplier), supplierHandler.Create)
	suppliers.Put("/:id", perm(auth.OpUpdateSupplier), supplierHandler.Update)
	suppliers.Delete("/:id", perm(auth.OpArchiveSupplier), supplierHandler.Archive)

	// Purchase orders
	orders := api.Group("/orders", authed)
	orderHandler := NewOrderHandler(deps.OrderUC, errs)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", perm(auth.OpCreateOrder), orderHandler.Create)
	orders.Post("/:id/cancel", perm(auth.OpCancelOrder), orderHandler.Cancel)
}
