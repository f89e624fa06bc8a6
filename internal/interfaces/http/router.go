package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC   *usecase.ArticleUseCase
	InventoryUC *usecase.InventoryUseCase
	ProductUC   *usecase.ProductUseCase
	BrandUC     *usecase.BrandUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StoreUC     *usecase.StoreUseCase
	ProfileUC   *usecase.ProfileUseCase
}

// Router registra las rutas de la API. Las rutas estáticas (acdata, brands,
// add, id/:id) van antes que los comodines /:id para que no las capturen.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Articles: unidades, listado por ubicación y vistas de inventario
	articles := api.Group("/article")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	articles.Get("/acdata", articleHandler.Acdata)
	articles.Get("/id/:id", articleHandler.GetByID)
	articles.Post("/add", articleHandler.Add)
	articles.Put("/id/:id", articleHandler.Update)
	articles.Put("/transfer/:id/warehouse", articleHandler.TransferToWarehouse)
	articles.Put("/transfer/:id", articleHandler.Transfer)
	articles.Put("/sell/:id", articleHandler.Sell)
	articles.Put("/cancelsell/:id", articleHandler.CancelSell)
	articles.Delete("/id/:id", articleHandler.Delete)
	articles.Get("/:id/warehouse/byproducts", inventoryHandler.WarehouseByProducts)
	articles.Get("/:id/store/byproducts", inventoryHandler.StoreByProducts)
	articles.Get("/:id", articleHandler.ListAtLocation)

	// Products y catálogo de marcas/modelos
	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC, deps.BrandUC)
	products.Get("/", productHandler.List)
	products.Get("/brands", productHandler.Brands)
	products.Get("/brandModels", productHandler.BrandModels)
	products.Get("/id/:id", productHandler.GetByID)
	products.Post("/add", productHandler.Add)
	products.Put("/id/:id", productHandler.Update)
	products.Delete("/id/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.ArticleUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/id/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/articles", warehouseHandler.Articles)
	warehouses.Post("/add", warehouseHandler.Add)
	warehouses.Put("/id/:id", warehouseHandler.Update)
	warehouses.Delete("/id/:id", warehouseHandler.Delete)

	// Stores
	stores := api.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.ArticleUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/id/:id", storeHandler.GetByID)
	stores.Get("/:id/articles", storeHandler.Articles)
	stores.Post("/add", storeHandler.Add)
	stores.Put("/id/:id", storeHandler.Update)
	stores.Delete("/id/:id", storeHandler.Delete)

	// Profiles
	profiles := api.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profiles.Get("/id/:id", profileHandler.GetByID)
	profiles.Post("/", profileHandler.Add)
	profiles.Put("/id/:id", profileHandler.Update)
	profiles.Delete("/id/:id", profileHandler.Delete)
}
