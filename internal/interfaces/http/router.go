package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kombaos/taller-api/internal/application/inventory"
	"github.com/kombaos/taller-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *usecase.MaterialUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *inventory.MovementUseCase
	ThresholdUC *inventory.ThresholdUseCase
	AlertsUC    *inventory.AlertsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.ThresholdUC, deps.AlertsUC)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Post("/movements", inventoryHandler.CreateMovement)
	inv.Get("/movements/stock/:materialId", inventoryHandler.GetStock)
	inv.Get("/movements/:id", inventoryHandler.GetMovement)
	inv.Delete("/movements/:id", inventoryHandler.DeleteMovement)
	inv.Get("/thresholds", inventoryHandler.ListThresholds)
	inv.Get("/thresholds/:materialId", inventoryHandler.GetThreshold)
	inv.Put("/thresholds/:materialId", inventoryHandler.UpsertThreshold)
	inv.Delete("/thresholds/:materialId", inventoryHandler.DeleteThreshold)
	inv.Get("/alerts/low-stock", inventoryHandler.LowStockAlerts)
}
