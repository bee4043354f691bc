package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kombaos/taller-api/internal/application/dto"
	"github.com/kombaos/taller-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos, stock derivado, umbrales y alertas.
type InventoryHandler struct {
	movements  *inventory.MovementUseCase
	thresholds *inventory.ThresholdUseCase
	alerts     *inventory.AlertsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	movements *inventory.MovementUseCase,
	thresholds *inventory.ThresholdUseCase,
	alerts *inventory.AlertsUseCase,
) *InventoryHandler {
	return &InventoryHandler{movements: movements, thresholds: thresholds, alerts: alerts}
}

// ListMovements lista movimientos, opcionalmente filtrados por material.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.movements.List(c.Query("materialId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMovement obtiene un movimiento por id.
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	out, err := h.movements.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateMovement registra un movimiento nuevo.
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.MovementCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	out, err := h.movements.Create(in.MaterialID, in.Type, *in.Quantity, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteMovement elimina un movimiento.
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.movements.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStock devuelve el stock derivado de un material.
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	materialID := c.Params("materialId")
	stock, err := h.movements.GetStock(materialID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{MaterialID: materialID, Stock: stock})
}

// ListThresholds lista los umbrales configurados.
func (h *InventoryHandler) ListThresholds(c *fiber.Ctx) error {
	out, err := h.thresholds.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetThreshold obtiene el umbral de un material.
func (h *InventoryHandler) GetThreshold(c *fiber.Ctx) error {
	out, err := h.thresholds.GetByMaterialID(c.Params("materialId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpsertThreshold crea o reemplaza el umbral de un material.
func (h *InventoryHandler) UpsertThreshold(c *fiber.Ctx) error {
	var in dto.ThresholdUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MinStock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minStock es requerido"})
	}
	out, err := h.thresholds.Upsert(c.Params("materialId"), *in.MinStock)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteThreshold elimina el umbral de un material.
func (h *InventoryHandler) DeleteThreshold(c *fiber.Ctx) error {
	if err := h.thresholds.Delete(c.Params("materialId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStockAlerts lista los materiales con stock por debajo de su mínimo.
func (h *InventoryHandler) LowStockAlerts(c *fiber.Ctx) error {
	out, err := h.alerts.LowStockAlerts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
