package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kombaos/taller-api/internal/application/dto"
	"github.com/kombaos/taller-api/internal/application/usecase"
	"github.com/kombaos/taller-api/internal/domain/entity"
)

// MaterialHandler maneja las peticiones HTTP para materiales.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List lista materiales con filtros opcionales (q, supplier, origin, certified).
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	filter := usecase.MaterialFilter{
		Name:     c.Query("q"),
		Supplier: c.Query("supplier"),
		Origin:   c.Query("origin"),
	}
	if v := c.Query("certified"); v != "" {
		certified := v == "true"
		filter.Certified = &certified
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un material por id.
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea un material.
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(materialFromRequest(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los campos mutables de un material.
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), materialFromRequest(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un material.
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func materialFromRequest(in dto.MaterialRequest) entity.Material {
	return entity.Material{
		Name:      in.Name,
		Unit:      in.Unit,
		Supplier:  in.Supplier,
		Origin:    in.Origin,
		Certified: in.Certified,
		CostCents: in.CostCents,
		Currency:  in.Currency,
	}
}
