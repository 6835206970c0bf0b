package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
)

// PicklistHandler expone las listas de sugerencias (responsables, operadores,
// unidades).
type PicklistHandler struct {
	uc *inventory.PicklistUseCase
}

// NewPicklistHandler construye el handler.
func NewPicklistHandler(uc *inventory.PicklistUseCase) *PicklistHandler {
	return &PicklistHandler{uc: uc}
}

type picklistAddRequest struct {
	Value string `json:"value"`
}

// Values godoc
// @Summary      Valores de una lista de sugerencias
// @Tags         picklists
// @Produce      json
// @Param        list  path  string  true  "Lista (managerList, operatorList, unitList)"
// @Success      200  {array}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/picklists/{list} [get]
func (h *PicklistHandler) Values(c *fiber.Ctx) error {
	values, err := h.uc.Values(c.Params("list"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(values)
}

// Add godoc
// @Summary      Agregar valor a una lista si no está
// @Tags         picklists
// @Accept       json
// @Param        list  path  string  true  "Lista"
// @Param        body  body  object  true  "Valor"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/picklists/{list} [post]
func (h *PicklistHandler) Add(c *fiber.Ctx) error {
	var in picklistAddRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "value es requerido"})
	}
	if err := h.uc.Ensure(c.Context(), c.Params("list"), in.Value); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
