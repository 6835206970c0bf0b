package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
)

// AdminHandler operaciones administrativas.
type AdminHandler struct {
	uc *inventory.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *inventory.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ClearAll godoc
// @Summary      Borrar todos los datos y restaurar la semilla de responsables
// @Description  Irreversible. Exige confirm=true como confirmación explícita.
// @Tags         admin
// @Param        confirm  query  bool  true  "Debe ser true"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/clear-all [post]
func (h *AdminHandler) ClearAll(c *fiber.Ctx) error {
	if !c.QueryBool("confirm", false) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "confirm=true es requerido"})
	}
	if err := h.uc.ClearAll(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
