package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
)

// MovementHandler maneja el ledger de movimientos: registro, transferencias
// y consultas de stock derivado.
type MovementHandler struct {
	movements *inventory.MovementUseCase
	transfers *inventory.TransferUseCase
	view      *ledger.Service
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movements *inventory.MovementUseCase, transfers *inventory.TransferUseCase, view *ledger.Service) *MovementHandler {
	return &MovementHandler{movements: movements, transfers: transfers, view: view}
}

// Register godoc
// @Summary      Registrar movimiento (in, out, adjust)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.movements.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos del ledger
// @Tags         movements
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por artículo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        type          query  string  false  "Filtrar por tipo (in, out, adjust, transfer)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.movements.List(c.Query("item_id"), c.Query("warehouse_id"), c.Query("type")))
}

// Transfer godoc
// @Summary      Transferir stock entre bodegas (pareja de movimientos enlazados)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Transferencia"
// @Success      201   {array}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.transfers.Transfer(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Stock godoc
// @Summary      Stock derivado de un artículo
// @Description  Con warehouse_id devuelve el stock en esa bodega; sin él, el
// @Description  total sumando solo bodegas activas.
// @Tags         movements
// @Produce      json
// @Param        item_id       query  string  true   "ID del artículo"
// @Param        warehouse_id  query  string  false  "ID de la bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *MovementHandler) Stock(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	if _, err := h.view.Item(itemID); err != nil {
		return writeError(c, err)
	}
	warehouseID := c.Query("warehouse_id")
	resp := dto.StockResponse{ItemID: itemID, WarehouseID: warehouseID}
	if warehouseID != "" {
		if _, err := h.view.Warehouse(warehouseID); err != nil {
			return writeError(c, err)
		}
		resp.Quantity = h.view.StockOf(itemID, warehouseID)
	} else {
		resp.Quantity = h.view.TotalStockOf(itemID)
	}
	return c.JSON(resp)
}
