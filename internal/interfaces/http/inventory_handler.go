package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// InventoryHandler maneja las vistas de inventario agrupado por producto.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// WarehouseByProducts godoc
// @Summary      Existencias de una bodega agrupadas por producto
// @Tags         article
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        limit   query  int     false  "Límite"
// @Param        skip    query  int     false  "Inicio de la ventana"
// @Param        filter  query  string  false  "Filtro JSON (solo aplica sku)"
// @Success      200     {object}  dto.InventoryResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/article/{id}/warehouse/byproducts [get]
func (h *InventoryHandler) WarehouseByProducts(c *fiber.Ctx) error {
	opts, err := parsePageOptions(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.WarehouseInventory(c.Context(), c.Params("id"), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StoreByProducts godoc
// @Summary      Existencias de una tienda agrupadas por producto
// @Tags         article
// @Produce      json
// @Param        id      path   string  true   "ID de la tienda"
// @Param        limit   query  int     false  "Límite"
// @Param        skip    query  int     false  "Inicio de la ventana"
// @Param        filter  query  string  false  "Filtro JSON (solo aplica sku)"
// @Success      200     {object}  dto.InventoryResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/article/{id}/store/byproducts [get]
func (h *InventoryHandler) StoreByProducts(c *fiber.Ctx) error {
	opts, err := parsePageOptions(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.StoreInventory(c.Context(), c.Params("id"), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
