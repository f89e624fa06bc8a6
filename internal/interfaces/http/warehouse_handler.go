package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para bodegas.
type WarehouseHandler struct {
	uc       *usecase.WarehouseUseCase
	articles *usecase.ArticleUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, articles *usecase.ArticleUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, articles: articles}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouse
// @Produce      json
// @Param        limit        query  int     false  "Límite"
// @Param        skip         query  int     false  "Inicio de la ventana"
// @Param        searchQuery  query  string  false  "Búsqueda por nombre"
// @Success      200          {object}  dto.WarehouseListResponse
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	opts, err := parsePageOptions(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Articles godoc
// @Summary      Listar unidades presentes o pasadas por la bodega
// @Tags         warehouse
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        filter  query  string  false  "Filtro JSON"
// @Success      200     {object}  dto.ArticleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/warehouse/{id}/articles [get]
func (h *WarehouseHandler) Articles(c *fiber.Ctx) error {
	opts, err := parsePageOptions(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.articles.ListAtLocation(c.Context(), c.Params("id"), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouse
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/id/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear bodega
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      409   {object}  dto.ErrorResponse  "nombre duplicado"
// @Router       /api/warehouse/add [post]
func (h *WarehouseHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar bodega
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la bodega"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Cambios"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/id/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bodega
// @Tags         warehouse
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/id/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
