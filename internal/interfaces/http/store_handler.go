package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones HTTP para tiendas.
type StoreHandler struct {
	uc       *usecase.StoreUseCase
	articles *usecase.ArticleUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, articles *usecase.ArticleUseCase) *StoreHandler {
	return &StoreHandler{uc: uc, articles: articles}
}

// List godoc
// @Summary      Listar tiendas con su conteo de unidades sin vender
// @Tags         store
// @Produce      json
// @Param        limit        query  int     false  "Límite"
// @Param        skip         query  int     false  "Inicio de la ventana"
// @Param        searchQuery  query  string  false  "Búsqueda por nombre"
// @Success      200          {object}  dto.StoreListResponse
// @Router       /api/store [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
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
// @Summary      Listar unidades presentes o pasadas por la tienda
// @Tags         store
// @Produce      json
// @Param        id      path   string  true   "ID de la tienda"
// @Param        filter  query  string  false  "Filtro JSON"
// @Success      200     {object}  dto.ArticleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/store/{id}/articles [get]
func (h *StoreHandler) Articles(c *fiber.Ctx) error {
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
// @Summary      Obtener tienda por ID
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/id/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear tienda
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreResponse
// @Failure      409   {object}  dto.ErrorResponse  "nombre duplicado"
// @Router       /api/store/add [post]
func (h *StoreHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
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
// @Summary      Editar tienda
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la tienda"
// @Param        body  body  dto.UpdateStoreRequest  true  "Cambios"
// @Success      200   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/store/id/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
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
// @Summary      Eliminar tienda
// @Tags         store
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/id/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
