package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ArticleHandler maneja las peticiones HTTP para unidades (Article) y el
// listado combinado por ubicación.
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// ListAtLocation godoc
// @Summary      Listar unidades en una ubicación (bodega o tienda)
// @Tags         article
// @Produce      json
// @Param        id      path   string  true   "ID de la ubicación"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset (para la meta)"
// @Param        skip    query  int     false  "Inicio de la ventana"
// @Param        filter  query  string  false  "Filtro JSON"
// @Param        sort    query  string  false  "Orden JSON"
// @Success      200     {object}  dto.ArticleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/article/{id} [get]
func (h *ArticleHandler) ListAtLocation(c *fiber.Ctx) error {
	opts, err := parsePageOptions(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListAtLocation(c.Context(), c.Params("id"), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Acdata godoc
// @Summary      Nombres de marcas y modelos para autocompletar filtros
// @Tags         article
// @Produce      json
// @Success      200  {object}  dto.AcdataResponse
// @Router       /api/article/acdata [get]
func (h *ArticleHandler) Acdata(c *fiber.Ctx) error {
	out, err := h.uc.Acdata()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una unidad por ID
// @Tags         article
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article/id/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Alta masiva de unidades (una por ejemplar de cada talla)
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Unidades a crear"
// @Success      201   {array}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/article/add [post]
func (h *ArticleHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBulk(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar una unidad
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la unidad"
// @Param        body  body  dto.UpdateArticleRequest  true  "Cambios"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article/id/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Transferir una unidad de bodega a tienda
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la unidad"
// @Param        body  body  dto.TransferArticleRequest  true  "Tienda destino"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article/transfer/{id} [put]
func (h *ArticleHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.TransferToStore(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TransferToWarehouse godoc
// @Summary      Devolver una unidad de tienda a bodega
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la unidad"
// @Param        body  body  dto.TransferToWarehouseRequest  true  "Bodega destino (opcional)"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article/transfer/{id}/warehouse [put]
func (h *ArticleHandler) TransferToWarehouse(c *fiber.Ctx) error {
	var in dto.TransferToWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.TransferToWarehouse(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sell godoc
// @Summary      Vender una unidad en tienda
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la unidad"
// @Param        body  body  dto.SellArticleRequest  true  "Precio de venta"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      409   {object}  dto.ErrorResponse  "la unidad no está en tienda"
// @Router       /api/article/sell/{id} [put]
func (h *ArticleHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Sell(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelSell godoc
// @Summary      Revertir la venta de una unidad
// @Tags         article
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article/cancelsell/{id} [put]
func (h *ArticleHandler) CancelSell(c *fiber.Ctx) error {
	out, err := h.uc.RevertSell(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una unidad
// @Tags         article
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article/id/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
