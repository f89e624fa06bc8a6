package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	brands *usecase.BrandUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, brands *usecase.BrandUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, brands: brands}
}

// List godoc
// @Summary      Listar productos
// @Tags         product
// @Produce      json
// @Param        limit        query  int     false  "Límite"
// @Param        skip         query  int     false  "Inicio de la ventana"
// @Param        searchQuery  query  string  false  "Búsqueda por nombre"
// @Param        sort         query  string  false  "Orden JSON"
// @Success      200          {object}  dto.ProductListResponse
// @Router       /api/product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         product
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/id/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Brands godoc
// @Summary      Nombres de todas las marcas
// @Tags         product
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/product/brands [get]
func (h *ProductHandler) Brands(c *fiber.Ctx) error {
	names, err := h.brands.ListBrandNames()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(names)
}

// BrandModels godoc
// @Summary      Nombres de todos los modelos
// @Tags         product
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/product/brandModels [get]
func (h *ProductHandler) BrandModels(c *fiber.Ctx) error {
	names, err := h.brands.ListModelNames()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(names)
}

// Add godoc
// @Summary      Crear producto (marca y modelo se crean al vuelo)
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse  "SKU duplicado"
// @Router       /api/product/add [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Editar producto
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Cambios"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product/id/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary      Eliminar producto y sus unidades en cascada
// @Tags         product
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/id/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
