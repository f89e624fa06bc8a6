package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// parsePageOptions coacciona los query params de página. limit, offset y skip
// viajan como texto; un valor presente pero no numérico es entrada inválida,
// no un default silencioso. filter y sort pasan crudos: los parsea el dominio.
func parsePageOptions(c *fiber.Ctx) (dto.PageOptions, error) {
	opts := dto.PageOptions{
		Sort:        c.Query("sort"),
		Filter:      c.Query("filter"),
		SearchQuery: c.Query("searchQuery"),
	}

	var err error
	if opts.Limit, err = queryInt(c, "limit"); err != nil {
		return dto.PageOptions{}, err
	}
	if opts.Offset, err = queryInt(c, "offset"); err != nil {
		return dto.PageOptions{}, err
	}
	if opts.Skip, err = queryInt(c, "skip"); err != nil {
		return dto.PageOptions{}, err
	}
	return opts, nil
}

func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser numérico: %w", name, domain.ErrInvalidInput)
	}
	return n, nil
}
