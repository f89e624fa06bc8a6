package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// List búsqueda insensible a mayúsculas por nombre (search vacío trae
	// todo), con orden y ventana [skip, skip+limit).
	List(ctx context.Context, search string, sort []query.SortKey, limit, skip int) ([]*entity.Product, error)
	// CountAll conteo de la colección completa (universo de paginación).
	CountAll(ctx context.Context) (int, error)
}
