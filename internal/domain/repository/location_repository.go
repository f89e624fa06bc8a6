package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
	// List búsqueda insensible a mayúsculas por nombre, orden por nombre
	// ascendente, ventana [skip, skip+limit).
	List(ctx context.Context, search string, limit, skip int) ([]*entity.Warehouse, error)
	CountAll(ctx context.Context) (int, error)
}

// StoreRow tienda con el conteo de unidades sin vender que aloja.
type StoreRow struct {
	Store    entity.Store
	Articles int
}

// StoreRepository puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id string) error
	// List búsqueda por nombre; cada fila incluye el conteo de unidades aún
	// no vendidas de la tienda. Ventana [skip, skip+limit).
	List(ctx context.Context, search string, limit, skip int) ([]StoreRow, error)
	CountAll(ctx context.Context) (int, error)
}
