package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD y listado de bodegas.
type WarehouseUseCase struct {
	repo         repository.WarehouseRepository
	defaultLimit int
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, defaultLimit int) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, defaultLimit: defaultLimit}
}

// Create crea una bodega. El nombre es único.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update edición parcial de bodega.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete elimina la bodega.
func (uc *WarehouseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List listado paginado con búsqueda por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context, opts dto.PageOptions) (*dto.WarehouseListResponse, error) {
	limit := opts.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}
	warehouses, err := uc.repo.List(ctx, opts.SearchQuery, limit, opts.Skip)
	if err != nil {
		return nil, err
	}
	itemCount, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		data = append(data, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Data: data,
		Meta: query.ComputeMeta(opts.Limit, opts.Offset, itemCount, opts.SearchQuery),
	}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CreatedBy: w.CreatedBy,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
