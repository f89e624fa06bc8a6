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

// StoreUseCase casos de uso CRUD y listado de tiendas.
type StoreUseCase struct {
	repo         repository.StoreRepository
	defaultLimit int
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, defaultLimit int) *StoreUseCase {
	return &StoreUseCase{repo: repo, defaultLimit: defaultLimit}
}

// Create crea una tienda. El nombre es único.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store, 0), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store, 0), nil
}

// Update edición parcial de tienda.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store, 0), nil
}

// Delete elimina la tienda.
func (uc *StoreUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List listado paginado con búsqueda por nombre; cada fila trae el conteo de
// unidades aún no vendidas que aloja la tienda.
func (uc *StoreUseCase) List(ctx context.Context, opts dto.PageOptions) (*dto.StoreListResponse, error) {
	limit := opts.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}
	stores, err := uc.repo.List(ctx, opts.SearchQuery, limit, opts.Skip)
	if err != nil {
		return nil, err
	}
	itemCount, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.StoreResponse, 0, len(stores))
	for _, row := range stores {
		data = append(data, *toStoreResponse(&row.Store, row.Articles))
	}
	return &dto.StoreListResponse{
		Data: data,
		Meta: query.ComputeMeta(opts.Limit, opts.Offset, itemCount, opts.SearchQuery),
	}, nil
}

func toStoreResponse(s *entity.Store, articles int) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		CreatedBy: s.CreatedBy,
		Name:      s.Name,
		Articles:  articles,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
