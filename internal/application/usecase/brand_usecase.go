package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// BrandUseCase casos de uso del catálogo de marcas y modelos. Normalmente se
// crean al vuelo desde el alta de productos; estas operaciones cubren la
// gestión explícita.
type BrandUseCase struct {
	brands repository.BrandRepository
	models repository.BrandModelRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(brands repository.BrandRepository, models repository.BrandModelRepository) *BrandUseCase {
	return &BrandUseCase{brands: brands, models: models}
}

// CreateBrand alta explícita de marca. El nombre es único.
func (uc *BrandUseCase) CreateBrand(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brands.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetBrand obtiene una marca por ID.
func (uc *BrandUseCase) GetBrand(id string) (*dto.BrandResponse, error) {
	brand, err := uc.brands.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(brand), nil
}

// DeleteBrand elimina la marca.
func (uc *BrandUseCase) DeleteBrand(id string) error {
	return uc.brands.Delete(id)
}

// ListBrandNames nombres de todas las marcas.
func (uc *BrandUseCase) ListBrandNames() ([]string, error) {
	return uc.brands.ListNames()
}

// CreateModel alta explícita de modelo, colgado de una marca existente.
func (uc *BrandUseCase) CreateModel(brandID string, in dto.CreateBrandModelRequest) (*dto.BrandModelResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brands.GetByID(brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	model := &entity.BrandModel{
		ID:        uuid.New().String(),
		Name:      in.Name,
		BrandID:   brand.ID,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.models.Create(model); err != nil {
		return nil, err
	}
	return toBrandModelResponse(model), nil
}

// GetModel obtiene un modelo por ID.
func (uc *BrandUseCase) GetModel(id string) (*dto.BrandModelResponse, error) {
	model, err := uc.models.GetByID(id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandModelResponse(model), nil
}

// DeleteModel elimina el modelo.
func (uc *BrandUseCase) DeleteModel(id string) error {
	return uc.models.Delete(id)
}

// ListModelNames nombres de todos los modelos.
func (uc *BrandUseCase) ListModelNames() ([]string, error) {
	return uc.models.ListNames()
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{
		ID:        b.ID,
		CreatedBy: b.CreatedBy,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBrandModelResponse(m *entity.BrandModel) *dto.BrandModelResponse {
	if m == nil {
		return nil
	}
	return &dto.BrandModelResponse{
		ID:        m.ID,
		BrandID:   m.BrandID,
		CreatedBy: m.CreatedBy,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
