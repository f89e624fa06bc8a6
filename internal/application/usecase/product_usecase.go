package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	products     repository.ProductRepository
	brands       repository.BrandRepository
	models       repository.BrandModelRepository
	articles     repository.ArticleRepository
	defaultLimit int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	brands repository.BrandRepository,
	models repository.BrandModelRepository,
	articles repository.ArticleRepository,
	defaultLimit int,
) *ProductUseCase {
	return &ProductUseCase{products: products, brands: brands, models: models, articles: articles, defaultLimit: defaultLimit}
}

// Create crea un producto. La marca y el modelo llegan por nombre y se buscan
// o crean al vuelo. Las tres escrituras son secuenciales y sin transacción:
// un fallo a mitad puede dejar una marca o modelo huérfanos, que los lectores
// toleran (joins externos).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Brand == "" || in.BrandModel == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	brand, err := uc.brands.GetByName(in.Brand)
	if err != nil {
		return nil, fmt.Errorf("buscar marca: %w", err)
	}
	if brand == nil {
		brand = &entity.Brand{
			ID:        uuid.New().String(),
			Name:      in.Brand,
			CreatedBy: in.CreatedBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.brands.Create(brand); err != nil {
			return nil, fmt.Errorf("crear marca: %w", err)
		}
	}

	model, err := uc.models.GetByName(in.BrandModel)
	if err != nil {
		return nil, fmt.Errorf("buscar modelo: %w", err)
	}
	if model == nil {
		model = &entity.BrandModel{
			ID:        uuid.New().String(),
			Name:      in.BrandModel,
			BrandID:   brand.ID,
			CreatedBy: in.CreatedBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.models.Create(model); err != nil {
			return nil, fmt.Errorf("crear modelo: %w", err)
		}
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		ImageURL:     in.ImageURL,
		Color:        in.Color,
		CreatedBy:    in.CreatedBy,
		BrandID:      brand.ID,
		BrandModelID: model.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	product.DisplayName = brand.Name + " - " + model.Name
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edición parcial de producto. Marca y modelo no se reescriben aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto en cascada: primero todas sus unidades, luego el
// producto. Las eliminaciones son secuenciales y sin transacción.
func (uc *ProductUseCase) Delete(id string) error {
	articles, err := uc.articles.ListByProduct(id)
	if err != nil {
		return fmt.Errorf("listar unidades del producto: %w", err)
	}
	for _, a := range articles {
		if err := uc.articles.Delete(a.ID); err != nil {
			return fmt.Errorf("eliminar unidad %s: %w", a.ID, err)
		}
	}
	return uc.products.Delete(id)
}

// List listado paginado del catálogo con búsqueda por nombre.
func (uc *ProductUseCase) List(ctx context.Context, opts dto.PageOptions) (*dto.ProductListResponse, error) {
	sort, err := query.ParseSort(opts.Sort)
	if err != nil {
		return nil, err
	}
	limit := opts.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}
	products, err := uc.products.List(ctx, opts.SearchQuery, sort, limit, opts.Skip)
	if err != nil {
		return nil, err
	}
	itemCount, err := uc.products.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data: data,
		Meta: query.ComputeMeta(opts.Limit, opts.Offset, itemCount, opts.SearchQuery),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	name := p.DisplayName
	if name == "" {
		name = p.Name
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		CreatedBy:    p.CreatedBy,
		Name:         name,
		SKU:          p.SKU,
		ImageURL:     p.ImageURL,
		Color:        p.Color,
		BrandID:      p.BrandID,
		BrandModelID: p.BrandModelID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
