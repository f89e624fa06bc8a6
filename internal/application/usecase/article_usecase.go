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

// ArticleUseCase casos de uso del ciclo de vida de unidades y del listado
// combinado por ubicación.
type ArticleUseCase struct {
	articles     repository.ArticleRepository
	brands       repository.BrandRepository
	models       repository.BrandModelRepository
	defaultLimit int
}

// NewArticleUseCase construye el caso de uso. defaultLimit es el tamaño de
// página usado cuando la petición no trae limit.
func NewArticleUseCase(
	articles repository.ArticleRepository,
	brands repository.BrandRepository,
	models repository.BrandModelRepository,
	defaultLimit int,
) *ArticleUseCase {
	return &ArticleUseCase{articles: articles, brands: brands, models: models, defaultLimit: defaultLimit}
}

// CreateBulk crea una unidad por cada ejemplar pedido: una entrada
// {size: 40, quantity: 3} produce tres unidades de talla 40. Las escrituras
// son secuenciales y sin transacción; un fallo a mitad deja las ya creadas.
func (uc *ArticleUseCase) CreateBulk(in dto.CreateArticleRequest) ([]dto.ArticleResponse, error) {
	if in.Product == "" || in.Warehouse == "" || len(in.Sizes) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var created []dto.ArticleResponse
	for _, s := range in.Sizes {
		for i := 0; i < s.Quantity; i++ {
			article := &entity.Article{
				ID:             uuid.New().String(),
				CreatedBy:      in.CreatedBy,
				ProductID:      in.Product,
				WarehouseID:    in.Warehouse,
				WarehousePrice: in.WarehousePrice,
				TransferPrice:  in.TransferPrice,
				StorePrice:     in.StorePrice,
				Size:           s.Size,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := uc.articles.Create(article); err != nil {
				return nil, fmt.Errorf("crear unidad talla %d: %w", s.Size, err)
			}
			created = append(created, *toArticleResponse(article, nil, nil))
		}
	}
	return created, nil
}

// GetByID obtiene una unidad por ID.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article, nil, nil), nil
}

// Update edición parcial de precios y talla.
func (uc *ArticleUseCase) Update(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.WarehousePrice != nil {
		article.WarehousePrice = *in.WarehousePrice
	}
	if in.TransferPrice != nil {
		article.TransferPrice = *in.TransferPrice
	}
	if in.StorePrice != nil {
		article.StorePrice = *in.StorePrice
	}
	if in.Size != nil {
		article.Size = *in.Size
	}
	article.UpdatedAt = time.Now()
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article, nil, nil), nil
}

// Delete elimina una unidad.
func (uc *ArticleUseCase) Delete(id string) error {
	return uc.articles.Delete(id)
}

// TransferToStore sella la salida de bodega: asigna la tienda y marca
// transferedAt. La referencia a la bodega de origen se conserva.
func (uc *ArticleUseCase) TransferToStore(id string, in dto.TransferArticleRequest) (*dto.ArticleResponse, error) {
	if in.Store == "" {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	article.StoreID = &in.Store
	article.TransferedAt = &now
	if in.TransferPrice != nil {
		article.TransferPrice = *in.TransferPrice
	}
	article.UpdatedAt = now
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article, nil, nil), nil
}

// TransferToWarehouse reversa la transferencia: limpia la tienda y el sello
// transferedAt, y la unidad vuelve a contar en su bodega.
func (uc *ArticleUseCase) TransferToWarehouse(id string, in dto.TransferToWarehouseRequest) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Warehouse != "" {
		article.WarehouseID = in.Warehouse
	}
	article.StoreID = nil
	article.TransferedAt = nil
	article.UpdatedAt = time.Now()
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article, nil, nil), nil
}

// Sell sella la venta de una unidad en tienda. Vender una unidad que nunca
// fue transferida es un conflicto de estado, no un error de entrada.
func (uc *ArticleUseCase) Sell(id string, in dto.SellArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if article.StoreID == nil || article.TransferedAt == nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	article.SellingPrice = &in.SellingPrice
	article.SoldAt = &now
	article.UpdatedAt = now
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article, nil, nil), nil
}

// RevertSell deshace la venta: limpia soldAt y el precio final; la unidad
// vuelve a contar en su tienda.
func (uc *ArticleUseCase) RevertSell(id string) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	article.SoldAt = nil
	article.SellingPrice = nil
	article.UpdatedAt = time.Now()
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article, nil, nil), nil
}

// ListAtLocation listado combinado de unidades cuya bodega O tienda apunta a
// la ubicación. Arma el pipeline completo: filtro, resolución de nombres de
// marca/modelo a ids, orden, ventana. El conteo para la paginación es el de
// la colección completa de unidades, no el de la ubicación: los clientes
// existentes dependen de ese total.
func (uc *ArticleUseCase) ListAtLocation(ctx context.Context, locationID string, opts dto.PageOptions) (*dto.ArticleListResponse, error) {
	if _, err := uuid.Parse(locationID); err != nil {
		return nil, fmt.Errorf("id de ubicación inválido: %w", domain.ErrInvalidInput)
	}

	preds, err := query.ParseFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	preds, err = uc.resolveNames(preds)
	if err != nil {
		return nil, err
	}

	sort, err := query.ParseSort(opts.Sort)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}

	pipeline := query.Build(query.BuildParams{
		LocationID:     locationID,
		MatchWarehouse: true,
		MatchStore:     true,
		JoinStore:      true,
		Predicates:     preds,
		Sort:           sort,
		Limit:          limit,
		Skip:           opts.Skip,
	})

	rows, err := uc.articles.ExecutePipeline(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	itemCount, err := uc.articles.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ArticleResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, *toArticleResponse(&row.Article, row.Product, row.Store))
	}
	return &dto.ArticleListResponse{
		Data: data,
		Meta: query.ComputeMeta(opts.Limit, opts.Offset, itemCount, opts.SearchQuery),
	}, nil
}

// Acdata nombres de marcas y modelos para el autocompletado de filtros.
func (uc *ArticleUseCase) Acdata() (*dto.AcdataResponse, error) {
	brands, err := uc.brands.ListNames()
	if err != nil {
		return nil, err
	}
	models, err := uc.models.ListNames()
	if err != nil {
		return nil, err
	}
	return &dto.AcdataResponse{Brands: brands, BrandModels: models}, nil
}

// resolveNames traduce los nombres de marca/modelo de los predicados a ids
// contra el catálogo. Nombres inexistentes se pierden en silencio: el
// predicado queda con menos ids (o ninguno) y coincide con menos (o nada).
func (uc *ArticleUseCase) resolveNames(preds []query.Predicate) ([]query.Predicate, error) {
	for i, pred := range preds {
		switch p := pred.(type) {
		case query.BrandIn:
			ids, err := uc.brands.IDsByNames(p.Names)
			if err != nil {
				return nil, fmt.Errorf("resolver marcas: %w", err)
			}
			p.IDs = ids
			preds[i] = p
		case query.ModelIn:
			ids, err := uc.models.IDsByNames(p.Names)
			if err != nil {
				return nil, fmt.Errorf("resolver modelos: %w", err)
			}
			p.IDs = ids
			preds[i] = p
		}
	}
	return preds, nil
}

func toArticleResponse(a *entity.Article, product *entity.Product, store *entity.Store) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:             a.ID,
		CreatedBy:      a.CreatedBy,
		ProductID:      a.ProductID,
		WarehouseID:    a.WarehouseID,
		StoreID:        a.StoreID,
		Product:        toProductResponse(product),
		Store:          toStoreResponse(store, 0),
		WarehousePrice: a.WarehousePrice,
		TransferPrice:  a.TransferPrice,
		StorePrice:     a.StorePrice,
		SellingPrice:   a.SellingPrice,
		Size:           a.Size,
		SoldAt:         a.SoldAt,
		TransferedAt:   a.TransferedAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
