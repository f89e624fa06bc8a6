package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryUseCase vistas de inventario agrupado por producto en una
// ubicación: qué queda y en qué tallas.
type InventoryUseCase struct {
	inventory    repository.InventoryRepository
	defaultLimit int
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(inventory repository.InventoryRepository, defaultLimit int) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, defaultLimit: defaultLimit}
}

// WarehouseInventory existencias de una bodega: unidades aún no transferidas,
// agrupadas por producto.
func (uc *InventoryUseCase) WarehouseInventory(ctx context.Context, warehouseID string, opts dto.PageOptions) (*dto.InventoryResponse, error) {
	return uc.inventoryAt(ctx, warehouseID, query.FieldTransferedAt, opts)
}

// StoreInventory existencias de una tienda: unidades transferidas y aún no
// vendidas, agrupadas por producto.
func (uc *InventoryUseCase) StoreInventory(ctx context.Context, storeID string, opts dto.PageOptions) (*dto.InventoryResponse, error) {
	return uc.inventoryAt(ctx, storeID, query.FieldSoldAt, opts)
}

// inventoryAt agrega por producto. Del lenguaje de filtros aquí solo aplica
// el patrón de sku; el conteo de paginación es el de productos distintos que
// alguna vez pasaron por la ubicación, sin filtrar, así que las filas de una
// página filtrada pueden ser menos de lo que la meta sugiere.
func (uc *InventoryUseCase) inventoryAt(ctx context.Context, locationID string, presence query.PresenceField, opts dto.PageOptions) (*dto.InventoryResponse, error) {
	if _, err := uuid.Parse(locationID); err != nil {
		return nil, fmt.Errorf("id de ubicación inválido: %w", domain.ErrInvalidInput)
	}

	preds, err := query.ParseFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	var skuPattern string
	for _, pred := range preds {
		if p, ok := pred.(query.SkuMatches); ok {
			skuPattern = p.Pattern
		}
	}

	sort, err := query.ParseSort(opts.Sort)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}

	groups, err := uc.inventory.GroupByProduct(ctx, repository.GroupParams{
		LocationID: locationID,
		Presence:   presence,
		SkuPattern: skuPattern,
		Sort:       sort,
		Limit:      limit,
		Skip:       opts.Skip,
	})
	if err != nil {
		return nil, err
	}
	itemCount, err := uc.inventory.CountDistinctProducts(ctx, locationID, presence)
	if err != nil {
		return nil, err
	}

	data := make([]dto.InventoryRow, 0, len(groups))
	for _, g := range groups {
		data = append(data, dto.InventoryRow{
			Product: toProductResponse(g.Product),
			Total:   g.Total,
			Sizes:   g.Sizes,
		})
	}
	return &dto.InventoryResponse{
		Data: data,
		Meta: query.ComputeMeta(opts.Limit, opts.Offset, itemCount, opts.SearchQuery),
	}, nil
}
