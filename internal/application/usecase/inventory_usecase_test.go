package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

func TestWarehouseInventory_IDInvalido(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, 15)

	_, err := uc.WarehouseInventory(context.Background(), "no-es-uuid", dto.PageOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseInventory_CampoDePresencia(t *testing.T) {
	inv := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(inv, 15)

	_, err := uc.WarehouseInventory(context.Background(), testLocationID, dto.PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, query.FieldTransferedAt, inv.lastParams.Presence)

	_, err = uc.StoreInventory(context.Background(), testLocationID, dto.PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, query.FieldSoldAt, inv.lastParams.Presence)
}

func TestWarehouseInventory_SoloAplicaElFiltroDeSku(t *testing.T) {
	inv := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(inv, 15)

	_, err := uc.WarehouseInventory(context.Background(), testLocationID, dto.PageOptions{
		Filter: `{"sku": "air", "brands": ["Nike"], "size": 40}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "air", inv.lastParams.SkuPattern, "de todo el filtro, aquí solo cuenta el sku")
}

func TestWarehouseInventory_ConteoAsimetrico(t *testing.T) {
	// la meta cuenta los productos distintos de la ubicación sin filtrar,
	// aunque el filtro de sku reduzca las filas devueltas
	inv := &fakeInventoryRepo{
		groups: []repository.ProductGroup{
			{ProductID: "p1", Total: 3, Sizes: []int{40, 40, 41}, Product: &entity.Product{ID: "p1", DisplayName: "Nike - Air Max"}},
			{ProductID: "p2", Total: 1, Sizes: []int{42}, Product: nil},
		},
		distinctCount: 5,
	}
	uc := usecase.NewInventoryUseCase(inv, 15)

	res, err := uc.WarehouseInventory(context.Background(), testLocationID, dto.PageOptions{Filter: `{"sku": "air"}`})
	require.NoError(t, err)

	require.Len(t, res.Data, 2)
	assert.Equal(t, 5, res.Meta.ItemCount)
	assert.Equal(t, "Nike - Air Max", res.Data[0].Product.Name)
	assert.Nil(t, res.Data[1].Product, "el grupo se informa aunque el producto ya no exista")
	assert.Equal(t, []int{42}, res.Data[1].Sizes)
}

func TestWarehouseInventory_VentanaYOrden(t *testing.T) {
	inv := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(inv, 15)

	_, err := uc.WarehouseInventory(context.Background(), testLocationID, dto.PageOptions{
		Limit: 10,
		Skip:  20,
		Sort:  `{"total": -1}`,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, inv.lastParams.Limit)
	assert.Equal(t, 20, inv.lastParams.Skip)
	require.Len(t, inv.lastParams.Sort, 1)
	assert.Equal(t, query.SortKey{Field: "total", Desc: true}, inv.lastParams.Sort[0])
}

func TestWarehouseInventory_SinUnidades(t *testing.T) {
	inv := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(inv, 15)

	res, err := uc.WarehouseInventory(context.Background(), testLocationID, dto.PageOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Meta.ItemCount)
}
