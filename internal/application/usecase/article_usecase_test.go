package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const testLocationID = "00000000-0000-0000-0000-00000000000a"

func newArticleUseCase(articles *fakeArticleRepo, brands *fakeBrandRepo, models *fakeModelRepo) *usecase.ArticleUseCase {
	return usecase.NewArticleUseCase(articles, brands, models, 15)
}

func TestCreateBulk_UnaUnidadPorEjemplar(t *testing.T) {
	articles := newFakeArticleRepo()
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	created, err := uc.CreateBulk(dto.CreateArticleRequest{
		CreatedBy:      "perfil-1",
		Product:        "producto-1",
		Warehouse:      "bodega-1",
		WarehousePrice: decimal.NewFromInt(100),
		Sizes: []dto.SizeQuantity{
			{Size: 40, Quantity: 2},
			{Size: 41, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Len(t, articles.byID, 3)

	sizes := map[int]int{}
	for _, a := range created {
		sizes[a.Size]++
		assert.Equal(t, "bodega-1", a.WarehouseID)
		assert.Nil(t, a.TransferedAt, "recién creada, sigue en bodega")
	}
	assert.Equal(t, map[int]int{40: 2, 41: 1}, sizes)
}

func TestCreateBulk_SinTallasEsEntradaInvalida(t *testing.T) {
	uc := newArticleUseCase(newFakeArticleRepo(), newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.CreateBulk(dto.CreateArticleRequest{Product: "p", Warehouse: "w"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransferencia_IdaYVuelta(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.byID["u1"] = &entity.Article{ID: "u1", WarehouseID: "bodega-1", Size: 40}
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	// ida: bodega → tienda
	res, err := uc.TransferToStore("u1", dto.TransferArticleRequest{Store: "tienda-1"})
	require.NoError(t, err)
	require.NotNil(t, res.StoreID)
	assert.Equal(t, "tienda-1", *res.StoreID)
	assert.NotNil(t, res.TransferedAt)
	assert.Equal(t, "bodega-1", res.WarehouseID, "la bodega de origen se conserva")

	// vuelta: tienda → bodega
	res, err = uc.TransferToWarehouse("u1", dto.TransferToWarehouseRequest{})
	require.NoError(t, err)
	assert.Nil(t, res.StoreID)
	assert.Nil(t, res.TransferedAt)
	assert.Equal(t, "bodega-1", res.WarehouseID)
}

func TestSell_SinTransferirEsConflicto(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.byID["u1"] = &entity.Article{ID: "u1", WarehouseID: "bodega-1"}
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.Sell("u1", dto.SellArticleRequest{SellingPrice: decimal.NewFromInt(150)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSell_YReversa(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.byID["u1"] = &entity.Article{ID: "u1", WarehouseID: "bodega-1"}
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.TransferToStore("u1", dto.TransferArticleRequest{Store: "tienda-1"})
	require.NoError(t, err)

	res, err := uc.Sell("u1", dto.SellArticleRequest{SellingPrice: decimal.NewFromInt(150)})
	require.NoError(t, err)
	require.NotNil(t, res.SoldAt)
	require.NotNil(t, res.SellingPrice)
	assert.True(t, res.SellingPrice.Equal(decimal.NewFromInt(150)))

	res, err = uc.RevertSell("u1")
	require.NoError(t, err)
	assert.Nil(t, res.SoldAt)
	assert.Nil(t, res.SellingPrice)
	assert.NotNil(t, res.TransferedAt, "la reversa de venta no toca la transferencia")
}

func TestListAtLocation_IDInvalido(t *testing.T) {
	uc := newArticleUseCase(newFakeArticleRepo(), newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.ListAtLocation(context.Background(), "no-es-uuid", dto.PageOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListAtLocation_FiltroMalFormado(t *testing.T) {
	uc := newArticleUseCase(newFakeArticleRepo(), newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.ListAtLocation(context.Background(), testLocationID, dto.PageOptions{Filter: "{no es json"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListAtLocation_ResuelveNombresDeMarca(t *testing.T) {
	articles := newFakeArticleRepo()
	brands := newFakeBrandRepo()
	brands.idsFor["Nike"] = "marca-1"
	uc := newArticleUseCase(articles, brands, newFakeModelRepo())

	_, err := uc.ListAtLocation(context.Background(), testLocationID, dto.PageOptions{
		Filter: `{"brands": ["Nike", "Inexistente"]}`,
	})
	require.NoError(t, err)

	var brandPred *query.BrandIn
	for _, stage := range articles.lastPipeline {
		if m, ok := stage.(query.MatchPredicate); ok {
			if p, ok := m.Predicate.(query.BrandIn); ok {
				brandPred = &p
			}
		}
	}
	require.NotNil(t, brandPred, "el pipeline debe llevar el predicado de marcas")
	assert.Equal(t, []string{"marca-1"}, brandPred.IDs, "el nombre inexistente se pierde en silencio")
}

func TestListAtLocation_ConteoDeColeccionCompleta(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.countAll = 47
	articles.rows = []repository.ArticleRow{
		{Article: entity.Article{ID: "u1", WarehouseID: testLocationID}},
		{Article: entity.Article{ID: "u2", WarehouseID: testLocationID}},
	}
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	res, err := uc.ListAtLocation(context.Background(), testLocationID, dto.PageOptions{Limit: 10, Offset: 0})
	require.NoError(t, err)

	// el conteo de la meta es el de toda la colección, no el de la página
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 47, res.Meta.ItemCount)
	assert.Equal(t, 5, res.Meta.PageCount)
	assert.Equal(t, 5, res.Meta.Page)
	assert.True(t, res.Meta.HasPreviousPage)
	assert.False(t, res.Meta.HasNextPage)
}

func TestListAtLocation_LimitePorDefectoEnLaVentana(t *testing.T) {
	articles := newFakeArticleRepo()
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	_, err := uc.ListAtLocation(context.Background(), testLocationID, dto.PageOptions{})
	require.NoError(t, err)

	var window *query.Window
	for _, stage := range articles.lastPipeline {
		if w, ok := stage.(query.Window); ok {
			window = &w
		}
	}
	require.NotNil(t, window)
	assert.Equal(t, 15, window.Limit, "sin limit en la petición, la ventana usa el tamaño por defecto")
}

func TestListAtLocation_RelacionesColgantesToleradas(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.countAll = 1
	articles.rows = []repository.ArticleRow{
		{Article: entity.Article{ID: "u1", WarehouseID: testLocationID}, Product: nil, Store: nil},
	}
	uc := newArticleUseCase(articles, newFakeBrandRepo(), newFakeModelRepo())

	res, err := uc.ListAtLocation(context.Background(), testLocationID, dto.PageOptions{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Nil(t, res.Data[0].Product, "la fila sobrevive con la relación ausente")
}

func TestAcdata(t *testing.T) {
	brands := newFakeBrandRepo()
	brands.names = []string{"Adidas", "Nike"}
	models := newFakeModelRepo()
	models.names = []string{"Air Max"}
	uc := newArticleUseCase(newFakeArticleRepo(), brands, models)

	res, err := uc.Acdata()
	require.NoError(t, err)
	assert.Equal(t, []string{"Adidas", "Nike"}, res.Brands)
	assert.Equal(t, []string{"Air Max"}, res.BrandModels)
}
