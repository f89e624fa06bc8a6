package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func newProductUseCase(products *fakeProductRepo, brands *fakeBrandRepo, models *fakeModelRepo, articles *fakeArticleRepo) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(products, brands, models, articles, 15)
}

func TestProductCreate_CreaMarcaYModeloAlVuelo(t *testing.T) {
	products := newFakeProductRepo()
	brands := newFakeBrandRepo()
	models := newFakeModelRepo()
	uc := newProductUseCase(products, brands, models, newFakeArticleRepo())

	res, err := uc.Create(dto.CreateProductRequest{
		CreatedBy:  "perfil-1",
		Brand:      "Nike",
		BrandModel: "Air Max",
		SKU:        "NIKE-AM-001",
	})
	require.NoError(t, err)

	require.Len(t, brands.created, 1, "marca inexistente se crea")
	require.Len(t, models.created, 1, "modelo inexistente se crea")
	assert.Equal(t, brands.created[0].ID, models.created[0].BrandID)
	assert.Equal(t, "Nike - Air Max", res.Name)
	assert.Equal(t, brands.created[0].ID, res.BrandID)
}

func TestProductCreate_ReutilizaMarcaExistente(t *testing.T) {
	products := newFakeProductRepo()
	brands := newFakeBrandRepo()
	brands.byName["Nike"] = &entity.Brand{ID: "marca-1", Name: "Nike"}
	models := newFakeModelRepo()
	uc := newProductUseCase(products, brands, models, newFakeArticleRepo())

	res, err := uc.Create(dto.CreateProductRequest{
		Brand:      "Nike",
		BrandModel: "Air Max",
		SKU:        "NIKE-AM-001",
	})
	require.NoError(t, err)

	assert.Empty(t, brands.created, "la marca existente no se duplica")
	assert.Equal(t, "marca-1", res.BrandID)
}

func TestProductCreate_SinSkuEsEntradaInvalida(t *testing.T) {
	uc := newProductUseCase(newFakeProductRepo(), newFakeBrandRepo(), newFakeModelRepo(), newFakeArticleRepo())

	_, err := uc.Create(dto.CreateProductRequest{Brand: "Nike", BrandModel: "Air Max"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_EnCascada(t *testing.T) {
	products := newFakeProductRepo()
	products.byID["p1"] = &entity.Product{ID: "p1"}
	articles := newFakeArticleRepo()
	articles.byID["u1"] = &entity.Article{ID: "u1", ProductID: "p1"}
	articles.byID["u2"] = &entity.Article{ID: "u2", ProductID: "p1"}
	articles.byID["u3"] = &entity.Article{ID: "u3", ProductID: "otro"}
	uc := newProductUseCase(products, newFakeBrandRepo(), newFakeModelRepo(), articles)

	require.NoError(t, uc.Delete("p1"))

	assert.ElementsMatch(t, []string{"u1", "u2"}, articles.deleted, "caen solo las unidades del producto")
	assert.Equal(t, []string{"p1"}, products.deleted)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := newProductUseCase(newFakeProductRepo(), newFakeBrandRepo(), newFakeModelRepo(), newFakeArticleRepo())

	_, err := uc.GetByID("p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
