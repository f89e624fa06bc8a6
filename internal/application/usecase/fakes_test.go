package usecase_test

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeArticleRepo struct {
	byID     map[string]*entity.Article
	rows     []repository.ArticleRow
	countAll int

	// última consulta recibida, para asertar sobre el pipeline armado
	lastPipeline query.Pipeline
	deleted      []string
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byID: make(map[string]*entity.Article)}
}

func (f *fakeArticleRepo) Create(a *entity.Article) error {
	copia := *a
	f.byID[a.ID] = &copia
	return nil
}

func (f *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (f *fakeArticleRepo) Update(a *entity.Article) error {
	copia := *a
	f.byID[a.ID] = &copia
	return nil
}

func (f *fakeArticleRepo) Delete(id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeArticleRepo) ListByProduct(productID string) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range f.byID {
		if a.ProductID == productID {
			copia := *a
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) ExecutePipeline(_ context.Context, p query.Pipeline) ([]repository.ArticleRow, error) {
	f.lastPipeline = p
	return f.rows, nil
}

func (f *fakeArticleRepo) CountAll(context.Context) (int, error) {
	return f.countAll, nil
}

type fakeBrandRepo struct {
	byName  map[string]*entity.Brand
	idsFor  map[string]string // nombre → id para IDsByNames
	names   []string
	created []*entity.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{byName: make(map[string]*entity.Brand), idsFor: make(map[string]string)}
}

func (f *fakeBrandRepo) Create(b *entity.Brand) error {
	copia := *b
	f.byName[b.Name] = &copia
	f.created = append(f.created, &copia)
	return nil
}

func (f *fakeBrandRepo) GetByID(string) (*entity.Brand, error)  { return nil, nil }
func (f *fakeBrandRepo) Update(*entity.Brand) error             { return nil }
func (f *fakeBrandRepo) Delete(string) error                    { return nil }
func (f *fakeBrandRepo) ListNames() ([]string, error)           { return f.names, nil }
func (f *fakeBrandRepo) GetByName(name string) (*entity.Brand, error) {
	b, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBrandRepo) IDsByNames(names []string) ([]string, error) {
	var ids []string
	for _, n := range names {
		if id, ok := f.idsFor[n]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeModelRepo struct {
	byName  map[string]*entity.BrandModel
	idsFor  map[string]string
	names   []string
	created []*entity.BrandModel
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{byName: make(map[string]*entity.BrandModel), idsFor: make(map[string]string)}
}

func (f *fakeModelRepo) Create(m *entity.BrandModel) error {
	copia := *m
	f.byName[m.Name] = &copia
	f.created = append(f.created, &copia)
	return nil
}

func (f *fakeModelRepo) GetByID(string) (*entity.BrandModel, error) { return nil, nil }
func (f *fakeModelRepo) Update(*entity.BrandModel) error            { return nil }
func (f *fakeModelRepo) Delete(string) error                        { return nil }
func (f *fakeModelRepo) ListNames() ([]string, error)               { return f.names, nil }
func (f *fakeModelRepo) GetByName(name string) (*entity.BrandModel, error) {
	m, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (f *fakeModelRepo) IDsByNames(names []string) ([]string, error) {
	var ids []string
	for _, n := range names {
		if id, ok := f.idsFor[n]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeInventoryRepo struct {
	groups        []repository.ProductGroup
	distinctCount int

	lastParams repository.GroupParams
}

func (f *fakeInventoryRepo) GroupByProduct(_ context.Context, p repository.GroupParams) ([]repository.ProductGroup, error) {
	f.lastParams = p
	return f.groups, nil
}

func (f *fakeInventoryRepo) CountDistinctProducts(_ context.Context, _ string, _ query.PresenceField) (int, error) {
	return f.distinctCount, nil
}

type fakeProductRepo struct {
	byID    map[string]*entity.Product
	list    []*entity.Product
	count   int
	deleted []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	copia := *p
	f.byID[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	copia := *p
	f.byID[p.ID] = &copia
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductRepo) List(context.Context, string, []query.SortKey, int, int) ([]*entity.Product, error) {
	return f.list, nil
}

func (f *fakeProductRepo) CountAll(context.Context) (int, error) {
	return f.count, nil
}
