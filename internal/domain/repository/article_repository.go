package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

// ArticleRow fila del listado combinado: la unidad con su producto y su tienda
// aplanados. Las relaciones son punteros: una referencia colgante deja la
// relación en nil sin tumbar la fila (join externo).
type ArticleRow struct {
	Article entity.Article
	Product *entity.Product
	Store   *entity.Store
}

// ArticleRepository puerto de persistencia para Article (DIP).
// Las operaciones de consulta reciben context; las de escritura son de un solo
// documento, sin atomicidad entre colecciones.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id string) error
	ListByProduct(productID string) ([]*entity.Article, error)

	// ExecutePipeline ejecuta un pipeline armado por query.Build y devuelve
	// las filas de la ventana con sus relaciones aplanadas.
	ExecutePipeline(ctx context.Context, p query.Pipeline) ([]ArticleRow, error)
	// CountAll conteo bruto de la colección completa; es el universo de
	// paginación del listado por ubicación, no el conteo de la ubicación.
	CountAll(ctx context.Context) (int, error)
}
