package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL
// (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos.
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *ArticleRepo) Create(article *entity.Article) error {
	sql := `
		INSERT INTO articles (id, created_by, product_id, warehouse_id, store_id,
			warehouse_price, transfer_price, store_price, selling_price, size,
			sold_at, transfered_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), sql,
		article.ID, article.CreatedBy, article.ProductID, article.WarehouseID, article.StoreID,
		article.WarehousePrice, article.TransferPrice, article.StorePrice, article.SellingPrice,
		article.Size, article.SoldAt, article.TransferedAt, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	sql := articleBaseSelect + ` WHERE a.id = $1`
	row := r.q.QueryRow(context.Background(), sql, id)
	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// Update reescribe los campos mutables de la unidad.
func (r *ArticleRepo) Update(article *entity.Article) error {
	sql := `
		UPDATE articles
		SET product_id = $2, warehouse_id = $3, store_id = $4,
			warehouse_price = $5, transfer_price = $6, store_price = $7,
			selling_price = $8, size = $9, sold_at = $10, transfered_at = $11,
			updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), sql,
		article.ID, article.ProductID, article.WarehouseID, article.StoreID,
		article.WarehousePrice, article.TransferPrice, article.StorePrice,
		article.SellingPrice, article.Size, article.SoldAt, article.TransferedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la unidad.
func (r *ArticleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct todas las unidades de un producto (para el borrado en cascada).
func (r *ArticleRepo) ListByProduct(productID string) ([]*entity.Article, error) {
	sql := articleBaseSelect + ` WHERE a.product_id = $1`
	rows, err := r.q.Query(context.Background(), sql, productID)
	if err != nil {
		return nil, fmt.Errorf("list articles by product: %w", err)
	}
	defer rows.Close()

	var articles []*entity.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// ExecutePipeline compila el pipeline a un SELECT y devuelve las filas con
// producto y tienda aplanados. Los joins son externos: una referencia colgante
// deja la relación en nil y la fila se conserva.
func (r *ArticleRepo) ExecutePipeline(ctx context.Context, p query.Pipeline) ([]repository.ArticleRow, error) {
	sql, args := compilePipeline(p)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("execute article pipeline: %w", err)
	}
	defer rows.Close()

	var result []repository.ArticleRow
	for rows.Next() {
		row, err := scanArticleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountAll conteo bruto de toda la colección: es el universo de paginación
// del listado por ubicación y los clientes muestran ese total tal cual.
func (r *ArticleRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

const articleBaseSelect = `
	SELECT a.id::text, a.created_by::text, a.product_id::text, a.warehouse_id::text, a.store_id::text,
		a.warehouse_price, a.transfer_price, a.store_price, a.selling_price,
		a.size, a.sold_at, a.transfered_at, a.created_at, a.updated_at
	FROM articles a`

// scanArticle escanea las columnas base de la unidad.
func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(
		&a.ID, &a.CreatedBy, &a.ProductID, &a.WarehouseID, &a.StoreID,
		&a.WarehousePrice, &a.TransferPrice, &a.StorePrice, &a.SellingPrice,
		&a.Size, &a.SoldAt, &a.TransferedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanArticleRow escanea unidad + producto aplanado + tienda aplanada. Las
// columnas de relación vienen anulables por los LEFT JOIN.
func scanArticleRow(row pgx.Row) (repository.ArticleRow, error) {
	var (
		a  entity.Article
		ar repository.ArticleRow

		pID, pName, pDisplay, pSKU, pImage, pColor, pBrandID, pModelID *string
		pCreated, pUpdated                                             *time.Time

		sID, sName, sCreatedBy *string
		sCreated, sUpdated     *time.Time
	)
	err := row.Scan(
		&a.ID, &a.CreatedBy, &a.ProductID, &a.WarehouseID, &a.StoreID,
		&a.WarehousePrice, &a.TransferPrice, &a.StorePrice, &a.SellingPrice,
		&a.Size, &a.SoldAt, &a.TransferedAt, &a.CreatedAt, &a.UpdatedAt,
		&pID, &pName, &pDisplay, &pSKU, &pImage, &pColor, &pBrandID, &pModelID,
		&pCreated, &pUpdated,
		&sID, &sName, &sCreatedBy, &sCreated, &sUpdated,
	)
	if err != nil {
		return ar, err
	}

	ar.Article = a
	if pID != nil {
		ar.Product = &entity.Product{
			ID:           *pID,
			Name:         deref(pName),
			DisplayName:  deref(pDisplay),
			SKU:          deref(pSKU),
			ImageURL:     deref(pImage),
			Color:        deref(pColor),
			BrandID:      deref(pBrandID),
			BrandModelID: deref(pModelID),
			CreatedAt:    derefTime(pCreated),
			UpdatedAt:    derefTime(pUpdated),
		}
	}
	if sID != nil {
		ar.Store = &entity.Store{
			ID:        *sID,
			Name:      deref(sName),
			CreatedBy: deref(sCreatedBy),
			CreatedAt: derefTime(sCreated),
			UpdatedAt: derefTime(sUpdated),
		}
	}
	return ar, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
