package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Columnas permitidas para ORDER BY en el listado de productos.
var productSortColumns = map[string]string{
	"name":      "p.name",
	"sku":       "p.sku",
	"createdAt": "p.created_at",
	"updatedAt": "p.updated_at",
}

const productSelect = `
	SELECT p.id::text, p.name, COALESCE(b.name || ' - ' || bm.name, p.name) AS display_name,
		p.sku, p.image_url, p.color, p.created_by::text,
		p.brand_id::text, p.brand_model_id::text, p.created_at, p.updated_at
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN brand_models bm ON bm.id = p.brand_model_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	sql := `
		INSERT INTO products (id, name, sku, image_url, color, created_by, brand_id, brand_model_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), sql,
		product.ID, product.Name, product.SKU, product.ImageURL, product.Color,
		product.CreatedBy, product.BrandID, product.BrandModelID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, con su nombre derivado "marca - modelo".
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Update reescribe el producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	sql := `
		UPDATE products
		SET name = $2, sku = $3, image_url = $4, color = $5,
			brand_id = $6, brand_model_id = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), sql,
		product.ID, product.Name, product.SKU, product.ImageURL, product.Color,
		product.BrandID, product.BrandModelID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto. El borrado en cascada de sus unidades lo
// orquesta el caso de uso, no la base.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List búsqueda insensible a mayúsculas por nombre con orden y ventana.
func (r *ProductRepo) List(ctx context.Context, search string, sort []query.SortKey, limit, skip int) ([]*entity.Product, error) {
	if search == "" {
		search = "." // comodín regex: coincide con todo
	}

	args := []any{search}
	sql := productSelect + ` WHERE p.name ~* $1`

	orderBy := "p.name ASC"
	if len(sort) > 0 {
		var keys []string
		for _, key := range sort {
			col, ok := productSortColumns[key.Field]
			if !ok {
				continue
			}
			dir := "ASC"
			if key.Desc {
				dir = "DESC"
			}
			keys = append(keys, col+" "+dir)
		}
		if len(keys) > 0 {
			orderBy = strings.Join(keys, ", ")
		}
	}
	sql += "\n\tORDER BY " + orderBy

	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf("\n\tLIMIT $%d", len(args))
	}
	if skip > 0 {
		args = append(args, skip)
		sql += fmt.Sprintf("\n\tOFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// CountAll conteo de toda la colección.
func (r *ProductRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.DisplayName, &p.SKU, &p.ImageURL, &p.Color,
		&p.CreatedBy, &p.BrandID, &p.BrandModelID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
