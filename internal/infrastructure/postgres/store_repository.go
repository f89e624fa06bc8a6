package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(store *entity.Store) error {
	sql := `
		INSERT INTO stores (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), sql,
		store.ID, store.Name, store.CreatedBy, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	sql := `SELECT id::text, name, created_by::text, created_at, updated_at FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), sql, id).Scan(
		&s.ID, &s.Name, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update reescribe la tienda.
func (r *StoreRepo) Update(store *entity.Store) error {
	sql := `UPDATE stores SET name = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), sql, store.ID, store.Name, store.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la tienda.
func (r *StoreRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List búsqueda por nombre; cada fila trae el conteo de unidades sin vender
// que la tienda aloja (join externo: una tienda sin unidades cuenta 0).
func (r *StoreRepo) List(ctx context.Context, search string, limit, skip int) ([]repository.StoreRow, error) {
	if search == "" {
		search = "."
	}
	args := []any{search}
	sql := `
		SELECT s.id::text, s.name, s.created_by::text, s.created_at, s.updated_at,
			COUNT(a.id) FILTER (WHERE a.sold_at IS NULL) AS articles
		FROM stores s
		LEFT JOIN articles a ON a.store_id = s.id
		WHERE s.name ~* $1
		GROUP BY s.id
		ORDER BY s.name ASC`
	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if skip > 0 {
		args = append(args, skip)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var result []repository.StoreRow
	for rows.Next() {
		var row repository.StoreRow
		err := rows.Scan(&row.Store.ID, &row.Store.Name, &row.Store.CreatedBy,
			&row.Store.CreatedAt, &row.Store.UpdatedAt, &row.Articles)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountAll conteo de toda la colección.
func (r *StoreRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return count, nil
}
