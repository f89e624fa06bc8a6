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

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca. El nombre es único.
func (r *BrandRepo) Create(brand *entity.Brand) error {
	sql := `
		INSERT INTO brands (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), sql,
		brand.ID, brand.Name, brand.CreatedBy, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene una marca por nombre exacto (para find-or-create).
func (r *BrandRepo) GetByName(name string) (*entity.Brand, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *BrandRepo) getBy(where string, arg any) (*entity.Brand, error) {
	sql := `SELECT id::text, name, created_by::text, created_at, updated_at FROM brands ` + where
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), sql, arg).Scan(
		&b.ID, &b.Name, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// Update reescribe la marca.
func (r *BrandRepo) Update(brand *entity.Brand) error {
	sql := `UPDATE brands SET name = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), sql, brand.ID, brand.Name, brand.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la marca.
func (r *BrandRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IDsByNames resuelve nombres de marca a ids; nombres inexistentes se omiten.
func (r *BrandRepo) IDsByNames(names []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id::text FROM brands WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, fmt.Errorf("brand ids by names: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// ListNames todos los nombres de marca, para autocompletar.
func (r *BrandRepo) ListNames() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT name FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brand names: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// scanIDs escanea una columna de texto a slice.
func scanIDs(rows pgx.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
