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

var _ repository.BrandModelRepository = (*BrandModelRepo)(nil)

// BrandModelRepo implementación del puerto BrandModelRepository sobre PostgreSQL.
type BrandModelRepo struct {
	q Querier
}

// NewBrandModelRepository construye el adaptador de persistencia para modelos.
func NewBrandModelRepository(q Querier) *BrandModelRepo {
	return &BrandModelRepo{q: q}
}

// Create persiste un nuevo modelo. El nombre es único.
func (r *BrandModelRepo) Create(model *entity.BrandModel) error {
	sql := `
		INSERT INTO brand_models (id, name, brand_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), sql,
		model.ID, model.Name, model.BrandID, model.CreatedBy, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand model: %w", err)
	}
	return nil
}

// GetByID obtiene un modelo por ID.
func (r *BrandModelRepo) GetByID(id string) (*entity.BrandModel, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene un modelo por nombre exacto (para find-or-create).
func (r *BrandModelRepo) GetByName(name string) (*entity.BrandModel, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *BrandModelRepo) getBy(where string, arg any) (*entity.BrandModel, error) {
	sql := `SELECT id::text, name, brand_id::text, created_by::text, created_at, updated_at FROM brand_models ` + where
	var m entity.BrandModel
	err := r.q.QueryRow(context.Background(), sql, arg).Scan(
		&m.ID, &m.Name, &m.BrandID, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand model: %w", err)
	}
	return &m, nil
}

// Update reescribe el modelo.
func (r *BrandModelRepo) Update(model *entity.BrandModel) error {
	sql := `UPDATE brand_models SET name = $2, brand_id = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), sql, model.ID, model.Name, model.BrandID, model.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el modelo.
func (r *BrandModelRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brand_models WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IDsByNames resuelve nombres de modelo a ids; nombres inexistentes se omiten.
func (r *BrandModelRepo) IDsByNames(names []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id::text FROM brand_models WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, fmt.Errorf("brand model ids by names: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// ListNames todos los nombres de modelo, para autocompletar.
func (r *BrandModelRepo) ListNames() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT name FROM brand_models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brand model names: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}
