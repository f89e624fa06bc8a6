package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var errCaptura = errors.New("consulta capturada")

// capturaQuerier guarda el SQL y los argumentos sin tocar la base.
type capturaQuerier struct {
	sql  string
	args []any
}

func (c *capturaQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, errCaptura
}

func (c *capturaQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, errCaptura
}

func (c *capturaQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return nil
}

func TestGroupByProduct_FormaDelSQL(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewInventoryRepository(q)

	_, err := repo.GroupByProduct(context.Background(), repository.GroupParams{
		LocationID: "11111111-1111-1111-1111-111111111111",
		Presence:   query.FieldTransferedAt,
		SkuPattern: "AIR",
		Sort:       []query.SortKey{{Field: "name", Desc: true}},
		Limit:      5,
		Skip:       10,
	})
	require.ErrorIs(t, err, errCaptura)

	// Total y Sizes solo cuentan las unidades todavía presentes en la bodega.
	assert.Equal(t, 2, strings.Count(q.sql, "FILTER (WHERE a.transfered_at IS NULL)"))
	assert.Contains(t, q.sql, "COUNT(*) FILTER")
	assert.Contains(t, q.sql, "ARRAY_AGG(a.size ORDER BY a.size) FILTER")

	// El sku se evalúa sobre la columna del producto, después del join
	// externo; la ubicación sobre la unidad misma.
	assert.Contains(t, q.sql, "LEFT JOIN products p ON p.id = a.product_id")
	assert.Contains(t, q.sql, "a.warehouse_id = $1")
	assert.Contains(t, q.sql, "p.sku ~* $2")

	groupIdx := strings.Index(q.sql, "GROUP BY")
	orderIdx := strings.Index(q.sql, "ORDER BY p.name DESC")
	limitIdx := strings.Index(q.sql, "LIMIT")
	offsetIdx := strings.Index(q.sql, "OFFSET")
	require.NotEqual(t, -1, groupIdx)
	require.NotEqual(t, -1, orderIdx)
	require.NotEqual(t, -1, limitIdx)
	require.NotEqual(t, -1, offsetIdx)
	assert.Less(t, groupIdx, orderIdx)
	assert.Less(t, orderIdx, limitIdx, "el ORDER BY debe preceder a la ventana")
	assert.Less(t, limitIdx, offsetIdx)

	assert.Equal(t, []any{"11111111-1111-1111-1111-111111111111", "AIR", 5, 10}, q.args)
}

func TestGroupByProduct_PresenciaDeTienda(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewInventoryRepository(q)

	_, err := repo.GroupByProduct(context.Background(), repository.GroupParams{
		LocationID: "22222222-2222-2222-2222-222222222222",
		Presence:   query.FieldSoldAt,
	})
	require.ErrorIs(t, err, errCaptura)

	assert.Contains(t, q.sql, "a.store_id = $1")
	assert.Equal(t, 2, strings.Count(q.sql, "FILTER (WHERE a.sold_at IS NULL)"))
	// Sin filtro de sku ni ventana: un solo argumento y orden por defecto.
	assert.Equal(t, []any{"22222222-2222-2222-2222-222222222222"}, q.args)
	assert.Contains(t, q.sql, "ORDER BY total ASC")
	assert.NotContains(t, q.sql, "LIMIT")
}
