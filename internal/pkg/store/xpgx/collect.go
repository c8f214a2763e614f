package xpgx

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Get runs the query and scans the single result row into T by column name.
func Get[T any](ctx context.Context, p Pool, q sq.Sqlizer) (*T, error) {
	rows, err := p.Queryx(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}
