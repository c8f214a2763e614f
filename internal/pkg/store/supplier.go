package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/logger"
)

// CreateSupplier inserts one parent record and returns the identifier the
// database generated for it. The id is never client-supplied.
func (s *store) CreateSupplier(ctx context.Context, table string, columns []string, values []interface{}) (int64, error) {
	query := builder().Insert(table).
		Columns(append(columns, "registration_status")...).
		Values(append(values, domain.StatusCreated)...).
		Suffix("RETURNING id")

	row, err := s.pool.QueryRowx(ctx, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	var id int64
	if err := row.Scan(&id); err != nil {
		logger.Errorf(ctx, "insert into %s: %s", table, err.Error())
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) GetSupplierStatus(ctx context.Context, table string, id int64) (domain.RegistrationStatus, error) {
	query := builder().Select("registration_status").
		From(table).
		Where(sq.Eq{"id": id})

	row, err := s.pool.QueryRowx(ctx, query)
	if err != nil {
		return "", wrapErr(err)
	}

	var status domain.RegistrationStatus
	if err := row.Scan(&status); err != nil {
		return "", wrapErr(err)
	}

	return status, nil
}

// statusTransition builds the guarded update every step batch carries. If
// the parent is not in the expected prior state the update touches zero
// rows and the whole batch rolls back.
func statusTransition(table string, id int64, from, to domain.RegistrationStatus) sq.UpdateBuilder {
	return builder().Update(table).
		Set("registration_status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "registration_status": from})
}
