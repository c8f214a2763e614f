package xpgx

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchStatementOrder(t *testing.T) {
	var id int64
	mismatch := errors.New("guard tripped")

	b := (&Batch{}).
		AddReturningID(sq.Insert("t").Columns("a").Values(1).Suffix("RETURNING id"), &id).
		Add(sq.Insert("t").Columns("a").Values(2)).
		AddGuard(sq.Update("t").Set("a", 3), 1, mismatch)

	require.Equal(t, 3, b.Len())

	assert.Same(t, &id, b.stmts[0].returnID)
	assert.False(t, b.stmts[0].guarded)

	assert.Nil(t, b.stmts[1].returnID)
	assert.False(t, b.stmts[1].guarded)

	assert.True(t, b.stmts[2].guarded)
	assert.Equal(t, int64(1), b.stmts[2].expect)
	assert.Equal(t, mismatch, b.stmts[2].mismatchErr)
}

type fakeTxRow struct {
	id  int64
	err error
}

func (r fakeTxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

type fakeTx struct {
	executed  []string
	execCalls int
	failAt    int // Exec call number that errors, 0 = never
	zeroAt    int // Exec call number reporting zero affected rows
	scanID    int64
	scanErr   error
	commits   int
	rollbacks int
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execCalls++
	f.executed = append(f.executed, sql)
	if f.execCalls == f.failAt {
		return pgconn.CommandTag{}, errors.New("exec failed")
	}
	if f.execCalls == f.zeroAt {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.executed = append(f.executed, sql)
	return fakeTxRow{id: f.scanID, err: f.scanErr}
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

func TestRunBatchTxCommitsFullSuccess(t *testing.T) {
	var id int64
	tx := &fakeTx{scanID: 9}

	b := (&Batch{}).
		AddReturningID(sq.Insert("t").Columns("a").Values(1).Suffix("RETURNING id"), &id).
		Add(sq.Insert("c").Columns("b").Values(2)).
		AddGuard(sq.Update("t").Set("a", 3), 1, errors.New("guard"))

	require.NoError(t, runBatchTx(context.Background(), tx, b))

	assert.Equal(t, int64(9), id)
	assert.Len(t, tx.executed, 3)
	assert.Equal(t, 1, tx.commits)
	// The deferred rollback after commit is a no-op on a closed tx.
	assert.Equal(t, 1, tx.rollbacks)
}

func TestRunBatchTxRollsBackMidBatchFailure(t *testing.T) {
	tx := &fakeTx{failAt: 2}

	b := (&Batch{}).
		Add(sq.Insert("t").Columns("a").Values(1)).
		Add(sq.Insert("t").Columns("a").Values(2)).
		Add(sq.Insert("t").Columns("a").Values(3))

	err := runBatchTx(context.Background(), tx, b)
	require.Error(t, err)

	// The statement after the failing one never runs.
	assert.Len(t, tx.executed, 2)
	assert.Zero(t, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestRunBatchTxRollsBackGuardMismatch(t *testing.T) {
	mismatch := errors.New("step out of order")
	tx := &fakeTx{zeroAt: 2}

	b := (&Batch{}).
		Add(sq.Insert("t").Columns("a").Values(1)).
		AddGuard(sq.Update("t").Set("a", 2), 1, mismatch).
		Add(sq.Insert("t").Columns("a").Values(3))

	err := runBatchTx(context.Background(), tx, b)
	require.ErrorIs(t, err, mismatch)

	assert.Len(t, tx.executed, 2)
	assert.Zero(t, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestRunBatchTxRollsBackScanFailure(t *testing.T) {
	var id int64
	tx := &fakeTx{scanErr: errors.New("scan failed")}

	b := (&Batch{}).
		AddReturningID(sq.Insert("t").Columns("a").Values(1).Suffix("RETURNING id"), &id).
		Add(sq.Insert("t").Columns("a").Values(2))

	err := runBatchTx(context.Background(), tx, b)
	require.Error(t, err)

	assert.Len(t, tx.executed, 1)
	assert.Zero(t, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, id)
}
