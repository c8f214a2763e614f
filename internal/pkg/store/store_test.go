package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/store/xpgx"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

type fakePool struct {
	queries  []sq.Sqlizer
	row      fakeRow
	batches  []*xpgx.Batch
	batchErr error
}

func (f *fakePool) Queryx(_ context.Context, _ sq.Sqlizer) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePool) QueryRowx(_ context.Context, q sq.Sqlizer) (pgx.Row, error) {
	f.queries = append(f.queries, q)
	return f.row, nil
}

func (f *fakePool) RunBatch(_ context.Context, b *xpgx.Batch) error {
	f.batches = append(f.batches, b)
	return f.batchErr
}

func (f *fakePool) Close() {}

func TestCreateSupplierAppendsInitialStatus(t *testing.T) {
	pool := &fakePool{row: fakeRow{id: 42}}
	st := NewStore(pool)

	id, err := st.CreateSupplier(context.Background(),
		TableTransferSuppliers, []string{"name", "vat"}, []interface{}{"Hermes Transfers", "EL999"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.Len(t, pool.queries, 1)
	sql, args, err := pool.queries[0].ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "INSERT INTO transfer_suppliers")
	assert.Contains(t, sql, "registration_status")
	assert.Contains(t, sql, "RETURNING id")
	assert.Equal(t, []interface{}{"Hermes Transfers", "EL999", domain.StatusCreated}, args)
}

func TestCreateSupplierScanFailure(t *testing.T) {
	pool := &fakePool{row: fakeRow{err: pgx.ErrNoRows}}
	st := NewStore(pool)

	_, err := st.CreateSupplier(context.Background(), TableHotels, []string{"name"}, []interface{}{"x"})
	require.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestStatusTransitionSQL(t *testing.T) {
	sql, args, err := statusTransition(TableHotels, 5, domain.StatusCreated, domain.StatusFinalized).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE customers SET registration_status = $1, updated_at = now() "+
			"WHERE id = $2 AND registration_status = $3",
		sql)
	assert.Equal(t, []interface{}{domain.StatusFinalized, int64(5), domain.StatusCreated}, args)
}

func TestInsertPriceRowsBatchShape(t *testing.T) {
	pool := &fakePool{}
	st := NewStore(pool)

	err := st.InsertPriceRows(context.Background(), PriceRowsOpts{
		Table:        TableBoatPrices,
		Columns:      []string{"boat_name", "boat_type", "boat_price", "boat_descr"},
		ParentColumn: "boat_supplier_id",
		ParentTable:  TableBoatSuppliers,
		ParentID:     7,
		Rows: [][]interface{}{
			{"Poseidon", "Catamaran", "150", ""},
			{"Amphitrite", "Sailboat", "90", ""},
		},
		FromStatus: domain.StatusCreated,
		ToStatus:   domain.StatusPricesRecorded,
	})
	require.NoError(t, err)

	// One insert per row plus the guarded status transition.
	require.Len(t, pool.batches, 1)
	assert.Equal(t, 3, pool.batches[0].Len())
}

func TestInsertPriceRowsWideMismatch(t *testing.T) {
	pool := &fakePool{}
	st := NewStore(pool)

	err := st.InsertPriceRows(context.Background(), PriceRowsOpts{
		Table:   TableTourPrices,
		Columns: []string{"acropolis", "sounio", "delphi"},
		Rows:    [][]interface{}{{"1", "2", "3", "4", "5"}},
		Wide:    true,
	})
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
	assert.Empty(t, pool.batches)
}

func TestInsertPhotoRowsBatchShape(t *testing.T) {
	pool := &fakePool{}
	st := NewStore(pool)

	err := st.InsertPhotoRows(context.Background(), PhotoRowsOpts{
		Table:        TableRncPhotos,
		ParentColumn: "rnc_supplier_id",
		ParentTable:  TableRncSuppliers,
		ParentID:     9,
		Items:        []domain.PhotoTriple{{Photo1: []byte("a")}, {}},
		FromStatus:   domain.StatusPricesRecorded,
		ToStatus:     domain.StatusPhotosRecorded,
	})
	require.NoError(t, err)

	require.Len(t, pool.batches, 1)
	assert.Equal(t, 3, pool.batches[0].Len())
}

func TestInsertBillingAccountBatchShape(t *testing.T) {
	pool := &fakePool{}
	st := NewStore(pool)

	_, err := st.InsertBillingAccount(context.Background(), &domain.BillingAccount{}, []FinalizeRef{
		{Table: TableRncSuppliers, ID: 2, FromStatus: domain.StatusPhotosRecorded},
		{Table: TableBoatSuppliers, ID: 8, FromStatus: domain.StatusPhotosRecorded},
	})
	require.NoError(t, err)

	// The insert plus one guarded transition per referenced supplier.
	require.Len(t, pool.batches, 1)
	assert.Equal(t, 3, pool.batches[0].Len())
}

func TestInsertBillingAccountBatchFailure(t *testing.T) {
	pool := &fakePool{batchErr: constants.ErrStepOutOfOrder}
	st := NewStore(pool)

	_, err := st.InsertBillingAccount(context.Background(), &domain.BillingAccount{}, nil)
	require.ErrorIs(t, err, constants.ErrStepOutOfOrder)
}

func TestWrapErr(t *testing.T) {
	assert.ErrorIs(t, wrapErr(pgx.ErrNoRows), constants.ErrDBNotFound)
	assert.ErrorIs(t, wrapErr(fmt.Errorf("select: %w", pgx.ErrNoRows)), constants.ErrDBNotFound)

	boom := errors.New("boom")
	assert.Equal(t, boom, wrapErr(boom))
}
