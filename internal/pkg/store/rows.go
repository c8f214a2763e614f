package store

import (
	"context"
	"fmt"

	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/store/xpgx"
)

// InsertPriceRows writes every decoded price row plus the parent's status
// transition as one all-or-nothing batch. On any failure zero rows for
// this parent remain.
func (s *store) InsertPriceRows(ctx context.Context, opts PriceRowsOpts) error {
	batch := &xpgx.Batch{}

	if opts.Wide {
		// One wide insert: each row fills a single array-typed column.
		if len(opts.Rows) != len(opts.Columns) {
			return constants.ErrMalformedRowData.WithCause(
				fmt.Errorf("%d rows for %d columns of %s", len(opts.Rows), len(opts.Columns), opts.Table))
		}

		values := make([]interface{}, 0, len(opts.Columns)+1)
		for _, row := range opts.Rows {
			arr := make([]string, len(row))
			for j, cell := range row {
				arr[j] = fmt.Sprint(cell)
			}
			values = append(values, arr)
		}
		values = append(values, opts.ParentID)

		batch.Add(builder().Insert(opts.Table).
			Columns(append(append([]string{}, opts.Columns...), opts.ParentColumn)...).
			Values(values...))
	} else {
		for _, row := range opts.Rows {
			batch.Add(builder().Insert(opts.Table).
				Columns(append(append([]string{}, opts.Columns...), opts.ParentColumn)...).
				Values(append(append([]interface{}{}, row...), opts.ParentID)...))
		}
	}

	batch.AddGuard(
		statusTransition(opts.ParentTable, opts.ParentID, opts.FromStatus, opts.ToStatus),
		1, constants.ErrStepOutOfOrder)

	return s.pool.RunBatch(ctx, batch)
}

// InsertPhotoRows writes one row per photographed item, absent photos as
// NULL, under the same batch contract as InsertPriceRows.
func (s *store) InsertPhotoRows(ctx context.Context, opts PhotoRowsOpts) error {
	batch := &xpgx.Batch{}

	for _, item := range opts.Items {
		batch.Add(builder().Insert(opts.Table).
			Columns(opts.ParentColumn, "photo1", "photo2", "photo3").
			Values(opts.ParentID, item.Photo1, item.Photo2, item.Photo3))
	}

	batch.AddGuard(
		statusTransition(opts.ParentTable, opts.ParentID, opts.FromStatus, opts.ToStatus),
		1, constants.ErrStepOutOfOrder)

	return s.pool.RunBatch(ctx, batch)
}
