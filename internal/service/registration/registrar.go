package registration

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/continuation"
	"github.com/astoulakis/onboard/internal/pkg/formrow"
	"github.com/astoulakis/onboard/internal/pkg/logger"
	"github.com/astoulakis/onboard/internal/pkg/store"
	"github.com/astoulakis/onboard/internal/pkg/uploads"
)

// Attachment binds one uploaded file to the column its bytes land in. A
// nil descriptor means the field was absent from the submission.
type Attachment struct {
	Column     string
	Descriptor *uploads.Descriptor
	Required   bool
}

// Registrar runs one branch's steps. All six branches share this type,
// differing only in their Branch descriptor.
type Registrar struct {
	store  store.Store
	intake *uploads.Intake
	branch Branch
}

func NewRegistrar(st store.Store, intake *uploads.Intake, branch Branch) *Registrar {
	return &Registrar{store: st, intake: intake, branch: branch}
}

func (r *Registrar) Branch() Branch { return r.branch }

// Create persists the parent supplier record and returns its generated
// identifier. Validation and decode failures happen before any write; a
// required attachment that is missing aborts with no side effects.
func (r *Registrar) Create(ctx context.Context, columns []string, values []interface{}, attachments []Attachment) (int64, error) {
	for _, att := range attachments {
		if att.Descriptor == nil {
			if att.Required {
				return 0, constants.ErrAttachmentMissing.WithCause(
					fmt.Errorf("%s: no file for %s", r.branch.Kind, att.Column))
			}
			columns = append(columns, att.Column)
			values = append(values, []byte(nil))
			continue
		}

		data, err := r.intake.Read(*att.Descriptor)
		if err != nil {
			return 0, constants.ErrPersistenceFailure.WithCause(err)
		}
		columns = append(columns, att.Column)
		values = append(values, data)
	}

	id, err := r.store.CreateSupplier(ctx, r.branch.ParentTable, columns, values)
	if err != nil {
		return 0, wrapPersistence(err)
	}

	logger.Infof(ctx, "%s supplier %d created", r.branch.Kind, id)
	return id, nil
}

// Status reads how far this branch's parent has progressed. Render handlers
// use it to reject a replayed or tampered continuation address before the
// step's form is ever shown.
func (r *Registrar) Status(ctx context.Context, parentID int64) (domain.RegistrationStatus, error) {
	status, err := r.store.GetSupplierStatus(ctx, r.branch.ParentTable, parentID)
	if err != nil {
		return "", wrapPersistence(err)
	}
	return status, nil
}

// RecordPrices decodes the submitted grid and writes every row as a child
// of parentID in one transaction. The returned state is what the next
// step's address carries.
func (r *Registrar) RecordPrices(ctx context.Context, parentID int64, form url.Values) (continuation.State, error) {
	var state continuation.State

	rows, err := r.branch.PriceLayout.Decode(form)
	if err != nil {
		return state, err
	}
	if len(rows) == 0 {
		return state, constants.ErrValidationFailure.WithCause(
			fmt.Errorf("%s: no price rows submitted", r.branch.Kind))
	}

	if err := r.validateNumeric(rows); err != nil {
		return state, err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values = append(values, cells)
	}

	err = r.store.InsertPriceRows(ctx, store.PriceRowsOpts{
		Table:        r.branch.PriceTable,
		Columns:      r.branch.PriceColumns,
		ParentColumn: r.branch.ParentColumn,
		ParentTable:  r.branch.ParentTable,
		ParentID:     parentID,
		Rows:         values,
		Wide:         r.branch.WidePrices,
		FromStatus:   domain.StatusCreated,
		ToStatus:     domain.StatusPricesRecorded,
	})
	if err != nil {
		return state, wrapPersistence(err)
	}

	state.ParentID = parentID
	state.RowCount = len(rows)
	state.Labels = rows.Labels(len(rows), r.branch.LabelNoun)
	return state, nil
}

// RecordPhotos writes one row per photographed item in one transaction.
// The item count comes from the continuation state, not from the photos
// actually supplied; items with no photos persist as all-NULL rows.
func (r *Registrar) RecordPhotos(ctx context.Context, parentID int64, items []domain.PhotoTriple) error {
	if !r.branch.HasPhotos {
		return constants.ErrValidationFailure.WithCause(
			fmt.Errorf("%s branch has no photo step", r.branch.Kind))
	}

	err := r.store.InsertPhotoRows(ctx, store.PhotoRowsOpts{
		Table:        r.branch.PhotoTable,
		ParentColumn: r.branch.ParentColumn,
		ParentTable:  r.branch.ParentTable,
		ParentID:     parentID,
		Items:        items,
		FromStatus:   domain.StatusPricesRecorded,
		ToStatus:     domain.StatusPhotosRecorded,
	})
	if err != nil {
		return wrapPersistence(err)
	}
	return nil
}

func (r *Registrar) validateNumeric(rows formrow.Rows) error {
	for i, row := range rows {
		for _, col := range r.branch.NumericCols {
			if col >= len(row) || row[col] == "" {
				continue
			}
			if _, err := decimal.NewFromString(row[col]); err != nil {
				return constants.ErrValidationFailure.WithCause(
					fmt.Errorf("row %d: %s is not a number: %q", i, r.branch.PriceColumns[col], row[col]))
			}
		}
	}
	return nil
}

func wrapPersistence(err error) error {
	var ce *constants.CodedError
	if errors.As(err, &ce) {
		return err
	}
	return constants.ErrPersistenceFailure.WithCause(err)
}
