package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/continuation"
	"github.com/astoulakis/onboard/internal/service/registration"
)

// Terminal-step parameter names, one per branch. Whichever of these the
// continuation address carries decides which foreign keys the billing
// record gets.
const (
	paramHotelID    = "hotelId"
	paramTransferID = "transferSupplierId"
	paramTourID     = "tourSupplierId"
	paramRncID      = "rncSupplierId"
	paramBoatID     = "boatSupplierId"
	paramResID      = "resSupplierId"
	paramBillingID  = "billingAccountId"
)

func nextURL(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func idValues(name string, id int64) url.Values {
	values := url.Values{}
	values.Set(name, strconv.FormatInt(id, 10))
	return values
}

// requireID reads a mandatory parent id out of the continuation address.
func requireID(values url.Values, name string) (int64, error) {
	id, err := continuation.DecodeID(values, name)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("missing %s", name))
	}
	return *id, nil
}

// requireStatus checks the parent is exactly one step behind the form being
// rendered, so a replayed or step-skipping continuation address is rejected
// before the form ever shows. A missing parent surfaces as 404.
func requireStatus(ctx echo.Context, r *registration.Registrar, id int64, want domain.RegistrationStatus) error {
	status, err := r.Status(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if status != want {
		return constants.ErrStepOutOfOrder.WithCause(
			fmt.Errorf("supplier %d is %s, expected %s", id, status, want))
	}
	return nil
}

// stepParentID reads a render step's parent id and runs the status gate.
func stepParentID(ctx echo.Context, r *registration.Registrar, name string, want domain.RegistrationStatus) (int64, error) {
	id, err := requireID(ctx.QueryParams(), name)
	if err != nil {
		return 0, err
	}
	if err := requireStatus(ctx, r, id, want); err != nil {
		return 0, err
	}
	return id, nil
}

// fileAttachment spills one uploaded field through the intake and binds it
// to its column. An absent field yields an empty descriptor; whether that
// is fatal is the registrar's call.
func (c *Controller) fileAttachment(ctx echo.Context, field, column string, required bool) (registration.Attachment, error) {
	att := registration.Attachment{Column: column, Required: required}

	fh, err := ctx.FormFile(field)
	if err != nil {
		return att, nil
	}

	d, err := c.intake.Save(fh)
	if err != nil {
		return att, constants.ErrPersistenceFailure.WithCause(err)
	}

	att.Descriptor = &d
	return att, nil
}

// arrayAttachments maps up to len(columns) files posted under one field
// name onto consecutive columns (the hotel and reservation image trios).
func (c *Controller) arrayAttachments(ctx echo.Context, field string, columns []string) ([]registration.Attachment, error) {
	atts := make([]registration.Attachment, len(columns))
	for i, column := range columns {
		atts[i] = registration.Attachment{Column: column}
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return atts, nil
	}

	for i, fh := range form.File[field] {
		if i >= len(columns) {
			break
		}
		d, err := c.intake.Save(fh)
		if err != nil {
			return nil, constants.ErrPersistenceFailure.WithCause(err)
		}
		desc := d
		atts[i].Descriptor = &desc
	}

	return atts, nil
}

// collectPhotoTriples gathers photo{1..3}_{i} for every item index the
// continuation state declared. Missing parts stay nil and persist as NULL.
func (c *Controller) collectPhotoTriples(ctx echo.Context, count int) ([]domain.PhotoTriple, error) {
	items := make([]domain.PhotoTriple, count)

	form, err := ctx.MultipartForm()
	if err != nil {
		return items, nil
	}

	for i := 0; i < count; i++ {
		for p := 1; p <= 3; p++ {
			fhs := form.File[fmt.Sprintf("photo%d_%d", p, i)]
			if len(fhs) == 0 {
				continue
			}

			d, err := c.intake.Save(fhs[0])
			if err != nil {
				return nil, constants.ErrPersistenceFailure.WithCause(err)
			}
			data, err := c.intake.Read(d)
			if err != nil {
				return nil, constants.ErrPersistenceFailure.WithCause(err)
			}

			switch p {
			case 1:
				items[i].Photo1 = data
			case 2:
				items[i].Photo2 = data
			case 3:
				items[i].Photo3 = data
			}
		}
	}

	return items, nil
}

func presentKeys(values url.Values, whitelist []string) []string {
	present := make([]string, 0, len(whitelist))
	for _, key := range whitelist {
		if values.Has(key) {
			present = append(present, key)
		}
	}
	return present
}
