package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/formrow"
	"github.com/astoulakis/onboard/internal/service/registration"
)

func (c *Controller) CreateBoatSupplier(ctx echo.Context) error {
	req := new(dto.CreateBoatSupplierRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	logo, err := c.fileAttachment(ctx, "boatLogo", "logo", true)
	if err != nil {
		return err
	}

	id, err := c.service.Boat.Create(ctx.Request().Context(),
		[]string{"name", "vat", "notification_email", "email", "address", "zip_code", "phone"},
		[]interface{}{req.Title, req.VAT, req.NotificationEmail, req.Email, req.Address, req.ZipCode, req.Phone},
		[]registration.Attachment{logo})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/boatPrices", idValues(paramBoatID, id)),
	})
}

func (c *Controller) GetBoatPrices(ctx echo.Context) error {
	id, err := stepParentID(ctx, c.service.Boat, paramBoatID, domain.StatusCreated)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{paramBoatID: id})
}

func (c *Controller) SubmitBoatPrices(ctx echo.Context) error {
	id, err := requireID(ctx.QueryParams(), paramBoatID)
	if err != nil {
		return err
	}

	form, err := ctx.FormParams()
	if err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}

	state, err := c.service.Boat.RecordPrices(ctx.Request().Context(), id, form)
	if err != nil {
		return err
	}

	next, err := registration.Boat.Continuation.Encode(state)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   id,
		Next: nextURL("/boatPhotos", next),
	})
}

func (c *Controller) GetBoatPhotos(ctx echo.Context) error {
	state, err := registration.Boat.Continuation.Decode(ctx.QueryParams())
	if err != nil {
		return err
	}
	if err := requireStatus(ctx, c.service.Boat, state.ParentID, domain.StatusPricesRecorded); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		paramBoatID:  state.ParentID,
		"numOfRows":  state.RowCount,
		"boatModels": formrow.PadLabels(state.Labels, state.RowCount, registration.Boat.LabelNoun),
	})
}

func (c *Controller) SubmitBoatPhotos(ctx echo.Context) error {
	state, err := registration.Boat.Continuation.Decode(ctx.QueryParams())
	if err != nil {
		return err
	}

	items, err := c.collectPhotoTriples(ctx, state.RowCount)
	if err != nil {
		return err
	}

	if err := c.service.Boat.RecordPhotos(ctx.Request().Context(), state.ParentID, items); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   state.ParentID,
		Next: nextURL("/everypay", idValues(paramBoatID, state.ParentID)),
	})
}
