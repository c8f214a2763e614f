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

func (c *Controller) CreateRentACarSupplier(ctx echo.Context) error {
	req := new(dto.CreateRentACarSupplierRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	logo, err := c.fileAttachment(ctx, "rncLogo", "logo", true)
	if err != nil {
		return err
	}

	id, err := c.service.RentACar.Create(ctx.Request().Context(),
		[]string{"name", "vat", "notification_email", "email", "address", "zip_code", "phone"},
		[]interface{}{req.Title, req.VAT, req.NotificationEmail, req.Email, req.Address, req.ZipCode, req.Phone},
		[]registration.Attachment{logo})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/rentacarPrices", idValues(paramRncID, id)),
	})
}

func (c *Controller) GetRentACarPrices(ctx echo.Context) error {
	id, err := stepParentID(ctx, c.service.RentACar, paramRncID, domain.StatusCreated)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{paramRncID: id})
}

func (c *Controller) SubmitRentACarPrices(ctx echo.Context) error {
	id, err := requireID(ctx.QueryParams(), paramRncID)
	if err != nil {
		return err
	}

	form, err := ctx.FormParams()
	if err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}

	state, err := c.service.RentACar.RecordPrices(ctx.Request().Context(), id, form)
	if err != nil {
		return err
	}

	next, err := registration.RentACar.Continuation.Encode(state)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   id,
		Next: nextURL("/rentacarPhotos", next),
	})
}

func (c *Controller) GetRentACarPhotos(ctx echo.Context) error {
	state, err := registration.RentACar.Continuation.Decode(ctx.QueryParams())
	if err != nil {
		return err
	}
	if err := requireStatus(ctx, c.service.RentACar, state.ParentID, domain.StatusPricesRecorded); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		paramRncID:     state.ParentID,
		"numberOfRows": state.RowCount,
		"carModels":    formrow.PadLabels(state.Labels, state.RowCount, registration.RentACar.LabelNoun),
	})
}

func (c *Controller) SubmitRentACarPhotos(ctx echo.Context) error {
	state, err := registration.RentACar.Continuation.Decode(ctx.QueryParams())
	if err != nil {
		return err
	}

	items, err := c.collectPhotoTriples(ctx, state.RowCount)
	if err != nil {
		return err
	}

	if err := c.service.RentACar.RecordPhotos(ctx.Request().Context(), state.ParentID, items); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   state.ParentID,
		Next: nextURL("/everypay", idValues(paramRncID, state.ParentID)),
	})
}
