package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/service/registration"
)

func (c *Controller) CreateTourSupplier(ctx echo.Context) error {
	req := new(dto.CreateTourSupplierRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	logo, err := c.fileAttachment(ctx, "tLogo", "logo", true)
	if err != nil {
		return err
	}

	id, err := c.service.Tour.Create(ctx.Request().Context(),
		[]string{"name", "vat", "notification_email", "accounting_email", "address", "zip_code", "phone"},
		[]interface{}{req.Title, req.VAT, req.NotificationEmail, req.AccountingEmail, req.Address, req.ZipCode, req.Phone},
		[]registration.Attachment{logo})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/tourPrices", idValues(paramTourID, id)),
	})
}

func (c *Controller) GetTourPrices(ctx echo.Context) error {
	id, err := stepParentID(ctx, c.service.Tour, paramTourID, domain.StatusCreated)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{paramTourID: id})
}

func (c *Controller) SubmitTourPrices(ctx echo.Context) error {
	id, err := requireID(ctx.QueryParams(), paramTourID)
	if err != nil {
		return err
	}

	form, err := ctx.FormParams()
	if err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}

	if _, err := c.service.Tour.RecordPrices(ctx.Request().Context(), id, form); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   id,
		Next: nextURL("/everypay", idValues(paramTourID, id)),
	})
}
