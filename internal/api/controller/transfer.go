package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/service/registration"
)

func (c *Controller) CreateTransferSupplier(ctx echo.Context) error {
	req := new(dto.CreateTransferSupplierRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	logo, err := c.fileAttachment(ctx, "tsLogo", "logo", true)
	if err != nil {
		return err
	}

	id, err := c.service.Transfer.Create(ctx.Request().Context(),
		[]string{"name", "vat", "invoice_email", "notification_email", "address", "zip_code", "phone"},
		[]interface{}{req.Title, req.VAT, req.InvoiceEmail, req.NotificationEmail, req.Address, req.ZipCode, req.Phone},
		[]registration.Attachment{logo})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/transferPrices", idValues(paramTransferID, id)),
	})
}

func (c *Controller) GetTransferPrices(ctx echo.Context) error {
	id, err := stepParentID(ctx, c.service.Transfer, paramTransferID, domain.StatusCreated)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{paramTransferID: id})
}

func (c *Controller) SubmitTransferPrices(ctx echo.Context) error {
	id, err := requireID(ctx.QueryParams(), paramTransferID)
	if err != nil {
		return err
	}

	form, err := ctx.FormParams()
	if err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}

	if _, err := c.service.Transfer.RecordPrices(ctx.Request().Context(), id, form); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		ID:   id,
		Next: nextURL("/everypay", idValues(paramTransferID, id)),
	})
}
