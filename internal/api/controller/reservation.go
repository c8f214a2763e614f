package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
)

func (c *Controller) CreateReservationVenue(ctx echo.Context) error {
	req := new(dto.CreateReservationVenueRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	atts, err := c.arrayAttachments(ctx, "resImages", []string{"image1", "image2", "image3"})
	if err != nil {
		return err
	}

	id, err := c.service.Reservation.Create(ctx.Request().Context(),
		[]string{
			"title", "url", "vat", "phone", "notification_email", "billing_email",
			"address", "zip_code", "category", "min_consumption", "price_level",
			"description", "open_time", "close_time",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
		[]interface{}{
			req.Title, req.URL, req.VAT, req.Phone, req.NotificationEmail, req.BillingEmail,
			req.Address, req.ZipCode, req.Category, req.MinConsumption, req.PriceLevel,
			req.Description, req.OpenTime, req.CloseTime,
			req.Monday != "", req.Tuesday != "", req.Wednesday != "", req.Thursday != "",
			req.Friday != "", req.Saturday != "", req.Sunday != "",
		},
		atts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/everypay", idValues(paramResID, id)),
	})
}
