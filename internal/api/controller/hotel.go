package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
)

// Checkbox groups the hotel form may tick; anything else is dropped.
var (
	hotelServiceKeys = []string{
		"serviceTransfer", "serviceTour", "serviceRNC", "serviceBoat",
		"serviceHel", "serviceReservations", "serviceMiniMarket",
	}
	hotelSupplierKeys = []string{
		"haveTransfer", "haveTour", "haveRNC", "haveBoat",
		"haveHelic", "haveReserv", "haveProd",
	}
)

func (c *Controller) CreateHotel(ctx echo.Context) error {
	req := new(dto.CreateHotelRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	form, err := ctx.FormParams()
	if err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}

	atts, err := c.arrayAttachments(ctx, "hotelImages", []string{"photo1", "photo2", "photo3"})
	if err != nil {
		return err
	}

	id, err := c.service.Hotel.Create(ctx.Request().Context(),
		[]string{"name", "vat", "type", "phone", "email", "address", "zip_code", "welcome_message", "services", "suppliers"},
		[]interface{}{
			req.Title, req.VAT, req.Type, req.Phone, req.Email,
			req.Address, req.ZipCode, req.WelcomeMessage,
			presentKeys(form, hotelServiceKeys), presentKeys(form, hotelSupplierKeys),
		},
		atts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, stepResponse{
		ID:   id,
		Next: nextURL("/everypay", idValues(paramHotelID, id)),
	})
}
