package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"github.com/spf13/viper"

	"github.com/astoulakis/onboard/internal/api/controller"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/logger"
	"github.com/astoulakis/onboard/internal/pkg/store"
	"github.com/astoulakis/onboard/internal/pkg/uploads"
	"github.com/astoulakis/onboard/internal/service/registration"
)

type APIService struct {
	router              *echo.Echo
	registrationService *registration.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, intake *uploads.Intake) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler

	maxSize := viper.GetString(constants.ViperUploadsMaxSize)
	if _, err := bytes.Parse(maxSize); err != nil {
		return nil, fmt.Errorf("bad %s value %q: %w", constants.ViperUploadsMaxSize, maxSize, err)
	}
	svc.router.Use(middleware.BodyLimit(maxSize))

	svc.registrationService = registration.NewService(st, intake)

	cntrl := controller.NewController(svc.registrationService, intake)

	// Route names are the contract the existing wizard forms post to.
	wizard := svc.router.Group("", svc.AuthMiddleware)

	wizard.POST("/hotel", cntrl.CreateHotel)

	wizard.POST("/transferSubmit", cntrl.CreateTransferSupplier)
	wizard.GET("/transferPrices", cntrl.GetTransferPrices)
	wizard.POST("/transferPrices", cntrl.SubmitTransferPrices)

	wizard.POST("/tour", cntrl.CreateTourSupplier)
	wizard.GET("/tourPrices", cntrl.GetTourPrices)
	wizard.POST("/tourPrices", cntrl.SubmitTourPrices)

	wizard.POST("/rentacar", cntrl.CreateRentACarSupplier)
	wizard.GET("/rentacarPrices", cntrl.GetRentACarPrices)
	wizard.POST("/rentacarPrices", cntrl.SubmitRentACarPrices)
	wizard.GET("/rentacarPhotos", cntrl.GetRentACarPhotos)
	wizard.POST("/rentacarPhotos", cntrl.SubmitRentACarPhotos)

	wizard.POST("/boat", cntrl.CreateBoatSupplier)
	wizard.GET("/boatPrices", cntrl.GetBoatPrices)
	wizard.POST("/boatPrices", cntrl.SubmitBoatPrices)
	wizard.GET("/boatPhotos", cntrl.GetBoatPhotos)
	wizard.POST("/boatPhotos", cntrl.SubmitBoatPhotos)

	wizard.POST("/reservation", cntrl.CreateReservationVenue)

	wizard.GET("/everypay", cntrl.GetFinalize)
	wizard.POST("/everypay", cntrl.SubmitFinalize)

	wizard.GET("/final", cntrl.GetFinal)

	return svc, nil
}
