package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/domain/dto"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/continuation"
)

func branchIDs(values url.Values) (domain.BranchIDs, error) {
	var ids domain.BranchIDs
	var err error

	if ids.Customer, err = continuation.DecodeID(values, paramHotelID); err != nil {
		return ids, err
	}
	if ids.TransferSupplier, err = continuation.DecodeID(values, paramTransferID); err != nil {
		return ids, err
	}
	if ids.TourSupplier, err = continuation.DecodeID(values, paramTourID); err != nil {
		return ids, err
	}
	if ids.RncSupplier, err = continuation.DecodeID(values, paramRncID); err != nil {
		return ids, err
	}
	if ids.BoatSupplier, err = continuation.DecodeID(values, paramBoatID); err != nil {
		return ids, err
	}
	if ids.ResSupplier, err = continuation.DecodeID(values, paramResID); err != nil {
		return ids, err
	}

	return ids, nil
}

func anyBranch(ids domain.BranchIDs) bool {
	return ids.Customer != nil || ids.TransferSupplier != nil ||
		ids.TourSupplier != nil || ids.RncSupplier != nil ||
		ids.BoatSupplier != nil || ids.ResSupplier != nil
}

// GetFinalize echoes the branch ids the continuation address carries, so
// the terminal form can render without any server-side session.
func (c *Controller) GetFinalize(ctx echo.Context) error {
	ids, err := branchIDs(ctx.QueryParams())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		paramHotelID:    ids.Customer,
		paramTransferID: ids.TransferSupplier,
		paramTourID:     ids.TourSupplier,
		paramRncID:      ids.RncSupplier,
		paramBoatID:     ids.BoatSupplier,
		paramResID:      ids.ResSupplier,
	})
}

func (c *Controller) SubmitFinalize(ctx echo.Context) error {
	req := new(dto.FinalizeRequest)
	if err := ctx.Bind(req); err != nil {
		return constants.ErrValidationFailure.WithCause(err)
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	ids, err := branchIDs(ctx.QueryParams())
	if err != nil {
		return err
	}
	if !anyBranch(ids) {
		return constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("no supplier id in the continuation address"))
	}

	account := &domain.BillingAccount{
		CompanyName:        req.CompanyName,
		CompanyTitle:       req.CompanyTitle,
		CompanyDescription: req.CompanyDescription,
		CompanyEmail:       req.CompanyEmail,
		CompanyVAT:         req.CompanyVAT,
		CompanyPhone:       req.CompanyPhone,
		CompanyAddress:     req.CompanyAddress,
		CompanyZipCode:     req.CompanyZipCode,
		CompanyIBAN:        req.CompanyIBAN,
		CompanyIBANName:    req.CompanyIBANName,
	}

	id, err := c.service.Finalize(ctx.Request().Context(), account, ids)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		paramBillingID: id,
		"next":         nextURL("/final", idValues(paramBillingID, id)),
	})
}

// GetFinal serves the terminal confirmation: the billing record the wizard
// run produced, looked up by the id the finalize step's address carries.
func (c *Controller) GetFinal(ctx echo.Context) error {
	id, err := requireID(ctx.QueryParams(), paramBillingID)
	if err != nil {
		return err
	}

	account, err := c.service.BillingAccount(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, account)
}
