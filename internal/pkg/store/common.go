package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

const (
	TableHotels            = "customers"
	TableTransferSuppliers = "transfer_suppliers"
	TableTourSuppliers     = "tour_suppliers"
	TableRncSuppliers      = "rnc_suppliers"
	TableBoatSuppliers     = "boat_suppliers"
	TableReservations      = "reservations"
	TableTransferPrices    = "transfer_prices"
	TableTourPrices        = "tour_prices"
	TableRncPrices         = "rnc_prices"
	TableBoatPrices        = "boat_prices"
	TableRncPhotos         = "rnc_photos"
	TableBoatPhotos        = "boat_photos"
	TableBillingAccounts   = "everypay_table"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
