package registration

import (
	"github.com/astoulakis/onboard/internal/pkg/continuation"
	"github.com/astoulakis/onboard/internal/pkg/formrow"
	"github.com/astoulakis/onboard/internal/pkg/store"
)

// Branch describes one supplier kind's path through the wizard. The six
// branches differ only in tables, column layouts and continuation
// parameter names; one registrar serves them all.
type Branch struct {
	Kind         string
	ParentTable  string
	PriceTable   string
	PhotoTable   string
	ParentColumn string
	PriceColumns []string
	// NumericCols are PriceColumns indices that must parse as decimals.
	NumericCols []int
	PriceLayout formrow.Layout
	// WidePrices collapses the price step into a single row whose columns
	// are arrays, one per decoded row (the tour site/price matrix).
	WidePrices   bool
	HasPhotos    bool
	Continuation continuation.Params
	LabelNoun    string
}

// The continuation parameter names are part of the client contract and
// intentionally uneven across branches.
var (
	Hotel = Branch{
		Kind:        "hotel",
		ParentTable: store.TableHotels,
	}

	Transfer = Branch{
		Kind:         "transfer",
		ParentTable:  store.TableTransferSuppliers,
		PriceTable:   store.TableTransferPrices,
		ParentColumn: "transfer_supplier_id",
		PriceColumns: []string{"from_address", "to_address", "vehicle_type", "day_price", "night_price"},
		NumericCols:  []int{3, 4},
		PriceLayout: formrow.Layout{
			Mode:    formrow.ModeNamed,
			Columns: []string{"fromAddress", "toAddress", "vehicleType", "dayPrice", "nightPrice"},
		},
		LabelNoun: "Route",
	}

	Tour = Branch{
		Kind:         "tour",
		ParentTable:  store.TableTourSuppliers,
		PriceTable:   store.TableTourPrices,
		ParentColumn: "tour_supplier_id",
		PriceColumns: []string{
			"acropolis", "sounio", "delphi", "epidauros", "meteora",
			"ifaistos", "mykines", "nafplio", "olympia",
		},
		PriceLayout: formrow.Layout{
			Mode:   formrow.ModePositional,
			Prefix: "price",
			Width:  5,
		},
		WidePrices: true,
		LabelNoun:  "Tour",
	}

	RentACar = Branch{
		Kind:         "rentacar",
		ParentTable:  store.TableRncSuppliers,
		PriceTable:   store.TableRncPrices,
		PhotoTable:   store.TableRncPhotos,
		ParentColumn: "rnc_supplier_id",
		PriceColumns: []string{
			"model", "description", "seats", "doors", "luggages", "speed",
			"cubic", "fuel", "ac", "age_limit", "price_per_day",
			"full_coverage", "full_coverage_plus",
		},
		NumericCols: []int{10, 11, 12},
		PriceLayout: formrow.Layout{
			Mode:   formrow.ModeIndexed,
			Prefix: "row",
			Width:  13,
		},
		HasPhotos: true,
		Continuation: continuation.Params{
			ID:     "rncSupplierId",
			Count:  "numberOfRows",
			Labels: "inputsFromFirstColumn",
		},
		LabelNoun: "Car Model",
	}

	Boat = Branch{
		Kind:         "boat",
		ParentTable:  store.TableBoatSuppliers,
		PriceTable:   store.TableBoatPrices,
		PhotoTable:   store.TableBoatPhotos,
		ParentColumn: "boat_supplier_id",
		PriceColumns: []string{"boat_name", "boat_type", "boat_price", "boat_descr"},
		NumericCols:  []int{2},
		PriceLayout: formrow.Layout{
			Mode:   formrow.ModeIndexed,
			Prefix: "b-row",
			Width:  4,
		},
		HasPhotos: true,
		Continuation: continuation.Params{
			ID:     "boatSupplierId",
			Count:  "numOfRows",
			Labels: "inputsColumn1",
		},
		LabelNoun: "Boat",
	}

	Reservation = Branch{
		Kind:        "reservation",
		ParentTable: store.TableReservations,
	}
)
