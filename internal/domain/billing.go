package domain

import "time"

// BillingAccount is the terminal record of a wizard run. At most one of the
// six supplier references is set today, but the schema allows several so a
// composite package can share one billing identity later.
type BillingAccount struct {
	ID                 int64     `db:"id" json:"id"`
	CompanyName        string    `db:"company_name" json:"companyName"`
	CompanyTitle       string    `db:"company_title" json:"companyTitle"`
	CompanyDescription string    `db:"company_description" json:"companyDescription"`
	CompanyEmail       string    `db:"company_email" json:"companyEmail"`
	CompanyVAT         string    `db:"company_vat" json:"companyVat"`
	CompanyPhone       string    `db:"company_phone" json:"companyPhone"`
	CompanyAddress     string    `db:"company_address" json:"companyAddress"`
	CompanyZipCode     string    `db:"company_zip_code" json:"companyZipCode"`
	CompanyIBAN        string    `db:"company_iban" json:"companyIban"`
	CompanyIBANName    string    `db:"company_iban_name" json:"companyIbanName"`
	TransferSupplierID *int64    `db:"transfer_supplier_id" json:"transferSupplierId"`
	CustomerID         *int64    `db:"customer_id" json:"hotelId"`
	TourSupplierID     *int64    `db:"tour_supplier_id" json:"tourSupplierId"`
	RncSupplierID      *int64    `db:"rnc_supplier_id" json:"rncSupplierId"`
	BoatSupplierID     *int64    `db:"boat_supplier_id" json:"boatSupplierId"`
	ResSupplierID      *int64    `db:"res_supplier_id" json:"resSupplierId"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// BranchIDs carries whichever supplier ids arrived in the terminal step's
// continuation parameters. Nil means the branch was not part of this run.
type BranchIDs struct {
	Customer         *int64
	TransferSupplier *int64
	TourSupplier     *int64
	RncSupplier      *int64
	BoatSupplier     *int64
	ResSupplier      *int64
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
