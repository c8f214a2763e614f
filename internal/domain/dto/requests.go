// Package dto holds the wizard's inbound form shapes. Field names are a
// client contract inherited from the live forms, quirks included, and must
// not be "fixed" without migrating the forms.
package dto

type CreateHotelRequest struct {
	Title          string `form:"hTitle" validate:"required"`
	VAT            string `form:"hVat" validate:"required"`
	Type           string `form:"hType" validate:"required"`
	Phone          string `form:"hPhone" validate:"required"`
	Email          string `form:"hEmail" validate:"required,email"`
	Address        string `form:"address" validate:"required"`
	ZipCode        string `form:"zipCode" validate:"required"`
	WelcomeMessage string `form:"description"`
}

type CreateTransferSupplierRequest struct {
	Title             string `form:"tsTitle" validate:"required"`
	VAT               string `form:"tsVat" validate:"required"`
	InvoiceEmail      string `form:"tsAEmail" validate:"required,email"`
	NotificationEmail string `form:"tsNEmail" validate:"required,email"`
	Address           string `form:"tsAddress" validate:"required"`
	ZipCode           string `form:"tsZipCode" validate:"required"`
	Phone             string `form:"tsPhone" validate:"required"`
}

type CreateTourSupplierRequest struct {
	Title             string `form:"tTitle" validate:"required"`
	VAT               string `form:"tVat" validate:"required"`
	NotificationEmail string `form:"tNotEmail" validate:"required,email"`
	AccountingEmail   string `form:"tAcEmail" validate:"required,email"`
	Address           string `form:"tAddress" validate:"required"`
	ZipCode           string `form:"tZipCode" validate:"required"`
	Phone             string `form:"tPhone" validate:"required"`
}

type CreateRentACarSupplierRequest struct {
	Title             string `form:"rncTitle" validate:"required"`
	VAT               string `form:"rncVat" validate:"required"`
	NotificationEmail string `form:"rncNotEmail" validate:"required,email"`
	Email             string `form:"rncEmail" validate:"required,email"`
	Address           string `form:"rncAddress" validate:"required"`
	ZipCode           string `form:"rncZipCode" validate:"required"`
	Phone             string `form:"rncPhone" validate:"required"`
}

type CreateBoatSupplierRequest struct {
	Title             string `form:"boatTitle" validate:"required"`
	VAT               string `form:"boatVat" validate:"required"`
	NotificationEmail string `form:"boatNotEmail" validate:"required,email"`
	Email             string `form:"boatEmail" validate:"required,email"`
	Address           string `form:"boatAddress" validate:"required"`
	ZipCode           string `form:"boatZipCode" validate:"required"`
	Phone             string `form:"boatPhone" validate:"required"`
}

type CreateReservationVenueRequest struct {
	Title             string `form:"resTitle" validate:"required"`
	URL               string `form:"resURL"`
	VAT               string `form:"resVat" validate:"required"`
	Phone             string `form:"resPhone" validate:"required"`
	NotificationEmail string `form:"resNotEmail" validate:"required,email"`
	BillingEmail      string `form:"resEmail" validate:"required,email"`
	Address           string `form:"resAddress" validate:"required"`
	ZipCode           string `form:"resZipCode" validate:"required"`
	Category          string `form:"resCat" validate:"required"`
	MinConsumption    string `form:"resMinCon"`
	PriceLevel        string `form:"resPrice"`
	Description       string `form:"resDescription"`
	OpenTime          string `form:"resOpen"`
	CloseTime         string `form:"resClose"`
	// The misspelled weekday names are what the forms post.
	Monday    string `form:"monday"`
	Tuesday   string `form:"tuesday"`
	Wednesday string `form:"wednesday"`
	Thursday  string `form:"thirsday"`
	Friday    string `form:"friday"`
	Saturday  string `form:"suterday"`
	Sunday    string `form:"sunday"`
}

type FinalizeRequest struct {
	CompanyName        string `form:"cname" validate:"required"`
	CompanyTitle       string `form:"ctitle" validate:"required"`
	CompanyDescription string `form:"description"`
	CompanyEmail       string `form:"email" validate:"required,email"`
	CompanyVAT         string `form:"vatNumber" validate:"required"`
	CompanyPhone       string `form:"phoneNumber" validate:"required"`
	CompanyAddress     string `form:"address" validate:"required"`
	CompanyZipCode     string `form:"zipCode" validate:"required"`
	CompanyIBAN        string `form:"ibanNumber" validate:"required"`
	CompanyIBANName    string `form:"ibanName" validate:"required"`
}
