package domain

import "time"

// RegistrationStatus tracks how far a supplier has progressed through the
// onboarding wizard. Every step's batch flips it with a guarded update, so
// a replayed or skipped step fails instead of duplicating children.
type RegistrationStatus string

const (
	StatusCreated        RegistrationStatus = "created"
	StatusPricesRecorded RegistrationStatus = "prices_recorded"
	StatusPhotosRecorded RegistrationStatus = "photos_recorded"
	StatusFinalized      RegistrationStatus = "finalized"
)

type Hotel struct {
	ID             int64              `db:"id"`
	Name           string             `db:"name"`
	VAT            string             `db:"vat"`
	Type           string             `db:"type"`
	Phone          string             `db:"phone"`
	Email          string             `db:"email"`
	Address        string             `db:"address"`
	ZipCode        string             `db:"zip_code"`
	WelcomeMessage string             `db:"welcome_message"`
	Services       []string           `db:"services"`
	Suppliers      []string           `db:"suppliers"`
	Photo1         []byte             `db:"photo1"`
	Photo2         []byte             `db:"photo2"`
	Photo3         []byte             `db:"photo3"`
	Status         RegistrationStatus `db:"registration_status"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

type TransferSupplier struct {
	ID                int64              `db:"id"`
	Name              string             `db:"name"`
	VAT               string             `db:"vat"`
	InvoiceEmail      string             `db:"invoice_email"`
	NotificationEmail string             `db:"notification_email"`
	Address           string             `db:"address"`
	ZipCode           string             `db:"zip_code"`
	Phone             string             `db:"phone"`
	Logo              []byte             `db:"logo"`
	Status            RegistrationStatus `db:"registration_status"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

type TourSupplier struct {
	ID                int64              `db:"id"`
	Name              string             `db:"name"`
	VAT               string             `db:"vat"`
	NotificationEmail string             `db:"notification_email"`
	AccountingEmail   string             `db:"accounting_email"`
	Address           string             `db:"address"`
	ZipCode           string             `db:"zip_code"`
	Phone             string             `db:"phone"`
	Logo              []byte             `db:"logo"`
	Status            RegistrationStatus `db:"registration_status"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

type RentACarSupplier struct {
	ID                int64              `db:"id"`
	Name              string             `db:"name"`
	VAT               string             `db:"vat"`
	NotificationEmail string             `db:"notification_email"`
	Email             string             `db:"email"`
	Address           string             `db:"address"`
	ZipCode           string             `db:"zip_code"`
	Phone             string             `db:"phone"`
	Logo              []byte             `db:"logo"`
	Status            RegistrationStatus `db:"registration_status"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

type BoatSupplier struct {
	ID                int64              `db:"id"`
	Name              string             `db:"name"`
	VAT               string             `db:"vat"`
	NotificationEmail string             `db:"notification_email"`
	Email             string             `db:"email"`
	Address           string             `db:"address"`
	ZipCode           string             `db:"zip_code"`
	Phone             string             `db:"phone"`
	Logo              []byte             `db:"logo"`
	Status            RegistrationStatus `db:"registration_status"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

type ReservationVenue struct {
	ID                int64              `db:"id"`
	Title             string             `db:"title"`
	URL               string             `db:"url"`
	VAT               string             `db:"vat"`
	Phone             string             `db:"phone"`
	NotificationEmail string             `db:"notification_email"`
	BillingEmail      string             `db:"billing_email"`
	Address           string             `db:"address"`
	ZipCode           string             `db:"zip_code"`
	Category          string             `db:"category"`
	MinConsumption    string             `db:"min_consumption"`
	PriceLevel        string             `db:"price_level"`
	Description       string             `db:"description"`
	OpenTime          string             `db:"open_time"`
	CloseTime         string             `db:"close_time"`
	Monday            bool               `db:"monday"`
	Tuesday           bool               `db:"tuesday"`
	Wednesday         bool               `db:"wednesday"`
	Thursday          bool               `db:"thursday"`
	Friday            bool               `db:"friday"`
	Saturday          bool               `db:"saturday"`
	Sunday            bool               `db:"sunday"`
	Image1            []byte             `db:"image1"`
	Image2            []byte             `db:"image2"`
	Image3            []byte             `db:"image3"`
	Status            RegistrationStatus `db:"registration_status"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}
