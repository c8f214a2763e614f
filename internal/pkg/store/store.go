package store

import (
	"context"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// PriceRowsOpts describes one price-step batch: the child rows, which
// parent they hang off, and the status transition the parent must make for
// the batch to commit.
type PriceRowsOpts struct {
	Table        string
	Columns      []string
	ParentColumn string
	ParentTable  string
	ParentID     int64
	Rows         [][]interface{}
	// Wide collapses the batch into one insert where each decoded row
	// becomes a single array-typed column (the tour price matrix).
	Wide       bool
	FromStatus domain.RegistrationStatus
	ToStatus   domain.RegistrationStatus
}

// PhotoRowsOpts describes one photo-step batch, one row per photographed
// item with up to three optional payloads.
type PhotoRowsOpts struct {
	Table        string
	ParentColumn string
	ParentTable  string
	ParentID     int64
	Items        []domain.PhotoTriple
	FromStatus   domain.RegistrationStatus
	ToStatus     domain.RegistrationStatus
}

// FinalizeRef names one supplier the terminal billing record links to,
// with the status it must currently be in.
type FinalizeRef struct {
	Table      string
	ID         int64
	FromStatus domain.RegistrationStatus
}

type Store interface {
	CreateSupplier(ctx context.Context, table string, columns []string, values []interface{}) (int64, error)
	InsertPriceRows(ctx context.Context, opts PriceRowsOpts) error
	InsertPhotoRows(ctx context.Context, opts PhotoRowsOpts) error
	InsertBillingAccount(ctx context.Context, account *domain.BillingAccount, refs []FinalizeRef) (int64, error)
	GetSupplierStatus(ctx context.Context, table string, id int64) (domain.RegistrationStatus, error)
	GetBillingAccount(ctx context.Context, id int64) (*domain.BillingAccount, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
