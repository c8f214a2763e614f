package registration

import (
	"context"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/logger"
	"github.com/astoulakis/onboard/internal/pkg/store"
	"github.com/astoulakis/onboard/internal/pkg/uploads"
)

// Service owns one registrar per branch and the terminal convergence step.
type Service struct {
	store store.Store

	Hotel       *Registrar
	Transfer    *Registrar
	Tour        *Registrar
	RentACar    *Registrar
	Boat        *Registrar
	Reservation *Registrar
}

func NewService(st store.Store, intake *uploads.Intake) *Service {
	return &Service{
		store:       st,
		Hotel:       NewRegistrar(st, intake, Hotel),
		Transfer:    NewRegistrar(st, intake, Transfer),
		Tour:        NewRegistrar(st, intake, Tour),
		RentACar:    NewRegistrar(st, intake, RentACar),
		Boat:        NewRegistrar(st, intake, Boat),
		Reservation: NewRegistrar(st, intake, Reservation),
	}
}

// finalizeFrom is the status a branch must have reached before the
// terminal step may close it: photo-bearing branches finish their photo
// step, price-only branches their price step, and the single-submission
// branches finalize straight from creation.
var finalizeFrom = map[string]domain.RegistrationStatus{
	Hotel.Kind:       domain.StatusCreated,
	Transfer.Kind:    domain.StatusPricesRecorded,
	Tour.Kind:        domain.StatusPricesRecorded,
	RentACar.Kind:    domain.StatusPhotosRecorded,
	Boat.Kind:        domain.StatusPhotosRecorded,
	Reservation.Kind: domain.StatusCreated,
}

// Finalize converges whichever branches the continuation state carried
// into one billing record. Only the supplied branch foreign keys are
// non-null; each referenced supplier makes its guarded terminal status
// transition in the same transaction as the insert.
func (s *Service) Finalize(ctx context.Context, account *domain.BillingAccount, ids domain.BranchIDs) (int64, error) {
	account.CustomerID = ids.Customer
	account.TransferSupplierID = ids.TransferSupplier
	account.TourSupplierID = ids.TourSupplier
	account.RncSupplierID = ids.RncSupplier
	account.BoatSupplierID = ids.BoatSupplier
	account.ResSupplierID = ids.ResSupplier

	refs := make([]store.FinalizeRef, 0, 1)
	for _, link := range []struct {
		id    *int64
		kind  string
		table string
	}{
		{ids.Customer, Hotel.Kind, Hotel.ParentTable},
		{ids.TransferSupplier, Transfer.Kind, Transfer.ParentTable},
		{ids.TourSupplier, Tour.Kind, Tour.ParentTable},
		{ids.RncSupplier, RentACar.Kind, RentACar.ParentTable},
		{ids.BoatSupplier, Boat.Kind, Boat.ParentTable},
		{ids.ResSupplier, Reservation.Kind, Reservation.ParentTable},
	} {
		if link.id == nil {
			continue
		}
		refs = append(refs, store.FinalizeRef{
			Table:      link.table,
			ID:         *link.id,
			FromStatus: finalizeFrom[link.kind],
		})
	}

	id, err := s.store.InsertBillingAccount(ctx, account, refs)
	if err != nil {
		return 0, wrapPersistence(err)
	}

	logger.Infof(ctx, "registration finalized, billing account %d", id)
	return id, nil
}

// BillingAccount loads a finalized registration's terminal record.
func (s *Service) BillingAccount(ctx context.Context, id int64) (*domain.BillingAccount, error) {
	account, err := s.store.GetBillingAccount(ctx, id)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return account, nil
}
