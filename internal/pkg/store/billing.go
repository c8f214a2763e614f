package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/astoulakis/onboard/internal/domain"
	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/logger"
	"github.com/astoulakis/onboard/internal/pkg/store/xpgx"
)

var billingColumns = []string{
	"id", "company_name", "company_title", "company_description",
	"company_email", "company_vat", "company_phone", "company_address",
	"company_zip_code", "company_iban", "company_iban_name",
	"transfer_supplier_id", "customer_id", "tour_supplier_id",
	"rnc_supplier_id", "boat_supplier_id", "res_supplier_id", "created_at",
}

// InsertBillingAccount converges a wizard run: one terminal record whose
// branch foreign keys are only set for the supplier(s) this run onboarded,
// plus a guarded terminal status transition for each of them, in one batch.
func (s *store) InsertBillingAccount(ctx context.Context, account *domain.BillingAccount, refs []FinalizeRef) (int64, error) {
	var id int64
	batch := &xpgx.Batch{}

	insert := builder().Insert(TableBillingAccounts).
		Columns(billingColumns[1 : len(billingColumns)-1]...).
		Values(
			account.CompanyName, account.CompanyTitle, account.CompanyDescription,
			account.CompanyEmail, account.CompanyVAT, account.CompanyPhone,
			account.CompanyAddress, account.CompanyZipCode, account.CompanyIBAN,
			account.CompanyIBANName,
			account.TransferSupplierID, account.CustomerID, account.TourSupplierID,
			account.RncSupplierID, account.BoatSupplierID, account.ResSupplierID,
		).
		Suffix("RETURNING id")
	batch.AddReturningID(insert, &id)

	for _, ref := range refs {
		batch.AddGuard(
			statusTransition(ref.Table, ref.ID, ref.FromStatus, domain.StatusFinalized),
			1, constants.ErrStepOutOfOrder)
	}

	if err := s.pool.RunBatch(ctx, batch); err != nil {
		logger.Errorf(ctx, "finalize batch: %s", err.Error())
		return 0, err
	}

	return id, nil
}

func (s *store) GetBillingAccount(ctx context.Context, id int64) (*domain.BillingAccount, error) {
	query := builder().Select(billingColumns...).
		From(TableBillingAccounts).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Get[domain.BillingAccount](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
