package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/models/response_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type FinanceServiceInterface interface {
	ListDonations(ctx context.Context) ([]db_models.Donation, error)
	CreateDonation(ctx context.Context, req request_models.CreateDonationRequest) (*db_models.Donation, error)
	UpdateDonation(ctx context.Context, id string, req request_models.UpdateDonationRequest) error
	DeleteDonation(ctx context.Context, id string) error

	ListCollections(ctx context.Context) ([]db_models.CollectionEntry, error)
	CreateCollection(ctx context.Context, req request_models.CreateLedgerEntryRequest) (*db_models.CollectionEntry, error)
	UpdateCollection(ctx context.Context, id string, req request_models.UpdateLedgerEntryRequest) error
	DeleteCollection(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]db_models.Expense, error)
	CreateExpense(ctx context.Context, req request_models.CreateLedgerEntryRequest) (*db_models.Expense, error)
	UpdateExpense(ctx context.Context, id string, req request_models.UpdateLedgerEntryRequest) error
	DeleteExpense(ctx context.Context, id string) error

	Summary(ctx context.Context) (*response_models.FinanceSummary, error)
}

type FinanceService struct {
	financeRepo repositories.FinanceRepository
}

func NewFinanceService(financeRepo repositories.FinanceRepository) FinanceServiceInterface {
	return &FinanceService{financeRepo: financeRepo}
}

// DonationTotal sums the monetary donations. Records carrying only an
// in-kind item have no amount and contribute 0; order never matters.
func DonationTotal(donations []db_models.Donation) float64 {
	var total float64
	for _, d := range donations {
		if d.Amount != nil {
			total += *d.Amount
		}
	}
	return total
}

// InKindCount counts donations that came as items rather than money.
func InKindCount(donations []db_models.Donation) int {
	count := 0
	for _, d := range donations {
		if d.Amount == nil && d.Item != "" {
			count++
		}
	}
	return count
}

func CollectionTotal(entries []db_models.CollectionEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

func ExpenseTotal(expenses []db_models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func (s *FinanceService) ListDonations(ctx context.Context) ([]db_models.Donation, error) {
	return s.financeRepo.ListDonations(ctx)
}

func (s *FinanceService) CreateDonation(ctx context.Context, req request_models.CreateDonationRequest) (*db_models.Donation, error) {
	// exactly one of amount/item is meaningful
	if (req.Amount == nil && req.Item == "") || (req.Amount != nil && req.Item != "") {
		return nil, utils.ErrValidation
	}

	donation := &db_models.Donation{
		Title:  req.Title,
		Amount: req.Amount,
		Item:   req.Item,
		Date:   req.Date,
	}
	if _, err := s.financeRepo.AddDonation(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *FinanceService) UpdateDonation(ctx context.Context, id string, req request_models.UpdateDonationRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}

	// the amount/item union holds on update too: a partial may switch a
	// donation from monetary to in-kind or back, never carry both
	_, hasAmount := partial["amount"]
	item, hasItem := partial["item"]
	if hasAmount && hasItem {
		return utils.ErrValidation
	}
	if hasItem && item == "" {
		return utils.ErrValidation
	}
	if hasAmount {
		partial["item"] = ""
	} else if hasItem {
		partial["amount"] = nil
	}

	return s.financeRepo.UpdateDonation(ctx, id, partial)
}

func (s *FinanceService) DeleteDonation(ctx context.Context, id string) error {
	return s.financeRepo.DeleteDonation(ctx, id)
}

func (s *FinanceService) ListCollections(ctx context.Context) ([]db_models.CollectionEntry, error) {
	return s.financeRepo.ListCollections(ctx)
}

func (s *FinanceService) CreateCollection(ctx context.Context, req request_models.CreateLedgerEntryRequest) (*db_models.CollectionEntry, error) {
	entry := &db_models.CollectionEntry{
		Title:  req.Title,
		Amount: req.Amount,
		Date:   req.Date,
	}
	if _, err := s.financeRepo.AddCollection(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FinanceService) UpdateCollection(ctx context.Context, id string, req request_models.UpdateLedgerEntryRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.financeRepo.UpdateCollection(ctx, id, partial)
}

func (s *FinanceService) DeleteCollection(ctx context.Context, id string) error {
	return s.financeRepo.DeleteCollection(ctx, id)
}

func (s *FinanceService) ListExpenses(ctx context.Context) ([]db_models.Expense, error) {
	return s.financeRepo.ListExpenses(ctx)
}

func (s *FinanceService) CreateExpense(ctx context.Context, req request_models.CreateLedgerEntryRequest) (*db_models.Expense, error) {
	expense := &db_models.Expense{
		Title:  req.Title,
		Amount: req.Amount,
		Date:   req.Date,
	}
	if _, err := s.financeRepo.AddExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *FinanceService) UpdateExpense(ctx context.Context, id string, req request_models.UpdateLedgerEntryRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.financeRepo.UpdateExpense(ctx, id, partial)
}

func (s *FinanceService) DeleteExpense(ctx context.Context, id string) error {
	return s.financeRepo.DeleteExpense(ctx, id)
}

func (s *FinanceService) Summary(ctx context.Context) (*response_models.FinanceSummary, error) {
	donations, err := s.financeRepo.ListDonations(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.financeRepo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.financeRepo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	donationTotal := DonationTotal(donations)
	collectionTotal := CollectionTotal(collections)
	expenseTotal := ExpenseTotal(expenses)

	return &response_models.FinanceSummary{
		DonationTotal:   donationTotal,
		CollectionTotal: collectionTotal,
		ExpenseTotal:    expenseTotal,
		Balance:         donationTotal + collectionTotal - expenseTotal,
		InKindDonations: InKindCount(donations),
	}, nil
}
