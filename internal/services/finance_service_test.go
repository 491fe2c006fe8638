package services_test

import (
	"context"
	"errors"
	"testing"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

func amount(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

type fakeFinanceRepo struct {
	donations   []db_models.Donation
	collections []db_models.CollectionEntry
	expenses    []db_models.Expense
	lastPartial map[string]interface{}
}

func (f *fakeFinanceRepo) ListDonations(ctx context.Context) ([]db_models.Donation, error) {
	return f.donations, nil
}

func (f *fakeFinanceRepo) AddDonation(ctx context.Context, d *db_models.Donation) (string, error) {
	f.donations = append(f.donations, *d)
	return d.ID.Hex(), nil
}

func (f *fakeFinanceRepo) UpdateDonation(ctx context.Context, id string, partial map[string]interface{}) error {
	f.lastPartial = partial
	return nil
}

func (f *fakeFinanceRepo) DeleteDonation(ctx context.Context, id string) error { return nil }

func (f *fakeFinanceRepo) ListCollections(ctx context.Context) ([]db_models.CollectionEntry, error) {
	return f.collections, nil
}

func (f *fakeFinanceRepo) AddCollection(ctx context.Context, c *db_models.CollectionEntry) (string, error) {
	f.collections = append(f.collections, *c)
	return c.ID.Hex(), nil
}

func (f *fakeFinanceRepo) UpdateCollection(ctx context.Context, id string, partial map[string]interface{}) error {
	return nil
}

func (f *fakeFinanceRepo) DeleteCollection(ctx context.Context, id string) error { return nil }

func (f *fakeFinanceRepo) ListExpenses(ctx context.Context) ([]db_models.Expense, error) {
	return f.expenses, nil
}

func (f *fakeFinanceRepo) AddExpense(ctx context.Context, e *db_models.Expense) (string, error) {
	f.expenses = append(f.expenses, *e)
	return e.ID.Hex(), nil
}

func (f *fakeFinanceRepo) UpdateExpense(ctx context.Context, id string, partial map[string]interface{}) error {
	return nil
}

func (f *fakeFinanceRepo) DeleteExpense(ctx context.Context, id string) error { return nil }

func TestDonationTotal(t *testing.T) {
	tests := []struct {
		name      string
		donations []db_models.Donation
		want      float64
	}{
		{
			name:      "empty list",
			donations: nil,
			want:      0,
		},
		{
			name: "monetary donations sum",
			donations: []db_models.Donation{
				{Title: "a", Amount: amount(100)},
				{Title: "b", Amount: amount(250.5)},
			},
			want: 350.5,
		},
		{
			name: "in-kind donation contributes zero",
			donations: []db_models.Donation{
				{Title: "chairs", Item: "10 folding chairs"},
			},
			want: 0,
		},
		{
			name: "mixed monetary and in-kind",
			donations: []db_models.Donation{
				{Title: "a", Amount: amount(100)},
				{Title: "chairs", Item: "10 folding chairs"},
				{Title: "b", Amount: amount(50)},
			},
			want: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.DonationTotal(tt.donations); got != tt.want {
				t.Errorf("DonationTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDonationTotal_OrderIndependent(t *testing.T) {
	a := []db_models.Donation{
		{Title: "a", Amount: amount(10)},
		{Title: "b", Amount: amount(20)},
		{Title: "c", Item: "trophy"},
	}
	b := []db_models.Donation{a[2], a[0], a[1]}

	if services.DonationTotal(a) != services.DonationTotal(b) {
		t.Errorf("DonationTotal changed with input order: %v vs %v",
			services.DonationTotal(a), services.DonationTotal(b))
	}
}

func TestInKindCount(t *testing.T) {
	donations := []db_models.Donation{
		{Title: "a", Amount: amount(100)},
		{Title: "chairs", Item: "10 folding chairs"},
		{Title: "banner", Item: "printed banner"},
	}
	if got := services.InKindCount(donations); got != 2 {
		t.Errorf("InKindCount() = %d, want 2", got)
	}
	if got := services.InKindCount(nil); got != 0 {
		t.Errorf("InKindCount(nil) = %d, want 0", got)
	}
}

func TestLedgerTotals(t *testing.T) {
	collections := []db_models.CollectionEntry{
		{Title: "dues jan", Amount: 500},
		{Title: "dues feb", Amount: 450},
	}
	if got := services.CollectionTotal(collections); got != 950 {
		t.Errorf("CollectionTotal() = %v, want 950", got)
	}

	expenses := []db_models.Expense{
		{Title: "venue", Amount: 300},
		{Title: "snacks", Amount: 75.25},
	}
	if got := services.ExpenseTotal(expenses); got != 375.25 {
		t.Errorf("ExpenseTotal() = %v, want 375.25", got)
	}

	if services.CollectionTotal(nil) != 0 || services.ExpenseTotal(nil) != 0 {
		t.Error("empty ledgers should total 0")
	}
}

func TestFinanceService_CreateDonation_Validation(t *testing.T) {
	svc := services.NewFinanceService(&fakeFinanceRepo{})

	tests := []struct {
		name    string
		req     request_models.CreateDonationRequest
		wantErr bool
	}{
		{
			name:    "monetary only",
			req:     request_models.CreateDonationRequest{Title: "gift", Amount: amount(100), Date: "2024-01-10"},
			wantErr: false,
		},
		{
			name:    "in-kind only",
			req:     request_models.CreateDonationRequest{Title: "chairs", Item: "10 chairs", Date: "2024-01-10"},
			wantErr: false,
		},
		{
			name:    "neither amount nor item",
			req:     request_models.CreateDonationRequest{Title: "empty", Date: "2024-01-10"},
			wantErr: true,
		},
		{
			name:    "both amount and item",
			req:     request_models.CreateDonationRequest{Title: "both", Amount: amount(10), Item: "chairs", Date: "2024-01-10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDonation(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateDonation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, utils.ErrValidation) {
				t.Errorf("CreateDonation() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestFinanceService_UpdateDonation_KeepsUnion(t *testing.T) {
	id := "65b0f0f0f0f0f0f0f0f0f0f0"

	t.Run("amount and item together are rejected", func(t *testing.T) {
		repo := &fakeFinanceRepo{}
		svc := services.NewFinanceService(repo)

		err := svc.UpdateDonation(context.Background(), id, request_models.UpdateDonationRequest{
			Amount: amount(50),
			Item:   strPtr("chairs"),
		})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
		if repo.lastPartial != nil {
			t.Errorf("invalid update reached the store: %v", repo.lastPartial)
		}
	})

	t.Run("setting an item clears the amount", func(t *testing.T) {
		repo := &fakeFinanceRepo{}
		svc := services.NewFinanceService(repo)

		if err := svc.UpdateDonation(context.Background(), id, request_models.UpdateDonationRequest{
			Item: strPtr("10 folding chairs"),
		}); err != nil {
			t.Fatalf("UpdateDonation() error = %v", err)
		}
		if repo.lastPartial["item"] != "10 folding chairs" {
			t.Errorf("item not written: %v", repo.lastPartial)
		}
		if v, ok := repo.lastPartial["amount"]; !ok || v != nil {
			t.Errorf("amount not cleared when switching to in-kind: %v", repo.lastPartial)
		}
	})

	t.Run("setting an amount clears the item", func(t *testing.T) {
		repo := &fakeFinanceRepo{}
		svc := services.NewFinanceService(repo)

		if err := svc.UpdateDonation(context.Background(), id, request_models.UpdateDonationRequest{
			Amount: amount(75),
		}); err != nil {
			t.Fatalf("UpdateDonation() error = %v", err)
		}
		if repo.lastPartial["amount"] != 75.0 {
			t.Errorf("amount not written: %v", repo.lastPartial)
		}
		if repo.lastPartial["item"] != "" {
			t.Errorf("item not cleared when switching to monetary: %v", repo.lastPartial)
		}
	})

	t.Run("blanking the item without an amount is rejected", func(t *testing.T) {
		repo := &fakeFinanceRepo{}
		svc := services.NewFinanceService(repo)

		err := svc.UpdateDonation(context.Background(), id, request_models.UpdateDonationRequest{
			Item: strPtr(""),
		})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("title-only update touches neither side", func(t *testing.T) {
		repo := &fakeFinanceRepo{}
		svc := services.NewFinanceService(repo)

		if err := svc.UpdateDonation(context.Background(), id, request_models.UpdateDonationRequest{
			Title: strPtr("renamed"),
		}); err != nil {
			t.Fatalf("UpdateDonation() error = %v", err)
		}
		if _, ok := repo.lastPartial["amount"]; ok {
			t.Errorf("amount touched by a title update: %v", repo.lastPartial)
		}
		if _, ok := repo.lastPartial["item"]; ok {
			t.Errorf("item touched by a title update: %v", repo.lastPartial)
		}
	})
}

func TestFinanceService_Summary(t *testing.T) {
	repo := &fakeFinanceRepo{
		donations: []db_models.Donation{
			{Title: "a", Amount: amount(100)},
			{Title: "chairs", Item: "10 chairs"},
		},
		collections: []db_models.CollectionEntry{
			{Title: "dues", Amount: 500},
		},
		expenses: []db_models.Expense{
			{Title: "venue", Amount: 250},
		},
	}
	svc := services.NewFinanceService(repo)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.DonationTotal != 100 {
		t.Errorf("DonationTotal = %v, want 100", summary.DonationTotal)
	}
	if summary.CollectionTotal != 500 {
		t.Errorf("CollectionTotal = %v, want 500", summary.CollectionTotal)
	}
	if summary.ExpenseTotal != 250 {
		t.Errorf("ExpenseTotal = %v, want 250", summary.ExpenseTotal)
	}
	if summary.Balance != 350 {
		t.Errorf("Balance = %v, want 350", summary.Balance)
	}
	if summary.InKindDonations != 1 {
		t.Errorf("InKindDonations = %d, want 1", summary.InKindDonations)
	}
}
