package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
)

// FinanceRepository covers the three money-ledger collections the finance
// pages use: donations, collections and expenses. They share id handling
// and default ordering (date, newest first).
type FinanceRepository interface {
	ListDonations(ctx context.Context) ([]db_models.Donation, error)
	AddDonation(ctx context.Context, d *db_models.Donation) (string, error)
	UpdateDonation(ctx context.Context, id string, partial map[string]interface{}) error
	DeleteDonation(ctx context.Context, id string) error

	ListCollections(ctx context.Context) ([]db_models.CollectionEntry, error)
	AddCollection(ctx context.Context, c *db_models.CollectionEntry) (string, error)
	UpdateCollection(ctx context.Context, id string, partial map[string]interface{}) error
	DeleteCollection(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]db_models.Expense, error)
	AddExpense(ctx context.Context, e *db_models.Expense) (string, error)
	UpdateExpense(ctx context.Context, id string, partial map[string]interface{}) error
	DeleteExpense(ctx context.Context, id string) error
}

type financeRepository struct {
	store DocumentStore
}

func NewFinanceRepository(store DocumentStore) FinanceRepository {
	return &financeRepository{store: store}
}

func (r *financeRepository) ListDonations(ctx context.Context) ([]db_models.Donation, error) {
	donations := []db_models.Donation{}
	if err := r.store.List(ctx, ColDonations, "date", SortDesc, 0, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *financeRepository) AddDonation(ctx context.Context, d *db_models.Donation) (string, error) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	return r.store.Insert(ctx, ColDonations, d)
}

func (r *financeRepository) UpdateDonation(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColDonations, id, bson.M(partial))
}

func (r *financeRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColDonations, id)
}

func (r *financeRepository) ListCollections(ctx context.Context) ([]db_models.CollectionEntry, error) {
	collections := []db_models.CollectionEntry{}
	if err := r.store.List(ctx, ColCollections, "date", SortDesc, 0, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *financeRepository) AddCollection(ctx context.Context, c *db_models.CollectionEntry) (string, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return r.store.Insert(ctx, ColCollections, c)
}

func (r *financeRepository) UpdateCollection(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColCollections, id, bson.M(partial))
}

func (r *financeRepository) DeleteCollection(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColCollections, id)
}

func (r *financeRepository) ListExpenses(ctx context.Context) ([]db_models.Expense, error) {
	expenses := []db_models.Expense{}
	if err := r.store.List(ctx, ColExpenses, "date", SortDesc, 0, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *financeRepository) AddExpense(ctx context.Context, e *db_models.Expense) (string, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return r.store.Insert(ctx, ColExpenses, e)
}

func (r *financeRepository) UpdateExpense(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColExpenses, id, bson.M(partial))
}

func (r *financeRepository) DeleteExpense(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColExpenses, id)
}
