package response_models

// FinanceSummary folds the three ledgers into the totals the admin
// finance page shows. In-kind donations carry no amount; they are
// counted, not summed.
type FinanceSummary struct {
	DonationTotal   float64 `json:"donation_total"`
	CollectionTotal float64 `json:"collection_total"`
	ExpenseTotal    float64 `json:"expense_total"`
	Balance         float64 `json:"balance"`
	InKindDonations int     `json:"in_kind_donations"`
}
