package request_models

// CreateDonationRequest accepts either a monetary amount or an in-kind
// item description. The service rejects requests carrying neither or both.
type CreateDonationRequest struct {
	Title  string   `json:"title" binding:"required"`
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Item   string   `json:"item"`
	Date   string   `json:"date" binding:"required,datetime=2006-01-02"`
}

type UpdateDonationRequest struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Item   *string  `json:"item"`
	Date   *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateDonationRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.Title != nil {
		partial["title"] = *r.Title
	}
	if r.Amount != nil {
		partial["amount"] = *r.Amount
	}
	if r.Item != nil {
		partial["item"] = *r.Item
	}
	if r.Date != nil {
		partial["date"] = *r.Date
	}
	return partial
}

// CreateLedgerEntryRequest covers collections and expenses, which share
// a shape: amount is always required and positive.
type CreateLedgerEntryRequest struct {
	Title  string  `json:"title" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type UpdateLedgerEntryRequest struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Date   *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateLedgerEntryRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.Title != nil {
		partial["title"] = *r.Title
	}
	if r.Amount != nil {
		partial["amount"] = *r.Amount
	}
	if r.Date != nil {
		partial["date"] = *r.Date
	}
	return partial
}
