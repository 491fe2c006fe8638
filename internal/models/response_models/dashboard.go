package response_models

type DashboardReport struct {
	Members              int64          `json:"members"`
	Events               int64          `json:"events"`
	Photos               int64          `json:"photos"`
	Achievements         int64          `json:"achievements"`
	Notifications        int64          `json:"notifications"`
	PendingAdminRequests int64          `json:"pending_admin_requests"`
	Finance              FinanceSummary `json:"finance"`
}
