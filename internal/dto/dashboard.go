package dto

import "time"

type DashboardStatsDTO struct {
	TotalRevenue       float64 `json:"total_revenue" example:"1250.5"`
	CreatorEarnings    float64 `json:"creator_earnings" example:"1900"`
	TotalWithdrawn     float64 `json:"total_withdrawn" example:"1250.5"`
	CompanyBalance     float64 `json:"company_balance" example:"649.5"`
	PendingWithdrawals float64 `json:"pending_withdrawals" example:"649.5"`
	ProductsSold       int     `json:"products_sold" example:"38"`
	TotalUsers         int     `json:"total_users" example:"120"`
	ActiveProducts     int     `json:"active_products" example:"17"`
}

type RevenuePointDTO struct {
	Date    string  `json:"date" example:"2 Jan"`
	Revenue float64 `json:"revenue" example:"150"`
}

type ActivityDTO struct {
	ID        int       `json:"id" example:"7"`
	Type      string    `json:"type" example:"purchase"`
	User      string    `json:"user" example:"Aina Zulkifli"`
	Username  string    `json:"username,omitempty" example:"aina.z"`
	Action    string    `json:"action" example:"Purchased Watercolor Brush Pack"`
	Time      string    `json:"time" example:"5 minutes ago"`
	Amount    string    `json:"amount,omitempty" example:"RM 25.00"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardResponseDTO struct {
	Stats          DashboardStatsDTO `json:"stats"`
	Chart          []RevenuePointDTO `json:"chart"`
	RecentActivity []ActivityDTO     `json:"recent_activity"`
}
