package dto

// MonthlyRevenue is one point of the six-month revenue series.
type MonthlyRevenue struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

// BookingTrend is one point of the weekday booking series.
type BookingTrend struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DashboardStatsResponse struct {
	TotalRevenue        int64            `json:"total_revenue"`
	MonthlyRevenue      int64            `json:"monthly_revenue"`
	ActiveBookings      int              `json:"active_bookings"`
	PendingPayments     int64            `json:"pending_payments"`
	FailedPaymentsCount int              `json:"failed_payments_count"`
	AvailableRooms      int              `json:"available_rooms"`
	TotalRooms          int              `json:"total_rooms"`
	TotalUsers          int              `json:"total_users"`
	RevenueByMonth      []MonthlyRevenue `json:"revenue_by_month"`
	BookingTrends       []BookingTrend   `json:"booking_trends"`
}
