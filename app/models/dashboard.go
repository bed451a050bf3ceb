package models

// DashboardStats holds the aggregate numbers shown on the admin dashboard.
type DashboardStats struct {
	ActiveStudents    int     `json:"active_students"`
	TotalCoaches      int     `json:"total_coaches"`
	ExpiringThisWeek  int     `json:"expiring_this_week"`
	MonthRevenue      float64 `json:"month_revenue"`
	MonthNetProfit    float64 `json:"month_net_profit"`
	RecycleBinEntries int     `json:"recycle_bin_entries"`
	SessionsThisMonth int     `json:"sessions_this_month"`
}
