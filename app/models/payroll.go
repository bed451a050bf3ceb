package models

// CoachPayroll is one coach's line in a monthly payroll report:
// base salary plus delivered PT sessions times the coach's PT rate.
type CoachPayroll struct {
	CoachID      string  `json:"coach_id"`
	CoachName    string  `json:"coach_name"`
	BaseSalary   float64 `json:"base_salary"`
	SessionCount int     `json:"session_count"`
	PTEarnings   float64 `json:"pt_earnings"`
	Total        float64 `json:"total"`
}

// PayrollReport is the full payroll breakdown for one calendar month.
type PayrollReport struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	PerCoach     []*CoachPayroll `json:"per_coach"`
	TotalPayroll float64         `json:"total_payroll"`
}

// MonthlySummary is the finance overview for one calendar month, recomputed
// from source rows on every request. NetProfit may be negative.
type MonthlySummary struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Revenue    float64 `json:"revenue"`
	Refunds    float64 `json:"refunds"`
	Expenses   float64 `json:"expenses"`
	Payroll    float64 `json:"payroll"`
	NetProfit  float64 `json:"net_profit"`
	Profitable bool    `json:"profitable"`
}
