package database

import (
	"database/sql"
	"epic-gym-system/app/models"
	"time"
)

// FilterByMonth keeps the records whose date falls in the given calendar
// month. Both month and year must match: the 1st and the last day of the
// month are in, adjacent months are out. This is calendar-month semantics,
// not a rolling 30-day window.
func FilterByMonth[T any](records []T, year, month int, dateOf func(T) time.Time) []T {
	out := []T{}
	for _, r := range records {
		d := dateOf(r)
		if d.Year() == year && int(d.Month()) == month {
			out = append(out, r)
		}
	}
	return out
}

// SumAmounts reduces records to a total. Empty input yields zero.
func SumAmounts[T any](records []T, amountOf func(T) float64) float64 {
	total := 0.0
	for _, r := range records {
		total += amountOf(r)
	}
	return total
}

// ComputeNetProfit derives the month's bottom line. The result may be
// negative; the sign decides the profitable/deficit classification and is
// never clamped.
func ComputeNetProfit(revenue, refunds, expenses, payroll float64) float64 {
	return revenue - (refunds + expenses + payroll)
}

// GetAllPayments returns every live payment row, newest first.
func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, COALESCE(p.amount, 0), p.payment_date, p.payment_method,
			  COALESCE(p.notes, ''), p.created_by, p.created_at, s.full_name
			  FROM payments p
			  LEFT JOIN students s ON p.student_id = s.id
			  ORDER BY p.payment_date DESC, p.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		var studentName sql.NullString
		err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.PaymentDate, &p.PaymentMethod,
			&p.Notes, &p.CreatedBy, &p.CreatedAt, &studentName)
		if err != nil {
			return nil, err
		}
		if p.StudentID != nil && studentName.Valid {
			p.Student = &models.Student{ID: *p.StudentID, FullName: studentName.String}
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetAllRefunds returns every live refund row, newest first.
func GetAllRefunds(db *sql.DB) ([]*models.Refund, error) {
	query := `SELECT id, COALESCE(amount, 0), refund_date, COALESCE(notes, ''), created_by, created_at
			  FROM refunds
			  ORDER BY refund_date DESC, created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refunds := []*models.Refund{}
	for rows.Next() {
		r := &models.Refund{}
		if err := rows.Scan(&r.ID, &r.Amount, &r.RefundDate, &r.Notes, &r.CreatedBy, &r.CreatedAt); err != nil {
			return nil, err
		}
		refunds = append(refunds, r)
	}
	return refunds, rows.Err()
}

// GetAllExpenses returns every live expense row, newest first.
func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT id, COALESCE(amount, 0), expense_date, COALESCE(category, ''), COALESCE(notes, ''), created_by, created_at
			  FROM expenses
			  ORDER BY expense_date DESC, created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		if err := rows.Scan(&e.ID, &e.Amount, &e.ExpenseDate, &e.Category, &e.Notes, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// GetMonthlySummary recomputes the month's finance overview from freshly
// fetched source rows. Nothing is persisted or cached between calls; the
// four collections are re-read every time so the summary can never go stale.
func GetMonthlySummary(db *sql.DB, year, month int) (*models.MonthlySummary, error) {
	payments, err := GetAllPayments(db)
	if err != nil {
		return nil, err
	}
	refunds, err := GetAllRefunds(db)
	if err != nil {
		return nil, err
	}
	expenses, err := GetAllExpenses(db)
	if err != nil {
		return nil, err
	}
	payroll, err := GetMonthlyPayroll(db, year, month)
	if err != nil {
		return nil, err
	}

	monthPayments := FilterByMonth(payments, year, month, func(p *models.Payment) time.Time { return p.PaymentDate })
	monthRefunds := FilterByMonth(refunds, year, month, func(r *models.Refund) time.Time { return r.RefundDate })
	monthExpenses := FilterByMonth(expenses, year, month, func(e *models.Expense) time.Time { return e.ExpenseDate })

	revenue := SumAmounts(monthPayments, func(p *models.Payment) float64 { return p.Amount })
	refundTotal := SumAmounts(monthRefunds, func(r *models.Refund) float64 { return r.Amount })
	expenseTotal := SumAmounts(monthExpenses, func(e *models.Expense) float64 { return e.Amount })

	netProfit := ComputeNetProfit(revenue, refundTotal, expenseTotal, payroll.TotalPayroll)

	return &models.MonthlySummary{
		Year:       year,
		Month:      month,
		Revenue:    revenue,
		Refunds:    refundTotal,
		Expenses:   expenseTotal,
		Payroll:    payroll.TotalPayroll,
		NetProfit:  netProfit,
		Profitable: netProfit >= 0,
	}, nil
}
