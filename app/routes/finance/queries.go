package finance

import (
	"database/sql"
	"log"

	"epic-gym-system/app/models"
)

// InitFinanceDB ensures the finance tables and indexes exist.
func InitFinanceDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID REFERENCES students(id) ON DELETE SET NULL,
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			payment_date DATE NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			notes TEXT,
			created_by UUID NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS refunds (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			refund_date DATE NOT NULL,
			notes TEXT,
			created_by UUID NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			expense_date DATE NOT NULL,
			category VARCHAR(100),
			notes TEXT,
			created_by UUID NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS finance_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			table_name VARCHAR(50) NOT NULL,
			row_id UUID NOT NULL,
			row_data JSONB NOT NULL,
			action VARCHAR(20) NOT NULL DEFAULT 'DELETE',
			created_by UUID NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating finance tables: %v", err)
			return err
		}
	}

	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_payments_payment_date ON payments(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_refunds_refund_date ON refunds(refund_date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_expense_date ON expenses(expense_date)`,
		`CREATE INDEX IF NOT EXISTS idx_finance_history_table_name ON finance_history(table_name)`,
		`CREATE INDEX IF NOT EXISTS idx_finance_history_row_id ON finance_history(row_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running finance migration: %v", err)
		}
	}

	return nil
}

// CreatePayment inserts a payment row. Payments are immutable once created;
// removal goes through the recycle bin.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (student_id, amount, payment_date, payment_method, notes, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	return db.QueryRow(query, p.StudentID, p.Amount, p.PaymentDate, p.PaymentMethod, p.Notes, p.CreatedBy).
		Scan(&p.ID, &p.CreatedAt)
}

func CreateRefund(db *sql.DB, r *models.Refund) error {
	query := `INSERT INTO refunds (amount, refund_date, notes, created_by)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	return db.QueryRow(query, r.Amount, r.RefundDate, r.Notes, r.CreatedBy).
		Scan(&r.ID, &r.CreatedAt)
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (amount, expense_date, category, notes, created_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	return db.QueryRow(query, e.Amount, e.ExpenseDate, e.Category, e.Notes, e.CreatedBy).
		Scan(&e.ID, &e.CreatedAt)
}
