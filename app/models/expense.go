package models

import "time"

// Expense is a general operating expense, independent of payroll.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Amount      float64   `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	ExpenseDate time.Time `json:"expense_date" gorm:"not null;index;type:date" validate:"required"`
	Category    string    `json:"category,omitempty" gorm:"type:varchar(100)"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
