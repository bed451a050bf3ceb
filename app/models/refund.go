package models

import "time"

// Refund is a negative adjustment to revenue, same lifecycle shape as Payment.
type Refund struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Amount     float64   `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	RefundDate time.Time `json:"refund_date" gorm:"not null;index;type:date" validate:"required"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy  string    `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
