package models

import "time"

// Payment represents money received from a student. StudentID is nullable:
// guest payments are recorded by name in Notes. Payments are immutable once
// created; removal goes through the finance recycle bin.
type Payment struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     *string   `json:"student_id,omitempty" gorm:"index;type:uuid"`
	Amount        float64   `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	PaymentDate   time.Time `json:"payment_date" gorm:"not null;index;type:date" validate:"required"`
	PaymentMethod string    `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required,oneof=cash bank_transfer card"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy     string    `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Student       *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
