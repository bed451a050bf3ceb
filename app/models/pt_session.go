package models

import "time"

// PTSession is an immutable record of delivered personal-training work.
// StudentID is nullable: walk-in clients are recorded by StudentName only.
type PTSession struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CoachID       string    `json:"coach_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date          time.Time `json:"date" gorm:"not null;index;type:date" validate:"required"`
	SessionsCount int       `json:"sessions_count" gorm:"not null;default:1" validate:"gte=1"`
	StudentID     *string   `json:"student_id,omitempty" gorm:"index;type:uuid"`
	StudentName   string    `json:"student_name,omitempty" gorm:"type:varchar(255)"`
	CreatedBy     string    `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Coach         *Coach    `json:"coach,omitempty" gorm:"foreignKey:CoachID;references:ID"`
	Student       *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
