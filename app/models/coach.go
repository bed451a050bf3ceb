package models

import "time"

// Coach represents a member of the coaching staff. Salary is the fixed
// monthly base pay; PTRate is the price paid per personal-training session.
type Coach struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FullName  string     `json:"full_name" gorm:"not null" validate:"required"`
	Role      string     `json:"role" gorm:"type:varchar(50)"`
	Salary    float64    `json:"salary" gorm:"not null;default:0;type:decimal(10,2)" validate:"gte=0"`
	PTRate    float64    `json:"pt_rate" gorm:"not null;default:0;type:decimal(10,2)" validate:"gte=0"`
	Phone     string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// CoachAttendance records one coach's presence for a specific day.
type CoachAttendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CoachID   string           `json:"coach_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(20)" validate:"required"`
	Remarks   string           `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Coach     *Coach           `json:"coach,omitempty" gorm:"foreignKey:CoachID;references:ID"`
}
