package models

import "time"

// Student represents an enrolled gym member.
type Student struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FullName   string         `json:"full_name" gorm:"not null" validate:"required"`
	Phone      string         `json:"phone,omitempty" gorm:"type:varchar(20)"`
	PlanMonths int            `json:"plan_months" gorm:"not null;default:1" validate:"gte=1"`
	StartDate  time.Time      `json:"start_date" gorm:"not null;type:date" validate:"required"`
	ExpiresAt  time.Time      `json:"expires_at" gorm:"not null;index;type:date"`
	Status     string         `json:"status" gorm:"not null;default:'active';type:varchar(20)"`
	GroupID    *string        `json:"group_id,omitempty" gorm:"index;type:uuid"`
	Notes      string         `json:"notes,omitempty" gorm:"type:text"`
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
	Group      *TrainingGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}

// ScheduleSlot is one recurring weekly training window.
type ScheduleSlot struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// TrainingGroup collects students who train on an identical weekly schedule.
// Groups are deduplicated by ScheduleKey, a canonical encoding of the slots.
type TrainingGroup struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string          `json:"name" gorm:"not null" validate:"required"`
	ScheduleKey string          `json:"schedule_key" gorm:"uniqueIndex;not null"`
	Slots       []*ScheduleSlot `json:"slots,omitempty" gorm:"type:jsonb"`
	MemberCount int             `json:"member_count" gorm:"-"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
	Students    []*Student      `json:"students,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}
