package model

import (
	"time"

	"gorm.io/gorm"
)

type Assessment struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;uniqueIndex"`
	Description     string         `json:"description,omitempty"`
	PassPercentage  int            `json:"pass_percentage" gorm:"not null;default:0"`
	TotalMarks      int            `json:"total_marks" gorm:"not null;default:0"`
	TimeLimit       int            `json:"time_limit" gorm:"not null"` // minutes
	AttemptsAllowed int            `json:"attempts_allowed" gorm:"not null;default:1"`
	DueDate         *time.Time     `json:"due_date,omitempty"`
	Status          string         `json:"status" gorm:"not null;default:'active'"` // "active", "inactive"
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
