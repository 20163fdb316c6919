package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	AssessmentID  uint           `json:"assessment_id" gorm:"not null;index"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Kind          string         `json:"kind" gorm:"not null;default:'multiple_choice'"`
	Options       []string       `json:"options" gorm:"serializer:json;type:jsonb"`
	CorrectOption int            `json:"correct_option" gorm:"not null"`
	Marks         int            `json:"marks" gorm:"not null;default:1"`
	Position      int            `json:"position" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
