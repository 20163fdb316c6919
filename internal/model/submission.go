package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one recorded attempt. AttemptNumber counts from 1 per
// student and assessment.
type Submission struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	AssessmentID  uint           `json:"assessment_id" gorm:"not null;index:idx_submission_student"`
	StudentID     string         `json:"student_id" gorm:"not null;index:idx_submission_student"`
	AttemptNumber int            `json:"attempt_number" gorm:"not null"`
	Marks         int            `json:"marks" gorm:"not null"`
	MaxMarks      int            `json:"max_marks" gorm:"not null"`
	Weight        float64        `json:"weight" gorm:"not null;default:1"`
	SubmittedAt   time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
