package dto

import "time"

// QuestionCreateDTO is used within AssessmentCreateDTO for admin assessment creation.
type QuestionCreateDTO struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Kind          string   `json:"kind" binding:"omitempty,oneof=multiple_choice"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectOption int      `json:"correctOption" binding:"gte=0"`
	Marks         int      `json:"marks" binding:"required,gt=0"`
}

// AssessmentCreateDTO is for admin to create a new assessment with all its questions.
type AssessmentCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	PassPercentage  int                 `json:"passPercentage" binding:"gte=0,lte=100"`
	TimeLimit       int                 `json:"timeLimit" binding:"required,gt=0"`
	AttemptsAllowed int                 `json:"attemptsAllowed" binding:"required,gt=0"`
	DueDate         *time.Time          `json:"dueDate"`
	Status          string              `json:"status" binding:"omitempty,oneof=active inactive"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
