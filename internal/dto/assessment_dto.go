package dto

import "time"

// AssessmentDTO is a launcher row. AttemptsTaken is filled when the list is
// requested for a specific student.
type AssessmentDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	PassPercentage  int        `json:"passPercentage"`
	TotalMarks      int        `json:"totalMarks"`
	TimeLimit       int        `json:"timeLimit"`
	AttemptsAllowed int        `json:"attemptsAllowed"`
	AttemptsTaken   int        `json:"attemptsTaken"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	Status          string     `json:"status"`
}

type QuestionDTO struct {
	ID            uint     `json:"id"`
	AssessmentID  uint     `json:"assessmentId"`
	Prompt        string   `json:"prompt"`
	Kind          string   `json:"kind"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Marks         int      `json:"marks"`
	Position      int      `json:"position"`
}

// SubmitAttemptRequest is the body of POST /attempts.
type SubmitAttemptRequest struct {
	StudentID    string  `json:"studentId" binding:"required"`
	AssessmentID uint    `json:"assessmentId" binding:"required"`
	MaxMarks     int     `json:"maxMarks" binding:"gte=0"`
	Weight       float64 `json:"weight" binding:"gte=0"`
	Marks        int     `json:"marks" binding:"gte=0,ltefield=MaxMarks"`
}

type SubmissionDTO struct {
	ID            uint      `json:"id"`
	AssessmentID  uint      `json:"assessmentId"`
	StudentID     string    `json:"studentId"`
	AttemptNumber int       `json:"attemptNumber"`
	Marks         int       `json:"marks"`
	MaxMarks      int       `json:"maxMarks"`
	Weight        float64   `json:"weight"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
