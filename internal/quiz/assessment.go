package quiz

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

const UntitledAssessment = "Untitled Assessment"

// Assessment is read-only to the flow. AttemptsTaken is the gradebook's
// count for the current student.
type Assessment struct {
	ID              uint `validate:"required"`
	Title           string
	PassPercentage  int `validate:"gte=0,lte=100"`
	TotalMarks      int `validate:"gte=0"`
	TimeLimit       int `validate:"gt=0"`
	AttemptsAllowed int `validate:"gt=0"`
	AttemptsTaken   int `validate:"gte=0"`
	DueDate         *time.Time
	Status          Status `validate:"oneof=active inactive"`
}

func (a Assessment) Active() bool {
	return a.Status == StatusActive
}

func (a Assessment) DisplayTitle() string {
	if a.Title == "" {
		return UntitledAssessment
	}
	return a.Title
}

// TimeLimitSeconds is the countdown start for one attempt.
func (a Assessment) TimeLimitSeconds() int {
	return a.TimeLimit * 60
}
