package quiz

import "time"

// Attempt is built once at submission and never mutated afterwards.
type Attempt struct {
	ID              string
	AssessmentID    uint
	StudentID       string
	Answers         []*int
	Score           int
	TotalMarks      int
	ScorePercentage int
	Passed          bool
	TimedOut        bool
	AttemptNumber   int
	SubmittedAt     time.Time
}

func newAttempt(id string, s *Session, studentID string, timedOut bool, at time.Time) Attempt {
	answers := s.Answers()
	score := Score(s.questions, answers)
	total := TotalMarks(s.questions)
	return Attempt{
		ID:              id,
		AssessmentID:    s.assessment.ID,
		StudentID:       studentID,
		Answers:         answers,
		Score:           score,
		TotalMarks:      total,
		ScorePercentage: Percentage(score, total),
		Passed:          Passed(score, total, s.assessment.PassPercentage),
		TimedOut:        timedOut,
		AttemptNumber:   s.attemptNumber,
		SubmittedAt:     at,
	}
}
