package quiz

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const NoAssessmentsMessage = "No assessments available"

type Action string

const (
	ActionStart  Action = "start"
	ActionRetake Action = "retake"
)

var validate = validator.New()

// Entry is one launcher row.
type Entry struct {
	Assessment    Assessment
	AttemptsTaken int
	AttemptsLeft  int
	CanStart      bool
	Action        Action
}

type Launcher struct {
	Entries []Entry
	Empty   bool
	Message string
}

// BuildLauncher drops malformed assessments and computes attempt gating.
// attempts are those recorded since the assessments were loaded; they are
// added to the gradebook's count.
func BuildLauncher(assessments []Assessment, attempts []Attempt) Launcher {
	sessionCounts := make(map[uint]int)
	for _, att := range attempts {
		sessionCounts[att.AssessmentID]++
	}

	var entries []Entry
	for _, a := range assessments {
		if err := validate.Struct(a); err != nil {
			logInvalidAssessment(a, err)
			continue
		}
		entries = append(entries, newEntry(a, sessionCounts[a.ID]))
	}

	if len(entries) == 0 {
		return Launcher{Empty: true, Message: NoAssessmentsMessage}
	}
	return Launcher{Entries: entries}
}

func newEntry(a Assessment, sessionCount int) Entry {
	taken := a.AttemptsTaken + sessionCount
	left := max(a.AttemptsAllowed-taken, 0)
	action := ActionStart
	if taken > 0 {
		action = ActionRetake
	}
	return Entry{
		Assessment:    a,
		AttemptsTaken: taken,
		AttemptsLeft:  left,
		CanStart:      a.Active() && left > 0,
		Action:        action,
	}
}

func (l Launcher) Entry(assessmentID uint) (Entry, bool) {
	for _, e := range l.Entries {
		if e.Assessment.ID == assessmentID {
			return e, true
		}
	}
	return Entry{}, false
}

// gate explains why an entry cannot be started.
func (e Entry) gate() error {
	switch {
	case !e.Assessment.Active():
		return ErrAssessmentInactive
	case e.AttemptsLeft <= 0:
		return ErrAttemptsExhausted
	}
	return nil
}

func logInvalidAssessment(a Assessment, err error) {
	var fields []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
	}
	log.Warn().Uint("assessmentID", a.ID).Str("title", a.Title).Strs("invalidFields", fields).Msg("Skipping invalid assessment record")
}
