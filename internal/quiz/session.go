package quiz

import "time"

type Phase string

const (
	PhaseAnswering  Phase = "answering"
	PhaseSubmitting Phase = "submitting"
	PhaseDone       Phase = "done"
)

// Session is one run through an assessment's questions. It is owned by a
// single Flow and only mutated through its methods.
type Session struct {
	assessment    Assessment
	questions     []Question
	answers       []*int
	index         int
	phase         Phase
	countdown     *Countdown
	attemptNumber int
	startedAt     time.Time
}

func NewSession(assessment Assessment, questions []Question, attemptNumber int, startedAt time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.normalized()
	}
	return &Session{
		assessment:    assessment,
		questions:     qs,
		answers:       make([]*int, len(qs)),
		phase:         PhaseAnswering,
		countdown:     NewCountdown(assessment.TimeLimitSeconds()),
		attemptNumber: attemptNumber,
		startedAt:     startedAt,
	}, nil
}

func (s *Session) Index() int        { return s.index }
func (s *Session) Len() int          { return len(s.questions) }
func (s *Session) Phase() Phase      { return s.phase }
func (s *Session) Remaining() int    { return s.countdown.Remaining() }
func (s *Session) Current() Question { return s.questions[s.index] }

// Selected returns the recorded answer at the current index, or nil.
func (s *Session) Selected() *int {
	return copyAnswer(s.answers[s.index])
}

// Answers returns a copy with one entry per question.
func (s *Session) Answers() []*int {
	out := make([]*int, len(s.answers))
	for i, a := range s.answers {
		out[i] = copyAnswer(a)
	}
	return out
}

func (s *Session) Answered() int {
	n := 0
	for _, a := range s.answers {
		if a != nil {
			n++
		}
	}
	return n
}

// TimeUp reports whether the countdown has run out. Answers are frozen
// from then on.
func (s *Session) TimeUp() bool {
	return s.countdown.Expired()
}

func (s *Session) Select(option int) error {
	if s.phase != PhaseAnswering {
		return ErrWrongScreen
	}
	if s.TimeUp() {
		return ErrTimeUp
	}
	if option < 0 || option >= len(s.questions[s.index].Options) {
		return ErrInvalidOption
	}
	s.answers[s.index] = &option
	return nil
}

func (s *Session) CanNext() bool {
	return s.phase == PhaseAnswering && !s.TimeUp() && s.index < len(s.questions)-1 && s.answers[s.index] != nil
}

func (s *Session) CanPrevious() bool {
	return s.phase == PhaseAnswering && !s.TimeUp() && s.index > 0
}

// CanSubmit is the manual submit guard. Once time is up the attempt can
// always be sent as it stood at expiry.
func (s *Session) CanSubmit() bool {
	if s.phase != PhaseAnswering {
		return false
	}
	last := len(s.questions) - 1
	return s.TimeUp() || (s.index == last && s.answers[last] != nil)
}

func (s *Session) Next() error {
	if s.TimeUp() {
		return ErrTimeUp
	}
	if !s.CanNext() {
		return ErrNextDisabled
	}
	s.index++
	return nil
}

func (s *Session) Previous() error {
	if s.TimeUp() {
		return ErrTimeUp
	}
	if !s.CanPrevious() {
		return ErrPreviousDisabled
	}
	s.index--
	return nil
}

// Tick advances the countdown while answering and reports expiry once.
func (s *Session) Tick() bool {
	if s.phase != PhaseAnswering {
		return false
	}
	return s.countdown.Tick()
}

func (s *Session) beginSubmit() {
	s.phase = PhaseSubmitting
}

// rollback returns to the question that was showing when submit began.
func (s *Session) rollback() {
	s.phase = PhaseAnswering
}

func (s *Session) finish() {
	s.phase = PhaseDone
}

func copyAnswer(a *int) *int {
	if a == nil {
		return nil
	}
	v := *a
	return &v
}
