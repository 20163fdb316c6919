package quiz

const (
	KindMultipleChoice = "multiple_choice"

	UntitledQuestion = "Untitled Question"
	NoOptionProvided = "No option provided"
)

type Question struct {
	ID            uint
	Prompt        string
	Kind          string
	Options       []string
	CorrectOption int
	Marks         int

	placeholder bool
}

// normalized substitutes placeholders for missing display data.
func (q Question) normalized() Question {
	out := q
	if out.Prompt == "" {
		out.Prompt = UntitledQuestion
	}
	if out.Kind == "" {
		out.Kind = KindMultipleChoice
	}
	if len(out.Options) == 0 {
		out.Options = []string{NoOptionProvided}
		out.placeholder = true
		return out
	}
	out.Options = make([]string, len(q.Options))
	for i, opt := range q.Options {
		if opt == "" {
			opt = NoOptionProvided
		}
		out.Options[i] = opt
	}
	return out
}

// IsCorrect reports whether answer scores for this question. Only
// multiple-choice questions with real options score.
func (q Question) IsCorrect(answer *int) bool {
	if answer == nil || q.Kind != KindMultipleChoice || q.placeholder {
		return false
	}
	return *answer == q.CorrectOption
}

// Awarded returns the marks earned by answer.
func (q Question) Awarded(answer *int) int {
	if q.IsCorrect(answer) {
		return q.Marks
	}
	return 0
}
