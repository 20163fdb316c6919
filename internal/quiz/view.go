package quiz

import "time"

type Screen string

const (
	ScreenLauncher     Screen = "launcher"
	ScreenInstructions Screen = "instructions"
	ScreenActive       Screen = "active"
	ScreenResults      Screen = "results"
)

// View is a snapshot of a Flow for rendering. Exactly one of the screen
// payloads is set.
type View struct {
	Screen       Screen            `json:"screen"`
	Alert        string            `json:"alert,omitempty"`
	Launcher     *LauncherView     `json:"launcher,omitempty"`
	Instructions *InstructionsView `json:"instructions,omitempty"`
	Active       *ActiveView       `json:"active,omitempty"`
	Results      *ResultsView      `json:"results,omitempty"`
}

type LauncherView struct {
	Entries []EntryView `json:"entries"`
	Empty   bool        `json:"empty"`
	Message string      `json:"message,omitempty"`
}

type EntryView struct {
	AssessmentID    uint       `json:"assessmentId"`
	Title           string     `json:"title"`
	Status          Status     `json:"status"`
	TimeLimit       int        `json:"timeLimit"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	AttemptsAllowed int        `json:"attemptsAllowed"`
	AttemptsTaken   int        `json:"attemptsTaken"`
	AttemptsLeft    int        `json:"attemptsLeft"`
	CanStart        bool       `json:"canStart"`
	Action          Action     `json:"action"`
}

type InstructionsView struct {
	AssessmentID    uint       `json:"assessmentId"`
	Title           string     `json:"title"`
	PassPercentage  int        `json:"passPercentage"`
	TotalMarks      int        `json:"totalMarks"`
	TimeLimit       int        `json:"timeLimit"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	AttemptNumber   int        `json:"attemptNumber"`
	AttemptsAllowed int        `json:"attemptsAllowed"`
	AttemptsLeft    int        `json:"attemptsLeft"`
}

// QuestionView never carries the correct option.
type QuestionView struct {
	ID      uint     `json:"id"`
	Prompt  string   `json:"prompt"`
	Kind    string   `json:"kind"`
	Options []string `json:"options"`
	Marks   int      `json:"marks"`
}

type ActiveView struct {
	AssessmentID     uint         `json:"assessmentId"`
	Title            string       `json:"title"`
	Index            int          `json:"index"`
	Total            int          `json:"total"`
	Question         QuestionView `json:"question"`
	Selected         *int         `json:"selected"`
	Answered         int          `json:"answered"`
	RemainingSeconds int          `json:"remainingSeconds"`
	CanNext          bool         `json:"canNext"`
	CanPrevious      bool         `json:"canPrevious"`
	CanSubmit        bool         `json:"canSubmit"`
	Submitting       bool         `json:"submitting"`
}

type ResultsView struct {
	AttemptID       string          `json:"attemptId"`
	AssessmentID    uint            `json:"assessmentId"`
	Title           string          `json:"title"`
	Score           int             `json:"score"`
	TotalMarks      int             `json:"totalMarks"`
	ScorePercentage int             `json:"scorePercentage"`
	PassPercentage  int             `json:"passPercentage"`
	Passed          bool            `json:"passed"`
	TimedOut        bool            `json:"timedOut"`
	AttemptNumber   int             `json:"attemptNumber"`
	SubmittedAt     time.Time       `json:"submittedAt"`
	CanRetry        bool            `json:"canRetry"`
	ShowBreakdown   bool            `json:"showBreakdown"`
	Breakdown       []BreakdownItem `json:"breakdown,omitempty"`
}

type BreakdownItem struct {
	QuestionID    uint     `json:"questionId"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	Selected      *int     `json:"selected"`
	CorrectOption int      `json:"correctOption"`
	Correct       bool     `json:"correct"`
	Marks         int      `json:"marks"`
	Awarded       int      `json:"awarded"`
}

func launcherView(l Launcher) *LauncherView {
	v := &LauncherView{Empty: l.Empty, Message: l.Message, Entries: []EntryView{}}
	for _, e := range l.Entries {
		v.Entries = append(v.Entries, EntryView{
			AssessmentID:    e.Assessment.ID,
			Title:           e.Assessment.DisplayTitle(),
			Status:          e.Assessment.Status,
			TimeLimit:       e.Assessment.TimeLimit,
			DueDate:         e.Assessment.DueDate,
			AttemptsAllowed: e.Assessment.AttemptsAllowed,
			AttemptsTaken:   e.AttemptsTaken,
			AttemptsLeft:    e.AttemptsLeft,
			CanStart:        e.CanStart,
			Action:          e.Action,
		})
	}
	return v
}

func instructionsView(e Entry) *InstructionsView {
	a := e.Assessment
	return &InstructionsView{
		AssessmentID:    a.ID,
		Title:           a.DisplayTitle(),
		PassPercentage:  a.PassPercentage,
		TotalMarks:      a.TotalMarks,
		TimeLimit:       a.TimeLimit,
		DueDate:         a.DueDate,
		AttemptNumber:   e.AttemptsTaken + 1,
		AttemptsAllowed: a.AttemptsAllowed,
		AttemptsLeft:    e.AttemptsLeft,
	}
}

func activeView(s *Session) *ActiveView {
	q := s.Current()
	return &ActiveView{
		AssessmentID: s.assessment.ID,
		Title:        s.assessment.DisplayTitle(),
		Index:        s.index,
		Total:        s.Len(),
		Question: QuestionView{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Kind:    q.Kind,
			Options: append([]string(nil), q.Options...),
			Marks:   q.Marks,
		},
		Selected:         s.Selected(),
		Answered:         s.Answered(),
		RemainingSeconds: s.Remaining(),
		CanNext:          s.CanNext(),
		CanPrevious:      s.CanPrevious(),
		CanSubmit:        s.CanSubmit(),
		Submitting:       s.phase == PhaseSubmitting,
	}
}

func resultsView(r *resultsState, canRetry bool) *ResultsView {
	att := r.attempt
	v := &ResultsView{
		AttemptID:       att.ID,
		AssessmentID:    att.AssessmentID,
		Title:           r.assessment.DisplayTitle(),
		Score:           att.Score,
		TotalMarks:      att.TotalMarks,
		ScorePercentage: att.ScorePercentage,
		PassPercentage:  r.assessment.PassPercentage,
		Passed:          att.Passed,
		TimedOut:        att.TimedOut,
		AttemptNumber:   att.AttemptNumber,
		SubmittedAt:     att.SubmittedAt,
		CanRetry:        canRetry,
		ShowBreakdown:   r.breakdown,
	}
	if !r.breakdown {
		return v
	}
	for i, q := range r.questions {
		selected := copyAnswer(att.Answers[i])
		v.Breakdown = append(v.Breakdown, BreakdownItem{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Options:       append([]string(nil), q.Options...),
			Selected:      selected,
			CorrectOption: q.CorrectOption,
			Correct:       q.IsCorrect(selected),
			Marks:         q.Marks,
			Awarded:       q.Awarded(selected),
		})
	}
	return v
}
