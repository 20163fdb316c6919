package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Identity is the caller on whose behalf the flow talks to the gradebook.
type Identity struct {
	StudentID string
	Token     string
}

// Submission is the body posted to the gradebook for a finished attempt.
type Submission struct {
	StudentID    string
	AssessmentID uint
	MaxMarks     int
	Weight       float64
	Marks        int
}

// Collaborator is the gradebook as seen by the flow.
type Collaborator interface {
	ListAssessments(ctx context.Context, identity Identity) ([]Assessment, error)
	FetchQuestions(ctx context.Context, identity Identity, assessmentID uint) ([]Question, error)
	SubmitAttempt(ctx context.Context, identity Identity, submission Submission) error
}

type Options struct {
	// Weight is sent unchanged with every submission.
	Weight float64
	// TickInterval drives the countdown. Zero leaves ticking to the caller.
	TickInterval time.Duration
	Now          func() time.Time
	NewID        func() string
}

type state interface {
	screen() Screen
}

type launcherState struct{}

type instructionsState struct {
	entry Entry
}

type activeState struct {
	session *Session
}

type resultsState struct {
	assessment Assessment
	questions  []Question
	attempt    Attempt
	breakdown  bool
}

func (*launcherState) screen() Screen     { return ScreenLauncher }
func (*instructionsState) screen() Screen { return ScreenInstructions }
func (*activeState) screen() Screen       { return ScreenActive }
func (*resultsState) screen() Screen      { return ScreenResults }

// Flow moves one student through launcher, instructions, the timed quiz
// and results. All methods are safe for concurrent use; collaborator calls
// run without holding the lock.
type Flow struct {
	mu       sync.Mutex
	identity Identity
	collab   Collaborator
	opts     Options

	state       state
	assessments []Assessment
	sinceLoad   []Attempt // recorded since assessments was loaded
	launcher    Launcher
	attempts    []Attempt
	alert       string

	loading    bool
	inFlight   bool
	generation uint64
	stopTimer  context.CancelFunc
}

func NewFlow(identity Identity, collab Collaborator, opts Options) *Flow {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Flow{
		identity: identity,
		collab:   collab,
		opts:     opts,
		state:    &launcherState{},
		launcher: BuildLauncher(nil, nil),
	}
}

func (f *Flow) Screen() Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.screen()
}

func (f *Flow) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identity.Token = token
}

// Attempts returns the attempts recorded during this flow's lifetime.
func (f *Flow) Attempts() []Attempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Attempt(nil), f.attempts...)
}

func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{Screen: f.state.screen(), Alert: f.alert}
	switch st := f.state.(type) {
	case *launcherState:
		v.Launcher = launcherView(f.launcher)
	case *instructionsState:
		v.Instructions = instructionsView(st.entry)
	case *activeState:
		v.Active = activeView(st.session)
	case *resultsState:
		entry, ok := f.launcher.Entry(st.assessment.ID)
		v.Results = resultsView(st, ok && entry.CanStart)
	}
	return v
}

// Refresh reloads the launcher from the gradebook.
func (f *Flow) Refresh(ctx context.Context) error {
	f.mu.Lock()
	if _, ok := f.state.(*launcherState); !ok {
		f.mu.Unlock()
		return ErrWrongScreen
	}
	identity, gen := f.identity, f.generation
	f.mu.Unlock()

	assessments, err := f.collab.ListAssessments(ctx, identity)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return ErrFlowTornDown
	}
	if err != nil {
		f.alert = "Could not load assessments: " + err.Error()
		log.Warn().Err(err).Str("studentID", identity.StudentID).Msg("Failed to load assessments")
		return fmt.Errorf("list assessments: %w", err)
	}
	f.assessments = assessments
	f.sinceLoad = nil
	f.launcher = BuildLauncher(assessments, nil)
	f.alert = ""
	return nil
}

func (f *Flow) Open(assessmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.state.(*launcherState); !ok {
		return ErrWrongScreen
	}
	entry, ok := f.launcher.Entry(assessmentID)
	if !ok {
		return ErrAssessmentNotFound
	}
	if err := entry.gate(); err != nil {
		return err
	}
	f.state = &instructionsState{entry: entry}
	f.alert = ""
	return nil
}

// Cancel leaves the instructions screen without starting.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.state.(*instructionsState); !ok {
		return ErrWrongScreen
	}
	f.state = &launcherState{}
	f.alert = ""
	return nil
}

// Start fetches the questions and enters the timed quiz. Any failure sends
// the flow back to the launcher with an alert.
func (f *Flow) Start(ctx context.Context) error {
	f.mu.Lock()
	ins, ok := f.state.(*instructionsState)
	if !ok {
		f.mu.Unlock()
		return ErrWrongScreen
	}
	if f.loading {
		f.mu.Unlock()
		return ErrQuestionsLoading
	}
	f.loading = true
	entry, identity, gen := ins.entry, f.identity, f.generation
	f.mu.Unlock()

	questions, err := f.collab.FetchQuestions(ctx, identity, entry.Assessment.ID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return ErrFlowTornDown
	}
	f.loading = false
	if f.state != state(ins) {
		return ErrWrongScreen
	}

	var session *Session
	if err == nil {
		session, err = NewSession(entry.Assessment, questions, entry.AttemptsTaken+1, f.opts.Now())
	}
	if err != nil {
		f.state = &launcherState{}
		f.alert = "Could not load questions: " + err.Error()
		log.Warn().Err(err).Uint("assessmentID", entry.Assessment.ID).Str("studentID", identity.StudentID).Msg("Failed to start assessment")
		return fmt.Errorf("fetch questions: %w", err)
	}

	f.state = &activeState{session: session}
	f.alert = ""
	f.armTimer(session)
	log.Info().Uint("assessmentID", entry.Assessment.ID).Str("studentID", identity.StudentID).Int("questions", session.Len()).Int("seconds", session.Remaining()).Msg("Assessment started")
	return nil
}

func (f *Flow) Select(option int) error {
	return f.withSession(func(s *Session) error { return s.Select(option) })
}

func (f *Flow) Next() error {
	return f.withSession(func(s *Session) error { return s.Next() })
}

func (f *Flow) Previous() error {
	return f.withSession(func(s *Session) error { return s.Previous() })
}

func (f *Flow) withSession(fn func(*Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	active, ok := f.state.(*activeState)
	if !ok {
		return ErrWrongScreen
	}
	if f.inFlight {
		return ErrSubmissionInFlight
	}
	if err := fn(active.session); err != nil {
		return err
	}
	f.alert = ""
	return nil
}

// Tick advances the countdown by one second. When it reaches zero the
// attempt is submitted as timed out and the submission outcome returned.
// Ticks from a cancelled ctx are ignored.
func (f *Flow) Tick(ctx context.Context) error {
	f.mu.Lock()
	active, ok := f.state.(*activeState)
	if !ok || f.inFlight || ctx.Err() != nil {
		f.mu.Unlock()
		return nil
	}
	if !active.session.Tick() {
		f.mu.Unlock()
		return nil
	}
	log.Info().Uint("assessmentID", active.session.assessment.ID).Str("studentID", f.identity.StudentID).Msg("Time is up, submitting attempt")
	p, err := f.prepareSubmit(true)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	_, err = f.completeSubmit(context.WithoutCancel(ctx), p)
	return err
}

// Submit is the manual submit action. Once time is up it resends the
// timed-out attempt. The gradebook call outlives ctx so a dropped client
// cannot roll back a submission the gradebook already recorded.
func (f *Flow) Submit(ctx context.Context) (Attempt, error) {
	f.mu.Lock()
	p, err := f.prepareSubmit(false)
	f.mu.Unlock()
	if err != nil {
		return Attempt{}, err
	}
	return f.completeSubmit(context.WithoutCancel(ctx), p)
}

type pendingSubmit struct {
	active     *activeState
	attempt    Attempt
	submission Submission
	identity   Identity
	gen        uint64
}

// prepareSubmit requires f.mu.
func (f *Flow) prepareSubmit(timedOut bool) (*pendingSubmit, error) {
	active, ok := f.state.(*activeState)
	if !ok {
		return nil, ErrWrongScreen
	}
	if f.inFlight {
		return nil, ErrSubmissionInFlight
	}
	timedOut = timedOut || active.session.TimeUp()
	if !timedOut && !active.session.CanSubmit() {
		return nil, ErrSubmitDisabled
	}

	f.inFlight = true
	f.disarmTimer()
	active.session.beginSubmit()

	attempt := newAttempt(f.opts.NewID(), active.session, f.identity.StudentID, timedOut, f.opts.Now())
	return &pendingSubmit{
		active:  active,
		attempt: attempt,
		submission: Submission{
			StudentID:    f.identity.StudentID,
			AssessmentID: attempt.AssessmentID,
			MaxMarks:     attempt.TotalMarks,
			Weight:       f.opts.Weight,
			Marks:        attempt.Score,
		},
		identity: f.identity,
		gen:      f.generation,
	}, nil
}

func (f *Flow) completeSubmit(ctx context.Context, p *pendingSubmit) (Attempt, error) {
	err := f.collab.SubmitAttempt(ctx, p.identity, p.submission)

	f.mu.Lock()
	defer f.mu.Unlock()
	if p.gen != f.generation {
		log.Info().Str("attemptID", p.attempt.ID).Msg("Ignoring submission response for a torn down flow")
		return Attempt{}, ErrFlowTornDown
	}
	f.inFlight = false

	session := p.active.session
	if err != nil {
		session.rollback()
		f.alert = "Submission failed: " + err.Error()
		f.armTimer(session)
		log.Warn().Err(err).Uint("assessmentID", p.attempt.AssessmentID).Str("studentID", p.identity.StudentID).Msg("Attempt submission failed")
		return Attempt{}, fmt.Errorf("submit attempt: %w", err)
	}

	session.finish()
	f.attempts = append(f.attempts, p.attempt)
	f.sinceLoad = append(f.sinceLoad, p.attempt)
	f.launcher = BuildLauncher(f.assessments, f.sinceLoad)
	f.state = &resultsState{
		assessment: session.assessment,
		questions:  session.questions,
		attempt:    p.attempt,
	}
	f.alert = ""
	log.Info().
		Str("attemptID", p.attempt.ID).
		Uint("assessmentID", p.attempt.AssessmentID).
		Str("studentID", p.identity.StudentID).
		Int("score", p.attempt.Score).
		Int("total", p.attempt.TotalMarks).
		Bool("passed", p.attempt.Passed).
		Bool("timedOut", p.attempt.TimedOut).
		Msg("Attempt submitted")
	return p.attempt, nil
}

func (f *Flow) ToggleBreakdown() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.state.(*resultsState)
	if !ok {
		return ErrWrongScreen
	}
	r.breakdown = !r.breakdown
	return nil
}

// Retry re-enters the instructions screen for the same assessment.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.state.(*resultsState)
	if !ok {
		return ErrWrongScreen
	}
	entry, ok := f.launcher.Entry(r.assessment.ID)
	if !ok {
		return ErrAssessmentNotFound
	}
	if err := entry.gate(); err != nil {
		return err
	}
	f.state = &instructionsState{entry: entry}
	f.alert = ""
	return nil
}

func (f *Flow) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.state.(*resultsState); !ok {
		return ErrWrongScreen
	}
	f.state = &launcherState{}
	f.alert = ""
	return nil
}

// Teardown stops the timer and orphans any outstanding request. The flow
// is left on the launcher and stays usable.
func (f *Flow) Teardown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.disarmTimer()
	f.generation++
	f.loading = false
	f.inFlight = false
	f.state = &launcherState{}
}

// armTimer requires f.mu.
func (f *Flow) armTimer(s *Session) {
	f.disarmTimer()
	if f.opts.TickInterval <= 0 || s.countdown.Expired() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.stopTimer = cancel
	go f.runTimer(ctx)
}

// disarmTimer requires f.mu.
func (f *Flow) disarmTimer() {
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
}

func (f *Flow) runTimer(ctx context.Context) {
	ticker := time.NewTicker(f.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Tick(ctx); err != nil {
				log.Warn().Err(err).Str("studentID", f.identity.StudentID).Msg("Timed submission failed")
			}
		}
	}
}
