package service

import (
	"context"
	"sync"

	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/rs/zerolog/log"
)

// FlowService holds one quiz.Flow per student.
type FlowService interface {
	// Flow returns the student's flow, creating it and loading the
	// launcher on first use. The token is refreshed on every call.
	Flow(ctx context.Context, identity quiz.Identity) *quiz.Flow
	// End tears the student's flow down and forgets it.
	End(studentID string)
	Shutdown()
}

type flowService struct {
	mu     sync.Mutex
	flows  map[string]*quiz.Flow
	collab quiz.Collaborator
	opts   quiz.Options
}

func NewFlowService(cfg *config.Config, collab quiz.Collaborator) FlowService {
	return NewFlowServiceWithOptions(collab, quiz.Options{
		Weight:       cfg.Flow.SubmissionWeight,
		TickInterval: cfg.Flow.TickInterval,
	})
}

func NewFlowServiceWithOptions(collab quiz.Collaborator, opts quiz.Options) FlowService {
	return &flowService{
		flows:  make(map[string]*quiz.Flow),
		collab: collab,
		opts:   opts,
	}
}

func (s *flowService) Flow(ctx context.Context, identity quiz.Identity) *quiz.Flow {
	s.mu.Lock()
	f, ok := s.flows[identity.StudentID]
	if !ok {
		f = quiz.NewFlow(identity, s.collab, s.opts)
		s.flows[identity.StudentID] = f
	}
	s.mu.Unlock()

	if ok {
		f.SetToken(identity.Token)
		return f
	}

	log.Info().Str("studentID", identity.StudentID).Msg("Created assessment flow")
	// A failed load leaves an alert on the launcher view.
	if err := f.Refresh(ctx); err != nil {
		log.Warn().Err(err).Str("studentID", identity.StudentID).Msg("Initial launcher load failed")
	}
	return f
}

func (s *flowService) End(studentID string) {
	s.mu.Lock()
	f, ok := s.flows[studentID]
	delete(s.flows, studentID)
	s.mu.Unlock()

	if ok {
		f.Teardown()
		log.Info().Str("studentID", studentID).Msg("Ended assessment flow")
	}
}

func (s *flowService) Shutdown() {
	s.mu.Lock()
	flows := s.flows
	s.flows = make(map[string]*quiz.Flow)
	s.mu.Unlock()

	for _, f := range flows {
		f.Teardown()
	}
	log.Info().Int("flows", len(flows)).Msg("Flow service shut down")
}
