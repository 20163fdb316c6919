package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/events"
	"github.com/lshigami/assessflow/internal/model"
	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/lshigami/assessflow/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	Record(ctx context.Context, req dto.SubmitAttemptRequest) (*dto.SubmissionDTO, error)
	History(ctx context.Context, assessmentID uint, studentID string) ([]dto.SubmissionDTO, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	publisher      events.Publisher
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, publisher events.Publisher) SubmissionService {
	return &submissionService{submissionRepo: submissionRepo, publisher: publisher}
}

func (s *submissionService) Record(ctx context.Context, req dto.SubmitAttemptRequest) (*dto.SubmissionDTO, error) {
	if req.Marks > req.MaxMarks {
		return nil, fmt.Errorf("%w: %d > %d", ErrMarksExceedMax, req.Marks, req.MaxMarks)
	}

	sub := model.Submission{
		AssessmentID: req.AssessmentID,
		StudentID:    req.StudentID,
		Marks:        req.Marks,
		MaxMarks:     req.MaxMarks,
		Weight:       req.Weight,
	}
	err := s.submissionRepo.Record(&sub, func(a *model.Assessment, taken int64) error {
		if a.Status != string(quiz.StatusActive) {
			return ErrAssessmentInactive
		}
		if taken >= int64(a.AttemptsAllowed) {
			return ErrNoAttemptsLeft
		}
		return nil
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrAssessmentNotFound
	case errors.Is(err, ErrAssessmentInactive), errors.Is(err, ErrNoAttemptsLeft):
		log.Warn().Err(err).Uint("assessmentID", req.AssessmentID).Str("studentID", req.StudentID).Msg("Submission rejected")
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("record submission: %w", err)
	}

	log.Info().Uint("submissionID", sub.ID).Uint("assessmentID", sub.AssessmentID).Str("studentID", sub.StudentID).
		Int("attemptNumber", sub.AttemptNumber).Int("marks", sub.Marks).Int("maxMarks", sub.MaxMarks).Msg("Submission recorded")

	// The submission is stored; a lost event is logged, not returned.
	if err := s.publisher.PublishAttemptRecorded(ctx, events.AttemptRecorded{
		SubmissionID:  sub.ID,
		AssessmentID:  sub.AssessmentID,
		StudentID:     sub.StudentID,
		AttemptNumber: sub.AttemptNumber,
		Marks:         sub.Marks,
		MaxMarks:      sub.MaxMarks,
		Weight:        sub.Weight,
		SubmittedAt:   sub.SubmittedAt,
	}); err != nil {
		log.Error().Err(err).Uint("submissionID", sub.ID).Msg("Failed to publish attempt event")
	}

	var out dto.SubmissionDTO
	if err := copier.Copy(&out, &sub); err != nil {
		return nil, fmt.Errorf("map submission: %w", err)
	}
	return &out, nil
}

func (s *submissionService) History(ctx context.Context, assessmentID uint, studentID string) ([]dto.SubmissionDTO, error) {
	subs, err := s.submissionRepo.FindByAssessmentAndStudent(assessmentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("load submissions for assessment %d: %w", assessmentID, err)
	}
	out := make([]dto.SubmissionDTO, 0, len(subs))
	if err := copier.Copy(&out, &subs); err != nil {
		return nil, fmt.Errorf("map submissions: %w", err)
	}
	return out, nil
}
