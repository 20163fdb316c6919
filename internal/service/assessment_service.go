package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/assessflow/internal/cache"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AssessmentService interface {
	// ListForStudent returns every assessment. AttemptsTaken is filled in
	// when studentID is not empty.
	ListForStudent(ctx context.Context, studentID string) ([]dto.AssessmentDTO, error)
	Questions(ctx context.Context, assessmentID uint) ([]dto.QuestionDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	cache          cache.QuestionCache
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	questionCache cache.QuestionCache,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		cache:          questionCache,
	}
}

func (s *assessmentService) ListForStudent(ctx context.Context, studentID string) ([]dto.AssessmentDTO, error) {
	assessments, err := s.assessmentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	var taken map[uint]int
	if studentID != "" {
		taken, err = s.submissionRepo.CountByStudent(studentID)
		if err != nil {
			return nil, fmt.Errorf("count submissions for %s: %w", studentID, err)
		}
	}

	out := make([]dto.AssessmentDTO, 0, len(assessments))
	for _, a := range assessments {
		var d dto.AssessmentDTO
		if err := copier.Copy(&d, &a); err != nil {
			log.Error().Err(err).Uint("assessmentID", a.ID).Msg("Failed to map assessment")
			continue
		}
		d.AttemptsTaken = taken[a.ID]
		out = append(out, d)
	}
	return out, nil
}

func (s *assessmentService) Questions(ctx context.Context, assessmentID uint) ([]dto.QuestionDTO, error) {
	if cached, ok := s.cache.Get(ctx, assessmentID); ok {
		log.Debug().Uint("assessmentID", assessmentID).Msg("Question cache hit")
		return cached, nil
	}

	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("find assessment %d: %w", assessmentID, err)
	}

	questions, err := s.questionRepo.FindByAssessmentID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load questions for assessment %d: %w", assessmentID, err)
	}
	out := make([]dto.QuestionDTO, 0, len(questions))
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, fmt.Errorf("map questions: %w", err)
	}

	s.cache.Set(ctx, assessmentID, out)
	return out, nil
}
