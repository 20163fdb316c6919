package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/assessflow/internal/cache"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/model"
	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/lshigami/assessflow/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminAssessmentService interface {
	CreateAssessment(ctx context.Context, req dto.AssessmentCreateDTO) (*dto.AssessmentDTO, error)
}

type adminAssessmentService struct {
	assessmentRepo repository.AssessmentRepository
	cache          cache.QuestionCache
}

func NewAdminAssessmentService(assessmentRepo repository.AssessmentRepository, questionCache cache.QuestionCache) AdminAssessmentService {
	return &adminAssessmentService{assessmentRepo: assessmentRepo, cache: questionCache}
}

func (s *adminAssessmentService) CreateAssessment(ctx context.Context, req dto.AssessmentCreateDTO) (*dto.AssessmentDTO, error) {
	assessment := model.Assessment{
		Title:           req.Title,
		Description:     req.Description,
		PassPercentage:  req.PassPercentage,
		TimeLimit:       req.TimeLimit,
		AttemptsAllowed: req.AttemptsAllowed,
		DueDate:         req.DueDate,
		Status:          req.Status,
	}
	if assessment.Status == "" {
		assessment.Status = string(quiz.StatusActive)
	}

	for i, qDto := range req.Questions {
		if qDto.CorrectOption < 0 || qDto.CorrectOption >= len(qDto.Options) {
			return nil, fmt.Errorf("%w: question %d has %d options, correct option %d", ErrInvalidCorrectOption, i+1, len(qDto.Options), qDto.CorrectOption)
		}
		var question model.Question
		if err := copier.Copy(&question, &qDto); err != nil {
			return nil, fmt.Errorf("map question %d: %w", i+1, err)
		}
		if question.Kind == "" {
			question.Kind = quiz.KindMultipleChoice
		}
		question.Position = i + 1
		assessment.TotalMarks += question.Marks
		assessment.Questions = append(assessment.Questions, question)
	}

	if err := s.assessmentRepo.CreateWithQuestions(&assessment); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create assessment")
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	s.cache.Invalidate(ctx, assessment.ID)

	var out dto.AssessmentDTO
	if err := copier.Copy(&out, &assessment); err != nil {
		return nil, fmt.Errorf("map assessment: %w", err)
	}
	log.Info().Uint("assessmentID", assessment.ID).Int("questions", len(assessment.Questions)).Int("totalMarks", assessment.TotalMarks).Msg("Assessment created")
	return &out, nil
}
