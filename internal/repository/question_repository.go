package repository

import (
	"github.com/lshigami/assessflow/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByAssessmentID(assessmentID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByAssessmentID(assessmentID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("assessment_id = ?", assessmentID).Order("position ASC").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
