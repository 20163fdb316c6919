package repository

import (
	"github.com/lshigami/assessflow/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	// CreateWithQuestions stores the assessment and its questions in one
	// transaction.
	CreateWithQuestions(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindAll() ([]model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) CreateWithQuestions(assessment *model.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questions := assessment.Questions
		if err := tx.Omit("Questions").Create(assessment).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].AssessmentID = assessment.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		assessment.Questions = questions
		return nil
	})
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAll() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Order("due_date ASC NULLS LAST").Order("id ASC").Find(&assessments).Error
	return assessments, err
}
