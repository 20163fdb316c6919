package repository

import (
	"github.com/lshigami/assessflow/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptCheck decides whether another submission may be stored, given the
// locked assessment and the student's current attempt count.
type AttemptCheck func(assessment *model.Assessment, taken int64) error

type SubmissionRepository interface {
	// Record numbers and stores sub as the student's next attempt. The
	// assessment row is locked for the duration so concurrent submissions
	// cannot exceed the allowance.
	Record(sub *model.Submission, check AttemptCheck) error
	CountByStudent(studentID string) (map[uint]int, error)
	FindByAssessmentAndStudent(assessmentID uint, studentID string) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Record(sub *model.Submission, check AttemptCheck) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assessment model.Assessment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&assessment, sub.AssessmentID).Error; err != nil {
			return err
		}
		var taken int64
		if err := tx.Model(&model.Submission{}).
			Where("assessment_id = ? AND student_id = ?", sub.AssessmentID, sub.StudentID).
			Count(&taken).Error; err != nil {
			return err
		}
		if err := check(&assessment, taken); err != nil {
			return err
		}
		sub.AttemptNumber = int(taken) + 1
		return tx.Create(sub).Error
	})
}

func (r *submissionRepository) CountByStudent(studentID string) (map[uint]int, error) {
	var rows []struct {
		AssessmentID uint
		Taken        int
	}
	err := r.db.Model(&model.Submission{}).
		Select("assessment_id, COUNT(*) AS taken").
		Where("student_id = ?", studentID).
		Group("assessment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.AssessmentID] = row.Taken
	}
	return counts, nil
}

func (r *submissionRepository) FindByAssessmentAndStudent(assessmentID uint, studentID string) ([]model.Submission, error) {
	var subs []model.Submission
	query := r.db.Where("assessment_id = ?", assessmentID)
	if studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	err := query.Order("submitted_at DESC").Find(&subs).Error
	return subs, err
}
