package service_test

import (
	"context"
	"testing"

	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/events"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordNumbersAttemptsAndPublishes(t *testing.T) {
	f := newGradebookFixture()
	ctx := context.Background()
	a, err := f.admin.CreateAssessment(ctx, algebraRequest())
	require.NoError(t, err)

	req := dto.SubmitAttemptRequest{StudentID: "s-1", AssessmentID: a.ID, MaxMarks: 3, Weight: 1, Marks: 2}
	first, err := f.submission.Record(ctx, req)
	require.NoError(t, err)
	second, err := f.submission.Record(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, first.AttemptNumber)
	assert.Equal(t, 2, second.AttemptNumber)
	assert.Equal(t, 2, second.Marks)
	assert.Equal(t, "s-1", second.StudentID)

	require.Len(t, f.publisher.published, 2)
	assert.Equal(t, events.AttemptRecorded{
		SubmissionID:  second.ID,
		AssessmentID:  a.ID,
		StudentID:     "s-1",
		AttemptNumber: 2,
		Marks:         2,
		MaxMarks:      3,
		Weight:        1,
		SubmittedAt:   second.SubmittedAt,
	}, f.publisher.published[1])

	_, err = f.submission.Record(ctx, req)
	assert.ErrorIs(t, err, service.ErrNoAttemptsLeft)
	assert.Len(t, f.publisher.published, 2)
}

func TestRecordRejections(t *testing.T) {
	f := newGradebookFixture()
	ctx := context.Background()
	inactive := algebraRequest()
	inactive.Title = "Closed"
	inactive.Status = "inactive"
	closed, err := f.admin.CreateAssessment(ctx, inactive)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.SubmitAttemptRequest
		want error
	}{
		{"marks above max", dto.SubmitAttemptRequest{StudentID: "s-1", AssessmentID: closed.ID, MaxMarks: 3, Marks: 4}, service.ErrMarksExceedMax},
		{"inactive", dto.SubmitAttemptRequest{StudentID: "s-1", AssessmentID: closed.ID, MaxMarks: 3, Marks: 1}, service.ErrAssessmentInactive},
		{"unknown assessment", dto.SubmitAttemptRequest{StudentID: "s-1", AssessmentID: 404, MaxMarks: 3, Marks: 1}, service.ErrAssessmentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.submission.Record(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, f.publisher.published)
}

func TestRecordSurvivesPublishFailure(t *testing.T) {
	f := newGradebookFixture()
	f.publisher.err = errDB
	ctx := context.Background()
	a, err := f.admin.CreateAssessment(ctx, algebraRequest())
	require.NoError(t, err)

	got, err := f.submission.Record(ctx, dto.SubmitAttemptRequest{StudentID: "s-1", AssessmentID: a.ID, MaxMarks: 3, Marks: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttemptNumber)
}

func TestHistory(t *testing.T) {
	f := newGradebookFixture()
	ctx := context.Background()
	a, err := f.admin.CreateAssessment(ctx, algebraRequest())
	require.NoError(t, err)
	for _, student := range []string{"s-1", "s-2"} {
		_, err := f.submission.Record(ctx, dto.SubmitAttemptRequest{StudentID: student, AssessmentID: a.ID, MaxMarks: 3, Marks: 1})
		require.NoError(t, err)
	}

	mine, err := f.submission.History(ctx, a.ID, "s-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "s-1", mine[0].StudentID)

	all, err := f.submission.History(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
