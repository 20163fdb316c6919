package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/gradebook"
	"github.com/lshigami/assessflow/internal/quiz"
)

// GradebookAPI is the part of gradebook.Client the runner depends on.
type GradebookAPI interface {
	ListAssessments(ctx context.Context, token, studentID string) dto.APIResponse[[]dto.AssessmentDTO]
	FetchQuestions(ctx context.Context, token string, assessmentID uint) dto.APIResponse[[]dto.QuestionDTO]
	SubmitAttempt(ctx context.Context, token string, req dto.SubmitAttemptRequest) dto.APIResponse[dto.SubmissionDTO]
}

var _ GradebookAPI = (*gradebook.Client)(nil)

type gradebookCollaborator struct {
	api GradebookAPI
}

// NewGradebookCollaborator adapts the REST client to quiz.Collaborator.
// Unsuccessful responses become errors wrapping quiz.ErrCollaborator.
func NewGradebookCollaborator(api GradebookAPI) quiz.Collaborator {
	return &gradebookCollaborator{api: api}
}

func NewGradebookAPI(client *gradebook.Client) GradebookAPI {
	return client
}

func (g *gradebookCollaborator) ListAssessments(ctx context.Context, identity quiz.Identity) ([]quiz.Assessment, error) {
	resp := g.api.ListAssessments(ctx, identity.Token, identity.StudentID)
	if !resp.Success {
		return nil, collaboratorError(resp.Message)
	}
	out := make([]quiz.Assessment, 0, len(resp.Data))
	for _, a := range resp.Data {
		var qa quiz.Assessment
		if err := copier.Copy(&qa, &a); err != nil {
			return nil, fmt.Errorf("map assessment %d: %w", a.ID, err)
		}
		qa.Status = quiz.Status(a.Status)
		out = append(out, qa)
	}
	return out, nil
}

func (g *gradebookCollaborator) FetchQuestions(ctx context.Context, identity quiz.Identity, assessmentID uint) ([]quiz.Question, error) {
	resp := g.api.FetchQuestions(ctx, identity.Token, assessmentID)
	if !resp.Success {
		return nil, collaboratorError(resp.Message)
	}
	var out []quiz.Question
	if err := copier.Copy(&out, &resp.Data); err != nil {
		return nil, fmt.Errorf("map questions: %w", err)
	}
	return out, nil
}

func (g *gradebookCollaborator) SubmitAttempt(ctx context.Context, identity quiz.Identity, submission quiz.Submission) error {
	var req dto.SubmitAttemptRequest
	if err := copier.Copy(&req, &submission); err != nil {
		return fmt.Errorf("map submission: %w", err)
	}
	resp := g.api.SubmitAttempt(ctx, identity.Token, req)
	if !resp.Success {
		return collaboratorError(resp.Message)
	}
	return nil
}

func collaboratorError(msg string) error {
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Errorf("%w: %s", quiz.ErrCollaborator, msg)
}
