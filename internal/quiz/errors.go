package quiz

import "errors"

var (
	ErrWrongScreen        = errors.New("action is not available on the current screen")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentInactive = errors.New("assessment is not active")
	ErrAttemptsExhausted  = errors.New("no attempts remaining")
	ErrNoQuestions        = errors.New("assessment has no questions")
	ErrQuestionsLoading   = errors.New("questions are already loading")
	ErrInvalidOption      = errors.New("option index out of range")
	ErrNextDisabled       = errors.New("next is disabled")
	ErrPreviousDisabled   = errors.New("previous is disabled")
	ErrSubmitDisabled     = errors.New("submit is disabled until the last question is answered")
	ErrTimeUp             = errors.New("time is up, answers can no longer change")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrFlowTornDown       = errors.New("flow was torn down before the response arrived")
	ErrCollaborator       = errors.New("gradebook request failed")
)
