package dto

// AnswerRequest selects an option on the current question.
type AnswerRequest struct {
	Option *int `json:"option" binding:"required"`
}
