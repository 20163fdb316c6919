package service

import "errors"

var (
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAssessmentInactive   = errors.New("assessment is not accepting submissions")
	ErrNoAttemptsLeft       = errors.New("no attempts left for this assessment")
	ErrMarksExceedMax       = errors.New("marks exceed max marks")
	ErrInvalidCorrectOption = errors.New("correct option is out of range")
)
