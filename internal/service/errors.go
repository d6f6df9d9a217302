package service

import "errors"

// Sentinel errors the controller layer maps to HTTP statuses. Validation
// errors are typed separately as *form.ValidationError so field detail
// survives to the response.
var (
	ErrSurveyNotFound      = errors.New("survey not found")
	ErrSurveyUnavailable   = errors.New("survey is not available")
	ErrDuplicateSubmission = errors.New("survey has already been completed")
	ErrResultNotFound      = errors.New("result not found")
	ErrTooManyQuestions    = errors.New("survey exceeds the question ceiling")
)
