package domain

import "errors"

var (
	// ErrValidation covers malformed or missing input caught by the
	// service layer (on top of schema validation at the transport layer).
	ErrValidation = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	// ErrSelfDeletion is returned when an admin attempts to delete the
	// account it is currently authenticated as.
	ErrSelfDeletion = errors.New("cannot delete own account")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")

	ErrForbidden = errors.New("access forbidden")

	ErrNewsNotFound     = errors.New("news item not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrClubNotFound     = errors.New("club not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
)
