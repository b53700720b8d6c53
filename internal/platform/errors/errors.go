package apperrors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrNetwork           = errors.New("network failure")
	ErrNoToken           = errors.New("no user token")
	ErrSessionExpired    = errors.New("session expired")
	ErrSpeechUnavailable = errors.New("speech engine unavailable")
)
