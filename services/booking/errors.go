package booking

import "fmt"

// SessionError is a booking wizard failure the client can act on.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError() error {
	return &SessionError{Code: "sessionNotFound", Message: "booking session not found or expired"}
}

func NewStageError(msg string) error {
	return &SessionError{Code: "stageViolation", Message: msg}
}

func NewDateBlockedError(date string) error {
	return &SessionError{Code: "dateBlocked", Message: fmt.Sprintf("date %s is not available for this variation", date)}
}

func NewCapacityError(msg string) error {
	return &SessionError{Code: "capacityExceeded", Message: msg}
}
