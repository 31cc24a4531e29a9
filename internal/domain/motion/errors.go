package motion

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known failure categories of the motion domain.
type ErrorCode string

const (
	ErrCodeInvalidConfig   ErrorCode = "INVALID_CONFIG"
	ErrCodeInvalidSchedule ErrorCode = "INVALID_SCHEDULE"
)

// Sentinels for errors.Is checks. A DomainError matches a sentinel when the
// codes agree, whatever its message.
var (
	ErrInvalidConfig   = &DomainError{Code: ErrCodeInvalidConfig}
	ErrInvalidSchedule = &DomainError{Code: ErrCodeInvalidSchedule}
)

// DomainError represents a typed validation failure enriched with contextual
// data such as the offending field or step name.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches other DomainError values by code, and by message when the target
// carries one.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if e == nil || !errors.As(target, &domainErr) || domainErr == nil {
		return false
	}
	if e.Code != domainErr.Code {
		return false
	}
	return domainErr.Message == "" || e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// NewConfigError reports a malformed or out-of-range effect configuration.
func NewConfigError(message string, context map[string]interface{}) *DomainError {
	return &DomainError{Code: ErrCodeInvalidConfig, Message: message, Context: context}
}

// NewScheduleError reports a malformed sequence or stagger request.
func NewScheduleError(message string, context map[string]interface{}) *DomainError {
	return &DomainError{Code: ErrCodeInvalidSchedule, Message: message, Context: context}
}
