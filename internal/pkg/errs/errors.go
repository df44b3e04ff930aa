package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every structured error
// type in this package unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrJobNotFound        = errors.New("job not found")
	ErrAlreadyTaken       = errors.New("job already taken")
	ErrActionNotPermitted = errors.New("action not permitted")
)

// sanitize strips newlines from interpolated values so that a single error
// message always renders on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the violated bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// SourceUnavailableError indicates a provider failed to serve a call.
// Refresh degrades gracefully on this error: other providers' results
// still apply.
type SourceUnavailableError struct {
	Provider string
	Cause    error
}

// NewSourceUnavailableError creates a SourceUnavailableError for the named provider.
func NewSourceUnavailableError(provider string) *SourceUnavailableError {
	return &SourceUnavailableError{Provider: provider}
}

// NewSourceUnavailableErrorWithCause creates a SourceUnavailableError wrapping an underlying cause.
func NewSourceUnavailableErrorWithCause(provider string, cause error) *SourceUnavailableError {
	return &SourceUnavailableError{Provider: provider, Cause: cause}
}

func (e *SourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrSourceUnavailable, e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrSourceUnavailable, e.Provider)
}

func (e *SourceUnavailableError) Unwrap() error {
	return ErrSourceUnavailable
}

// JobNotFoundError indicates a job id unknown to its provider at mutation time.
type JobNotFoundError struct {
	JobID string
	Cause error
}

// NewJobNotFoundError creates a JobNotFoundError for the given job id.
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// NewJobNotFoundErrorWithCause creates a JobNotFoundError wrapping an underlying cause.
func NewJobNotFoundErrorWithCause(jobID string, cause error) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID, Cause: cause}
}

func (e *JobNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrJobNotFound, sanitize(e.JobID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrJobNotFound, sanitize(e.JobID))
}

func (e *JobNotFoundError) Unwrap() error {
	return ErrJobNotFound
}

// AlreadyTakenError indicates the driver lost a race to claim a job:
// another actor accepted it between listing and the accept call.
type AlreadyTakenError struct {
	JobID string
}

// NewAlreadyTakenError creates an AlreadyTakenError for the given job id.
func NewAlreadyTakenError(jobID string) *AlreadyTakenError {
	return &AlreadyTakenError{JobID: jobID}
}

func (e *AlreadyTakenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyTaken, sanitize(e.JobID))
}

func (e *AlreadyTakenError) Unwrap() error {
	return ErrAlreadyTaken
}

// ActionNotPermittedError indicates the safety gate rejected an action.
// It is raised before any provider call is made.
type ActionNotPermittedError struct {
	Action string
	Reason string
}

// NewActionNotPermittedError creates an ActionNotPermittedError naming the
// rejected action and the gate's reason.
func NewActionNotPermittedError(action, reason string) *ActionNotPermittedError {
	return &ActionNotPermittedError{Action: action, Reason: reason}
}

func (e *ActionNotPermittedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrActionNotPermitted, e.Action, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrActionNotPermitted, e.Action)
}

func (e *ActionNotPermittedError) Unwrap() error {
	return ErrActionNotPermitted
}
