package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this phone number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a request that is incompatible with the current
// state of a record, such as a transition out of a terminal call status.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("conflict: %s", e.Message)
}

// CollaboratorUnavailableError wraps a failure of an external dependency
// (telephony, text generation, speech, mail).
type CollaboratorUnavailableError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Collaborator, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Collaborator)
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrLeadNotFound     = &NotFoundError{Entity: "lead"}
	ErrCallNotFound     = &NotFoundError{Entity: "call"}
	ErrPlaybookNotFound = &NotFoundError{Entity: "playbook"}
	ErrPlaybookMissing  = &NotFoundError{Entity: "playbook for lead industry"}
	ErrNoTemplate       = &NotFoundError{Entity: "follow-up template"}
	ErrSessionNotFound  = &NotFoundError{Entity: "call for session"}
)

// Already Exists Errors
var (
	ErrLeadExists     = &AlreadyExistsError{Entity: "lead", Context: "with this phone number"}
	ErrPlaybookExists = &AlreadyExistsError{Entity: "playbook", Context: "for this industry"}
)

// Business Logic Errors
var (
	ErrInvalidStatus         = &ValidationError{Field: "status", Message: "unknown status"}
	ErrInvalidOutcome        = &ValidationError{Field: "outcome", Message: "must be one of appointment, interested, callback, not_interested"}
	ErrInvalidChannel        = &ValidationError{Field: "channel", Message: "must be email or sms"}
	ErrInvalidSentiment      = &ValidationError{Field: "sentiment_score", Message: "must be between -1 and 1"}
	ErrMissingEmail          = &ValidationError{Field: "email", Message: "lead has no email address"}
	ErrNoTranscript          = &ValidationError{Field: "transcript", Message: "no transcript available"}
	ErrActiveCallExists      = &ConflictError{Entity: "call", Message: "lead already has an active call"}
	ErrCallNotCompleted      = &ConflictError{Entity: "call", Message: "call is not completed"}
	ErrConcurrentUpdate      = &ConflictError{Entity: "call", Message: "call was modified concurrently, retry"}
	ErrProviderNotConfigured = errors.New("provider is not configured")
	ErrCallTerminal          = &ConflictError{Entity: "call", Message: "call already reached a terminal status"}
	ErrDialInProgress        = &ConflictError{Entity: "call", Message: "another worker is dialing this call"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsCollaboratorUnavailable checks if an error is a CollaboratorUnavailableError
func IsCollaboratorUnavailable(err error) bool {
	var unavailableErr *CollaboratorUnavailableError
	return errors.As(err, &unavailableErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewCollaboratorUnavailableError wraps err as a failure of the named collaborator
func NewCollaboratorUnavailableError(collaborator string, err error) error {
	return &CollaboratorUnavailableError{Collaborator: collaborator, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
