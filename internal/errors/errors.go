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

// StateError represents an operation attempted against a workflow whose
// current status does not allow it
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for StateError
func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a selection validation error
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

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// InsufficientVideosError is returned when the selection cannot fully
// populate every chosen template. Required is the largest max_videos among
// the selected templates; Provided is the number of videos selected.
type InsufficientVideosError struct {
	TemplateID int64
	Required   int
	Provided   int
}

func (e *InsufficientVideosError) Error() string {
	return fmt.Sprintf("template %d requires at least %d videos, only %d selected", e.TemplateID, e.Required, e.Provided)
}

// RenderError identifies which template failed during artifact rendering
type RenderError struct {
	TemplateID int64
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render landing page for template %d: %v", e.TemplateID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrVideoNotFound       = &NotFoundError{Entity: "video"}
	ErrTemplateNotFound    = &NotFoundError{Entity: "template"}
	ErrWorkflowNotFound    = &NotFoundError{Entity: "workflow"}
	ErrLandingPageNotFound = &NotFoundError{Entity: "landing page"}
)

// Workflow State Errors
var (
	ErrInvalidWorkflowState = &StateError{Message: "workflow is not in a status that allows this operation"}
	ErrWorkflowNotReady     = &StateError{Message: "workflow is not in ready status"}
)

// Selection Validation Errors
var (
	ErrEmptySelection     = &ValidationError{Message: "selection must include at least one video and one template"}
	ErrDuplicateVideoIDs  = &ValidationError{Field: "video_ids", Message: "selection contains duplicate video ids"}
	ErrDuplicateTemplates = &ValidationError{Field: "template_ids", Message: "selection contains duplicate template ids"}
)

// Business Logic Errors
var (
	ErrLandingPageExists       = errors.New("landing page already exists for this workflow and template")
	ErrPersistenceFailed       = errors.New("failed to persist generation results")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrVideoAPINotConfigured   = errors.New("external video API is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsValidation checks if an error is a ValidationError or an
// InsufficientVideosError, both of which are selection pre-condition
// failures detected before any side effect
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var insufficientErr *InsufficientVideosError
	return errors.As(err, &validationErr) || errors.As(err, &insufficientErr)
}

// IsRenderFailure checks if an error is a RenderError
func IsRenderFailure(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInsufficientVideosError creates the capacity violation error for a template
func NewInsufficientVideosError(templateID int64, required, provided int) error {
	return &InsufficientVideosError{TemplateID: templateID, Required: required, Provided: provided}
}

// NewRenderError wraps a renderer failure with the failing template id
func NewRenderError(templateID int64, err error) error {
	return &RenderError{TemplateID: templateID, Err: err}
}
