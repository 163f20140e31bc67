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
	Context string // Additional context like "in organization"
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
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
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrEmployeeNotFound        = &NotFoundError{Entity: "employee"}
	ErrDocumentNotFound        = &NotFoundError{Entity: "document"}
	ErrDocumentRequestNotFound = &NotFoundError{Entity: "document request"}
	ErrRoutingRuleNotFound     = &NotFoundError{Entity: "routing rule"}
	ErrStorageConfigNotFound   = &NotFoundError{Entity: "storage config"}
	ErrEmailAccountNotFound    = &NotFoundError{Entity: "email account"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name or domain"}
	ErrEmployeeExists      = &AlreadyExistsError{Entity: "employee", Context: "with this email in the organization"}
	ErrEmailAccountExists  = &AlreadyExistsError{Entity: "email account", Context: "with this address in the organization"}
	ErrStorageConfigExists = &AlreadyExistsError{Entity: "storage config", Context: "with this name in the organization"}
)

// Business Logic Errors
var (
	ErrInvalidStatus             = errors.New("invalid status")
	ErrInvalidPaginationParams   = errors.New("invalid pagination parameters")
	ErrInvalidPattern            = errors.New("invalid pattern: not a valid regular expression")
	ErrInvalidFolderTemplate     = errors.New("invalid folder template")
	ErrRequestNotOpen            = errors.New("document request is not open")
	ErrRequestAlreadyCompleted   = errors.New("document request is already completed")
	ErrNoDefaultStorageConfig    = errors.New("organization has no default storage config")
	ErrUnsupportedProvider       = errors.New("unsupported storage provider")
	ErrUnsupportedImportFormat   = errors.New("unsupported import file format")
	ErrAttachmentTooLarge        = errors.New("attachment exceeds the organization size limit")
	ErrAttachmentTypeNotAllowed  = errors.New("attachment file type is not allowed")
	ErrNoEmailAccountConnected   = errors.New("organization has no connected email account")
	ErrEmailAccountReauthNeeded  = errors.New("email account requires reauthorization")
	ErrStorageProviderAuthFailed = errors.New("storage provider rejected the credentials")
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")

	ErrUserEmailNotFound = &AuthenticationError{Message: "user email not found in context"}
	ErrNoOrganization    = &AuthorizationError{Message: "user is not associated with an organization"}
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

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
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

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
