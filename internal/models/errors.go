package models

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotConfigured  = errors.New("provider not configured")
	ErrNotFound       = errors.New("not found")
	ErrUpstreamFailed = errors.New("upstream provider failed")
)

// ValidationError is returned for missing or malformed client input
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigurationError means a server-side credential is missing
type ConfigurationError struct {
	Key     string
	Message string
}

func (e ConfigurationError) Error() string {
	return e.Message
}

func (e ConfigurationError) Is(target error) bool {
	return target == ErrNotConfigured
}

// NotFoundError carries the provider's status and message verbatim
type NotFoundError struct {
	Status  string
	Message string
}

func (e NotFoundError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("location not found (status %s)", e.Status)
	}
	return fmt.Sprintf("location not found (status %s): %s", e.Status, e.Message)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UpstreamError wraps a failure from either external provider
type UpstreamError struct {
	Provider string
	Err      error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

func (e UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailed
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(key, message string) error {
	return ConfigurationError{Key: key, Message: message}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(status, message string) error {
	return NotFoundError{Status: status, Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(provider string, err error) error {
	return UpstreamError{Provider: provider, Err: err}
}
