package util

import (
	"errors"
	"fmt"
)

// Common error types for the kubeportal CLI
var (
	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoKubeconfig indicates no kubeconfig could be located
	ErrNoKubeconfig = errors.New("no kubeconfig found")

	// ErrContextNotFound indicates a kubeconfig context was not found
	ErrContextNotFound = errors.New("context not found")

	// ErrConnectionFailed indicates a connection failure
	ErrConnectionFailed = errors.New("connection failed")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrResourceNotFound indicates a Kubernetes resource was not found
	ErrResourceNotFound = errors.New("resource not found")
)

// ContextError wraps an error with the kubeconfig context it occurred in
type ContextError struct {
	ContextName string
	Err         error
}

// Error implements the error interface
func (e *ContextError) Error() string {
	return fmt.Sprintf("context %q: %v", e.ContextName, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *ContextError) Unwrap() error {
	return e.Err
}

// WrapContextError wraps an error with context information
func WrapContextError(contextName string, err error) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		ContextName: contextName,
		Err:         err,
	}
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrContextNotFound)
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case IsTimeout(err):
		return "Operation timed out. Please try again or increase the timeout value with --timeout flag."
	case errors.Is(err, ErrNoKubeconfig):
		return "No kubeconfig found. Set KUBECONFIG or pass --kubeconfig to select a credential store."
	case IsNotFound(err):
		return "Resource not found. Please check the context name or resource identifier."
	case errors.Is(err, ErrConnectionFailed):
		return "Failed to connect to cluster. Please check your kubeconfig and network connectivity."
	case errors.Is(err, ErrInvalidConfig):
		return "Invalid configuration. Please check your config file and command-line flags."
	default:
		return err.Error()
	}
}
