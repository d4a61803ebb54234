// Package derrors provides custom error types for sf-preflight.
// These error types carry a stable code so callers can branch on failure kind
// without string matching.
package derrors

import (
	"fmt"
)

// PreflightError is the base interface for all sf-preflight errors
type PreflightError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all sf-preflight errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// CommandError represents a failed external command. Output holds the captured
// standard output so callers that pattern-match on command output keep working
// even when the exit code signals absence.
type CommandError struct {
	baseError
	Command string
	Output  string
}

// NewCommandError creates a new command error
func NewCommandError(command, output, message string, cause error) *CommandError {
	return &CommandError{
		baseError: baseError{
			code:    "CMD_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
		Output:  output,
	}
}

// TimeoutError represents an external command that exceeded its deadline
type TimeoutError struct {
	baseError
	Command string
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(command, message string) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			code:    "CMD_TIMEOUT",
			message: message,
		},
		Command: command,
	}
}

// ConfigurationError represents errors in settings or descriptor files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ProvisionError represents a failed file provisioning operation
type ProvisionError struct {
	baseError
	Path string
}

// NewProvisionError creates a new provision error
func NewProvisionError(path string, message string, cause error) *ProvisionError {
	return &ProvisionError{
		baseError: baseError{
			code:    "PROVISION_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// InstallError represents a failed plugin or package installation.
// Installations are explicit user-confirmed actions, so this is the one error
// kind expected to reach the command surface.
type InstallError struct {
	baseError
	Target string
}

// NewInstallError creates a new install error
func NewInstallError(target string, message string, cause error) *InstallError {
	return &InstallError{
		baseError: baseError{
			code:    "INSTALL_ERROR",
			message: message,
			cause:   cause,
		},
		Target: target,
	}
}

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
		},
		Resource: resource,
	}
}

// StateError represents errors in persisted preflight state operations
type StateError struct {
	baseError
	Path string
}

// NewStateError creates a new state error
func NewStateError(path string, message string, cause error) *StateError {
	return &StateError{
		baseError: baseError{
			code:    "STATE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}
