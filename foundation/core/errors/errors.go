// File: errors.go
// Title: Standard Error Constructors for textkit Foundation
// Description: Provides the module identifiers, module error codes and the
//              ErrorBuilder used by every utils package to report failures
//              in a uniform shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Narrowed to the text, number and time utilities

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleMathx       = "mathx"
	ModuleTimex       = "timex"
	ModuleValidationx = "validationx"
	ModuleConfig      = "config"
	ModuleTextx       = "textx"
)

// Module specific error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeEncodingError   = "ENCODING_ERROR"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.
		WithCode(mdwerror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// InvalidInput creates the error raised when a precondition guard rejects
// an argument. It matches mdwerror.ErrInvalidInput.
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// EncodingFailed wraps a charset or Base64 failure. It matches
// mdwerror.ErrEncoding.
func EncodingFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s encoding failed", module, operation).
		Cause(cause).
		Code(CodeEncodingError).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// OperationFailed wraps an I/O or system failure that is not the
// caller's input
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(CodeOperationFailed).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ExtractModule extracts the module name from a standardized error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation extracts the operation name from a standardized error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsInvalidInput reports whether err was raised by a precondition guard
func IsInvalidInput(err error) bool {
	return mdwerror.HasCode(err, CodeInvalidInput)
}

func detailString(err error, key string) string {
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		return ""
	}
	if v, ok := mdwErr.Details()[key].(string); ok {
		return v
	}
	return ""
}
