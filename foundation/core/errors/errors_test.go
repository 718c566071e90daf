// File: errors_test.go
// Title: Tests for Standard Error Constructors
// Description: Verifies codes, details and matching of the module error
//              constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-18 v0.2.0: Rewritten with testify for the reduced API

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleStringx, "to_camel_case", "   ", "non-blank text")

	assert.Equal(t, mdwerror.Code(CodeInvalidInput), err.Code())
	assert.Equal(t, mdwerror.SeverityLow, err.Severity())
	assert.Equal(t, "invalid input for stringx.to_camel_case: expected non-blank text", err.Error())
	assert.Equal(t, "stringx.to_camel_case", err.Operation())
	assert.Equal(t, "   ", err.Details()["input"])
	assert.True(t, IsInvalidInput(err))
	assert.True(t, stderrors.Is(err, mdwerror.ErrInvalidInput))
	assert.False(t, stderrors.Is(err, mdwerror.ErrEncoding))
}

func TestEncodingFailed(t *testing.T) {
	cause := stderrors.New("illegal base64 data at input byte 3")
	err := EncodingFailed(ModuleStringx, "decode_state", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, mdwerror.ErrEncoding)
	assert.False(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "stringx.decode_state encoding failed")
}

func TestOperationFailed(t *testing.T) {
	cause := stderrors.New("read error")

	for _, module := range []string{ModuleTextx, ModuleTimex} {
		t.Run(module, func(t *testing.T) {
			err := OperationFailed(module, "read_text", cause)
			assert.Equal(t, mdwerror.Code(CodeOperationFailed), err.Code())
			assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, module, ExtractModule(err))
		})
	}
}

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleValidationx).Build()
	assert.Equal(t, "validationx operation failed", err.Error())
	assert.Equal(t, mdwerror.Code(CodeOperationFailed), err.Code())
	assert.Equal(t, ModuleValidationx, ExtractModule(err))
	assert.Empty(t, ExtractOperation(err))

	named := NewErrorBuilder(ModuleMathx).Operation("format").Detail("k", "v").Build()
	assert.Equal(t, "mathx.format failed", named.Error())
	assert.Equal(t, "format", ExtractOperation(named))
	assert.True(t, IsModuleError(named, ModuleMathx))
	assert.False(t, IsModuleError(named, ModuleStringx))
}

func TestExtractFromPlainError(t *testing.T) {
	plain := stderrors.New("plain")
	assert.Empty(t, ExtractModule(plain))
	assert.Empty(t, ExtractOperation(plain))
	assert.False(t, IsInvalidInput(plain))
}
