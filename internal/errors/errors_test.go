package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestWrapPreservesCode tests that wrapping an AppError carries its code
// through.
func TestWrapPreservesCode(t *testing.T) {
	base := SchemaError("table must contain columns: Taxon and Count")
	wrapped := Wrap(base, "failed to load upload")

	if GetCode(wrapped) != CodeSchemaError {
		t.Errorf("Wrapped code = %q, expected %q", GetCode(wrapped), CodeSchemaError)
	}
	if !errors.Is(wrapped, base) {
		t.Error("Wrapped error must unwrap to its cause")
	}
}

// TestWrapForeignError tests that a plain error wraps as INTERNAL_ERROR.
func TestWrapForeignError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk on fire"), "failed to read table")
	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("Code = %q, expected %q", GetCode(wrapped), CodeInternalError)
	}
}

// TestWrapNil tests the nil passthrough.
func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) must return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) must return nil")
	}
}

// TestHasCode tests code matching on app and foreign errors.
func TestHasCode(t *testing.T) {
	if !HasCode(EmptyInput("nothing"), CodeEmptyInput) {
		t.Error("Expected EMPTY_INPUT match")
	}
	if HasCode(EmptyInput("nothing"), CodeNotFound) {
		t.Error("Unexpected NOT_FOUND match")
	}
	if HasCode(fmt.Errorf("plain"), CodeEmptyInput) {
		t.Error("Plain errors carry no code")
	}
}

// TestGetCodeUnknown tests the fallback for non-app errors.
func TestGetCodeUnknown(t *testing.T) {
	if GetCode(fmt.Errorf("plain")) != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN for plain error, got %q", GetCode(fmt.Errorf("plain")))
	}
}

// TestErrorMessage tests message formatting with and without a cause.
func TestErrorMessage(t *testing.T) {
	plain := NotFound("analysis abc")
	if plain.Error() != "analysis abc not found" {
		t.Errorf("Unexpected message: %q", plain.Error())
	}

	wrapped := Wrap(fmt.Errorf("root cause"), "outer context")
	if wrapped.Error() != "outer context: root cause" {
		t.Errorf("Unexpected wrapped message: %q", wrapped.Error())
	}
}
