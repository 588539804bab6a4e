package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidParameterError(t *testing.T) {
	err := NewInvalidParameter("Invalid name field")

	if err.Error() != "Invalid name field" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsInvalidParameter(err) {
		t.Error("IsInvalidParameter should be true")
	}

	wrapped := fmt.Errorf("place order: %w", err)
	if !IsInvalidParameter(wrapped) {
		t.Error("IsInvalidParameter should see through wrapping")
	}
}

func TestIsInvalidParameter_OtherErrors(t *testing.T) {
	if IsInvalidParameter(errors.New("boom")) {
		t.Error("plain error must not be a validation error")
	}
	if IsInvalidParameter(ErrTransactionAborted) {
		t.Error("sentinel must not be a validation error")
	}
	if IsInvalidParameter(nil) {
		t.Error("nil must not be a validation error")
	}
}

func TestSentinelWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("%w: %v", ErrTransactionAborted, cause)

	if !errors.Is(err, ErrTransactionAborted) {
		t.Error("expected ErrTransactionAborted in chain")
	}
	if errors.Is(err, ErrPersistenceFailure) {
		t.Error("ErrPersistenceFailure must not match")
	}
}
