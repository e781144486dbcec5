package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("booking")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Message != "booking not found" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.StatusCode())
	}
}

func TestForbidden(t *testing.T) {
	err := Forbidden("room capacity exhausted")

	if err.Code != CodeForbidden {
		t.Errorf("expected code %s, got %s", CodeForbidden, err.Code)
	}
	if err.StatusCode() != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, err.StatusCode())
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("store fault", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}

func TestAsAppError_PassesThrough(t *testing.T) {
	orig := Forbidden("nope")
	got := AsAppError(fmt.Errorf("outer: %w", orig))

	if got != orig {
		t.Error("expected the original AppError back")
	}
}

func TestAsAppError_WrapsUnknown(t *testing.T) {
	got := AsAppError(errors.New("boom"))

	if got.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, got.Code)
	}
	if got.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", got.StatusCode())
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("get booking: %w", NotFound("booking"))

	if !HasCode(err, CodeNotFound) {
		t.Error("expected HasCode to see through wrapping")
	}
	if HasCode(err, CodeForbidden) {
		t.Error("unexpected code match")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("plain error must not match")
	}
}
