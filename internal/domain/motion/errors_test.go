package motion

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{Code: ErrCodeInvalidConfig, Message: "negative count"}
	want := "INVALID_CONFIG: negative count"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	wrapped := &DomainError{Code: ErrCodeInvalidSchedule, Message: "bad step", Cause: err}
	wantWrapped := "INVALID_SCHEDULE: bad step: INVALID_CONFIG: negative count"
	if wrapped.Error() != wantWrapped {
		t.Fatalf("expected %q, got %q", wantWrapped, wrapped.Error())
	}

	if got := ErrInvalidSchedule.Error(); got != "INVALID_SCHEDULE" {
		t.Fatalf("expected bare code for sentinel, got %q", got)
	}
}

func TestDomainError_IsMatchesSentinelByCode(t *testing.T) {
	err := NewScheduleError("negative stagger", map[string]interface{}{"stagger": -5})

	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatal("expected schedule error to match sentinel")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Fatal("expected schedule error not to match config sentinel")
	}

	wrapped := fmt.Errorf("schedule hero: %w", err)
	if !errors.Is(wrapped, ErrInvalidSchedule) {
		t.Fatal("expected wrapped error to match sentinel")
	}

	mismatch := &DomainError{Code: ErrCodeInvalidSchedule, Message: "other"}
	if errors.Is(err, mismatch) {
		t.Fatal("expected differing messages to be unequal")
	}
}

func TestDomainError_WithContext(t *testing.T) {
	err := NewConfigError("out of range", map[string]interface{}{"kind": "particles"})
	updated := err.WithContext(map[string]interface{}{"param": "speed"})

	if updated.Context["kind"] != "particles" || updated.Context["param"] != "speed" {
		t.Fatalf("context merge failed: %+v", updated.Context)
	}
	if updated == err {
		t.Fatal("WithContext should return a new instance")
	}
	if _, ok := err.Context["param"]; ok {
		t.Fatal("WithContext must not mutate the receiver")
	}
}

func TestDomainError_NilReceiver(t *testing.T) {
	var err *DomainError
	if got := err.Error(); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap")
	}
	if err.WithContext(map[string]interface{}{"a": 1}) != nil {
		t.Fatal("expected nil clone")
	}
}
