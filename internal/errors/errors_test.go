package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSyncErrorMessage(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(CodeTargetUnknown, "invalid target")
		want := "[TARGET_001] invalid target"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		err := Wrap(CodeIORemoveError, "error removing linter", cause)
		if !strings.Contains(err.Error(), "permission denied") {
			t.Errorf("Error() = %q, should contain the cause", err.Error())
		}
		if !stderrors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})
}

func TestHasCode(t *testing.T) {
	err := ConfigSourceMissing("/missing")
	if !HasCode(err, CodeConfigSourceMissing) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(err, CodeIOCopyError) {
		t.Error("HasCode() matched the wrong code")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, CodeConfigSourceMissing) {
		t.Error("HasCode() should unwrap nested errors")
	}

	if HasCode(stderrors.New("plain"), CodeConfigSourceMissing) {
		t.Error("HasCode() should be false for plain errors")
	}
}

func TestCode(t *testing.T) {
	if got := Code(TargetUnknown("cursor", []string{"opencode"})); got != CodeTargetUnknown {
		t.Errorf("Code() = %q, want %q", got, CodeTargetUnknown)
	}
	if got := Code(stderrors.New("plain")); got != "" {
		t.Errorf("Code() = %q, want empty", got)
	}
}
