package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(Cancelled()) {
		t.Error("Expected IsCancelled(Cancelled()) to be true")
	}
	if !IsCancelled(fmt.Errorf("wrapped: %w", Cancelled())) {
		t.Error("Expected IsCancelled to see through wrapping")
	}
	if IsCancelled(Generic(errors.New("boom"))) {
		t.Error("Expected IsCancelled(Generic) to be false")
	}
	if IsCancelled(errors.New("plain")) {
		t.Error("Expected IsCancelled(plain error) to be false")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err      error
		expected Code
	}{
		{AdmissionRejected("busy", "Busy."), CodeAdmissionRejected},
		{ContentUnavailable(errors.New("410")), CodeContentUnavailable},
		{Transport(errors.New("refused")), CodeTransportFailure},
		{Generic(errors.New("boom")), CodeGenericFailure},
		{Cancelled(), CodeCancelled},
		{errors.New("plain"), CodeGenericFailure},
	}

	for _, test := range tests {
		if got := CodeOf(test.err); got != test.expected {
			t.Errorf("CodeOf(%v) = %s, expected %s", test.err, got, test.expected)
		}
	}
}

func TestUserMessage(t *testing.T) {
	err := Transport(errors.New("dial tcp: connection refused"))
	if UserMessage(err) == err.Error() {
		t.Error("Expected user message to differ from the diagnostic")
	}

	// Plain errors fall back to the raw diagnostic.
	plain := errors.New("raw diagnostic")
	if UserMessage(plain) != "raw diagnostic" {
		t.Errorf("Expected fallback to the raw message, got '%s'", UserMessage(plain))
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Generic(cause)
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}
