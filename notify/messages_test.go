package notify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jameshuangoutlook/arkiviatodo/todos"
)

func TestHumanMessageKnownCodes(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{todos.ErrPermissionDenied, "You do not have permission to perform this action."},
		{todos.ErrServiceUnavailable, "Service unavailable. Check your network."},
		{todos.ErrNotAuthenticated, "You must be signed in to do that."},
		{todos.ErrNotFound, "That todo no longer exists."},
		{todos.ErrInvalidRecipient, "That email address is not valid."},
	}
	for _, c := range cases {
		if got := HumanMessage(c.err); got != c.want {
			t.Errorf("HumanMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestHumanMessageSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("updating todo a/b: %w", todos.ErrNotFound)
	if got, want := HumanMessage(err), "That todo no longer exists."; got != want {
		t.Errorf("wrapped error mapped to %q, want %q", got, want)
	}
}

// providerError mimics a failure forwarded from the identity provider with
// its own machine code.
type providerError struct {
	code string
}

func (e *providerError) Error() string     { return "provider failure" }
func (e *providerError) ErrorCode() string { return e.code }

func TestHumanMessageCodedErrors(t *testing.T) {
	err := &providerError{code: "auth/user-not-found"}
	if got, want := HumanMessage(err), "No account found with that email."; got != want {
		t.Errorf("coded error mapped to %q, want %q", got, want)
	}

	unknown := &providerError{code: "auth/some-new-code"}
	if got := HumanMessage(unknown); got != "provider failure" {
		t.Errorf("unknown code fell back to %q, want the raw error text", got)
	}
}

func TestHumanMessageFallbacks(t *testing.T) {
	if got := HumanMessage(errors.New("socket closed unexpectedly")); got != "socket closed unexpectedly" {
		t.Errorf("unknown error mapped to %q, want its own text", got)
	}
	if got := HumanMessage(nil); got != "An unknown error occurred." {
		t.Errorf("nil error mapped to %q, want the generic message", got)
	}
	if got := HumanMessage(errors.New("")); got != "An unknown error occurred." {
		t.Errorf("empty error text mapped to %q, want the generic message", got)
	}
}
