package todos

import "errors"

// Failure taxonomy for every repository operation. Handlers map these to
// HTTP statuses and the notify package maps them to user-facing messages.
var (
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrNotFound           = errors.New("todo not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidRecipient   = errors.New("invalid recipient email")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Machine codes, matching the codes the web client switched on.
const (
	CodeNotAuthenticated   = "unauthenticated"
	CodeNotFound           = "not-found"
	CodePermissionDenied   = "permission-denied"
	CodeInvalidRecipient   = "invalid-recipient"
	CodeServiceUnavailable = "unavailable"
	CodeUnknown            = "unknown"
)

// Coder is implemented by errors that carry their own machine code, such as
// failures forwarded from the identity provider.
type Coder interface {
	ErrorCode() string
}

// ErrorCode reduces any error to its machine code. Coded errors keep their
// own code; errors outside the taxonomy report CodeUnknown.
func ErrorCode(err error) string {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrPermissionDenied):
		return CodePermissionDenied
	case errors.Is(err, ErrInvalidRecipient):
		return CodeInvalidRecipient
	case errors.Is(err, ErrServiceUnavailable):
		return CodeServiceUnavailable
	default:
		return CodeUnknown
	}
}
