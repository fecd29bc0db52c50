package notify

import (
	"github.com/jameshuangoutlook/arkiviatodo/todos"
)

// humanMessages maps machine error codes to the sentences shown to users.
// The auth/* entries cover codes forwarded from the identity provider's
// sign-in flows; the rest are this service's own taxonomy.
var humanMessages = map[string]string{
	todos.CodePermissionDenied:   "You do not have permission to perform this action.",
	todos.CodeServiceUnavailable: "Service unavailable. Check your network.",
	todos.CodeNotAuthenticated:   "You must be signed in to do that.",
	todos.CodeNotFound:           "That todo no longer exists.",
	todos.CodeInvalidRecipient:   "That email address is not valid.",
	"auth/user-not-found":        "No account found with that email.",
	"auth/wrong-password":        "Incorrect password.",
	"auth/email-already-in-use":  "That email is already in use.",
	"auth/invalid-email":         "The email address is invalid.",
	"auth/weak-password":         "The password is too weak.",
}

// HumanMessage translates an operation failure into a user-facing sentence.
// Unknown codes fall back to the raw error text, then to a generic message.
func HumanMessage(err error) string {
	if err == nil {
		return "An unknown error occurred."
	}
	if msg, ok := humanMessages[todos.ErrorCode(err)]; ok {
		return msg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unknown error occurred."
}
