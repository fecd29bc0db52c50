package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jameshuangoutlook/arkiviatodo/notify"
	"github.com/jameshuangoutlook/arkiviatodo/todos"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

var (
	db            *sql.DB
	repository    *todos.Repository
	notifications *notify.Center
)

// InitDB hands the handlers the user-directory database.
func InitDB(database *sql.DB) {
	utilities.LogInfo("Handlers wired to user directory database")
	db = database
}

// InitRepository hands the handlers the todo repository.
func InitRepository(r *todos.Repository) {
	repository = r
}

// InitNotifications hands the handlers the notification center.
func InitNotifications(c *notify.Center) {
	notifications = c
}

type contextKey string

const callerContextKey contextKey = "caller"

// callerFrom extracts the authenticated caller placed in the request
// context by AuthMiddleware.
func callerFrom(r *http.Request) todos.Caller {
	caller, _ := r.Context().Value(callerContextKey).(todos.Caller)
	return caller
}

// statusFor maps a repository failure to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, todos.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, todos.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, todos.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, todos.ErrInvalidRecipient):
		return http.StatusBadRequest
	case errors.Is(err, todos.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		utilities.LogError(err, "Failed to encode response")
	}
}

// failOperation logs a repository failure, queues the danger toast for the
// caller and writes the mapped HTTP error. Every failure path in the todo
// handlers funnels through here; nothing is retried.
func failOperation(w http.ResponseWriter, caller todos.Caller, err error, title, logContext string) {
	utilities.LogError(err, logContext)
	msg := notify.HumanMessage(err)
	if !caller.IsZero() {
		notifications.Queue(caller.UID).Push(notify.SeverityDanger, msg, title)
	}
	http.Error(w, msg, statusFor(err))
}
