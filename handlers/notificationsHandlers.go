package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListNotificationsHandler returns the caller's live notification events in
// insertion order. Expired events are already pruned by the queue.
func ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	events := notifications.Queue(caller.UID).List()
	respondJSON(w, http.StatusOK, map[string]interface{}{"notifications": events})
}

// DismissNotificationHandler removes one event immediately. Dismissing an
// unknown or already expired event succeeds quietly.
func DismissNotificationHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	eventID := mux.Vars(r)["event_id"]
	notifications.Queue(caller.UID).Dismiss(eventID)
	w.WriteHeader(http.StatusNoContent)
}
