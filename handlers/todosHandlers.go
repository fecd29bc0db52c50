package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jameshuangoutlook/arkiviatodo/models"
	"github.com/jameshuangoutlook/arkiviatodo/notify"
	"github.com/jameshuangoutlook/arkiviatodo/todos"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

// targetFrom reads the mutation target out of the route. owner_id is only
// present on the owner-addressed routes; empty means the caller's own
// partition.
func targetFrom(r *http.Request) (ownerID, todoID string) {
	vars := mux.Vars(r)
	return vars["owner_id"], vars["todo_id"]
}

// refreshAndRespond answers a successful mutation with one fresh read of
// the visible todo list. There is no incremental patching: after any
// user-initiated action the response reflects authoritative state.
func refreshAndRespond(w http.ResponseWriter, r *http.Request, caller todos.Caller, payload map[string]interface{}) {
	list, err := repository.ListVisible(r.Context(), caller)
	if err != nil {
		failOperation(w, caller, err, "Load failed", "Failed to refresh todos after mutation")
		return
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["todos"] = list
	respondJSON(w, http.StatusOK, payload)
}

// ListTodosHandler returns the caller's own todos merged with todos shared
// with the caller's email.
func ListTodosHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	list, err := repository.ListVisible(r.Context(), caller)
	if err != nil {
		failOperation(w, caller, err, "Load failed", "Failed to list visible todos")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"todos": list})
}

// CreateTodoHandler creates a todo in the caller's own partition.
func CreateTodoHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	var input models.CreateTodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Failed to decode create payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	id, err := repository.Create(r.Context(), caller, input.Description)
	if err != nil {
		failOperation(w, caller, err, "Create failed", "Failed to create todo")
		return
	}

	utilities.LogInfo("Todo created: %s (owner %s)", id, caller.UID)
	notifications.Queue(caller.UID).Push(notify.SeveritySuccess, fmt.Sprintf("ToDo created (id: %s)", id), "Success")
	refreshAndRespond(w, r, caller, map[string]interface{}{"id": id})
}

// SetDoneHandler flips the done flag on a todo, own or owner-addressed.
func SetDoneHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	ownerID, todoID := targetFrom(r)

	var input models.SetDoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Failed to decode done payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := repository.SetDone(r.Context(), caller, ownerID, todoID, input.Done); err != nil {
		failOperation(w, caller, err, "Update failed", "Failed to set todo done flag")
		return
	}

	msg := "ToDo marked undone"
	if input.Done {
		msg = "ToDo marked done"
	}
	notifications.Queue(caller.UID).Push(notify.SeveritySuccess, msg, "Updated")
	refreshAndRespond(w, r, caller, nil)
}

// UpdateDescriptionHandler rewrites a todo's description, own or
// owner-addressed.
func UpdateDescriptionHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	ownerID, todoID := targetFrom(r)

	var input models.UpdateDescriptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Failed to decode description payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := repository.UpdateDescription(r.Context(), caller, ownerID, todoID, input.Description); err != nil {
		failOperation(w, caller, err, "Update failed", "Failed to update todo description")
		return
	}

	notifications.Queue(caller.UID).Push(notify.SeveritySuccess, "ToDo updated", "Success")
	refreshAndRespond(w, r, caller, nil)
}

// DeleteTodoHandler removes a todo, own or owner-addressed. A record that
// vanished between list and delete surfaces as NotFound; the forced refresh
// makes that non-fatal for the next read either way.
func DeleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	ownerID, todoID := targetFrom(r)

	if err := repository.Delete(r.Context(), caller, ownerID, todoID); err != nil {
		failOperation(w, caller, err, "Delete failed", "Failed to delete todo")
		return
	}

	notifications.Queue(caller.UID).Push(notify.SeveritySuccess, "ToDo deleted", "Success")
	refreshAndRespond(w, r, caller, nil)
}

// ShareTodoHandler adds a recipient email to a todo's sharedWith set, own
// or owner-addressed.
func ShareTodoHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	ownerID, todoID := targetFrom(r)

	var input models.ShareTodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Failed to decode share payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := repository.Share(r.Context(), caller, ownerID, todoID, input.Email); err != nil {
		failOperation(w, caller, err, "Share failed", "Failed to share todo")
		return
	}

	recipient := todos.NormalizeEmail(input.Email)
	notifications.Queue(caller.UID).Push(notify.SeveritySuccess, fmt.Sprintf("ToDo shared with %s", recipient), "Shared")
	refreshAndRespond(w, r, caller, nil)
}
