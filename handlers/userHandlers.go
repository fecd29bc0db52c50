package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jameshuangoutlook/arkiviatodo/database"
	"github.com/jameshuangoutlook/arkiviatodo/firebase"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

type FinalizeLoginInput struct {
	IDToken string `json:"idToken"`
}

type FinalizeLoginResponse struct {
	Message     string `json:"message"`
	FirebaseUID string `json:"firebaseUid"`
}

// FinalizeLoginHandler verifies a Firebase ID token and registers the
// identity in the user directory on first sign-in. The directory is what
// the share picker and owner email lookups read from.
func FinalizeLoginHandler(w http.ResponseWriter, r *http.Request) {
	var input FinalizeLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Failed to decode finalize-login payload")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		http.Error(w, "ID token is required", http.StatusBadRequest)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(input.IDToken)
	if err != nil {
		utilities.LogError(err, "Failed to verify ID token")
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	email := firebase.TokenEmail(verifiedToken)
	displayName := firebase.TokenDisplayName(verifiedToken)
	if err := database.EnsureUser(db, verifiedToken.UID, email, displayName); err != nil {
		utilities.LogError(err, "Failed to sync user with directory")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Sign-in finalized for UID %s", verifiedToken.UID)
	respondJSON(w, http.StatusOK, FinalizeLoginResponse{
		Message:     "Login finalized.",
		FirebaseUID: verifiedToken.UID,
	})
}

// UserHandler returns the caller's own directory entry.
func UserHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	entry, err := database.GetUser(db, caller.UID)
	if err != nil {
		utilities.LogError(err, "Failed to read user from directory")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// GetAllUsersHandler lists every registered identity except the caller,
// fetched once per session by clients to drive the share-target picker.
func GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)

	entries, err := database.ListDirectory(db, caller.UID)
	if err != nil {
		utilities.LogError(err, "Failed to list user directory")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"users": entries})
}
