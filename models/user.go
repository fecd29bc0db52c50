package models

// DirectoryEntry is one registered identity from the user directory,
// used to resolve owner ids to emails and to populate the share picker.
type DirectoryEntry struct {
	FirebaseUID string `json:"firebase_uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}
