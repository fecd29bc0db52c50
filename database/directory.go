package database

import (
	"database/sql"
	"fmt"

	"github.com/jameshuangoutlook/arkiviatodo/models"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

// EnsureUser registers an identity in the user directory on first sign-in.
// Existing rows keep their stored email and display name.
func EnsureUser(db *sql.DB, uid, email, displayName string) error {
	var existing string
	err := db.QueryRow("SELECT firebase_uid FROM users WHERE firebase_uid = $1", uid).Scan(&existing)

	switch {
	case err == sql.ErrNoRows:
		utilities.LogInfo("First sign-in for UID %s, adding to user directory", uid)
		_, insertErr := db.Exec(
			"INSERT INTO users (firebase_uid, email, display_name) VALUES ($1, $2, $3)",
			uid, email, displayName,
		)
		if insertErr != nil {
			utilities.LogError(insertErr, "Failed to insert user into directory")
			return fmt.Errorf("inserting user into directory: %w", insertErr)
		}
		return nil

	case err != nil:
		utilities.LogError(err, "Failed to look up user in directory")
		return fmt.Errorf("looking up user in directory: %w", err)

	default:
		return nil
	}
}

// GetUser returns one directory entry by Firebase UID.
func GetUser(db *sql.DB, uid string) (models.DirectoryEntry, error) {
	var entry models.DirectoryEntry
	err := db.QueryRow(
		"SELECT firebase_uid, email, COALESCE(display_name, '') FROM users WHERE firebase_uid = $1",
		uid,
	).Scan(&entry.FirebaseUID, &entry.Email, &entry.DisplayName)
	if err != nil {
		return models.DirectoryEntry{}, err
	}
	return entry, nil
}

// ListDirectory returns every registered identity except excludeUID, for the
// share-target picker and owner email lookups.
func ListDirectory(db *sql.DB, excludeUID string) ([]models.DirectoryEntry, error) {
	rows, err := db.Query(
		"SELECT firebase_uid, email, COALESCE(display_name, '') FROM users WHERE firebase_uid <> $1 ORDER BY email",
		excludeUID,
	)
	if err != nil {
		utilities.LogError(err, "Failed to list user directory")
		return nil, err
	}
	defer rows.Close()

	entries := []models.DirectoryEntry{}
	for rows.Next() {
		var entry models.DirectoryEntry
		if err := rows.Scan(&entry.FirebaseUID, &entry.Email, &entry.DisplayName); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
