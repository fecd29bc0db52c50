package todos

import (
	"context"
	"net/mail"
	"strings"

	"github.com/jameshuangoutlook/arkiviatodo/models"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

// Repository scopes every todo operation to the right owner partition and
// merges own todos with todos other owners shared with the caller's email.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// NormalizeEmail lower-cases and trims an email. Normalized emails are the
// unit of identity for all sharing comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func containsEmail(sharedWith []string, normalized string) bool {
	for _, s := range sharedWith {
		if NormalizeEmail(s) == normalized {
			return true
		}
	}
	return false
}

type todoKey struct {
	ownerID string
	id      string
}

// ListVisible returns the caller's own todos followed by todos owned by
// others but shared with the caller's email. The result is deduplicated by
// (ownerId, id); ordering beyond own-before-shared is unspecified.
func (r *Repository) ListVisible(ctx context.Context, caller Caller) ([]models.Todo, error) {
	if caller.IsZero() {
		return nil, ErrNotAuthenticated
	}

	own, err := r.store.ScanOwner(ctx, caller.UID)
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, len(own))
	seen := make(map[todoKey]bool, len(own))
	for _, t := range own {
		t.OwnerID = caller.UID
		key := todoKey{t.OwnerID, t.ID}
		if seen[key] {
			continue
		}
		seen[key] = true
		todos = append(todos, t)
	}

	email := NormalizeEmail(caller.Email)
	shared, err := r.store.ScanShared(ctx, email)
	if err != nil {
		return nil, err
	}
	for _, t := range shared {
		// Own todos already came from the owner scan.
		if t.OwnerID == caller.UID {
			continue
		}
		// The store filter matches exactly; re-verify after normalization in
		// case a stored entry differs only in case or whitespace.
		if !containsEmail(t.SharedWith, email) {
			continue
		}
		key := todoKey{t.OwnerID, t.ID}
		if seen[key] {
			continue
		}
		seen[key] = true
		todos = append(todos, t)
	}

	utilities.LogDebug("visible todos for %s: %d own, %d total", caller.UID, len(own), len(todos))
	return todos, nil
}

// Create adds a todo to the caller's own partition and returns the
// store-generated id.
func (r *Repository) Create(ctx context.Context, caller Caller, description string) (string, error) {
	if caller.IsZero() {
		return "", ErrNotAuthenticated
	}
	todo := models.Todo{
		Description: description,
		Done:        false,
		SharedWith:  []string{},
	}
	return r.store.Create(ctx, caller.UID, todo)
}

// SetDone flips the done flag of one todo at its owner's partition.
func (r *Repository) SetDone(ctx context.Context, caller Caller, ownerID, id string, done bool) error {
	if caller.IsZero() {
		return ErrNotAuthenticated
	}
	p := ResolvePartition(caller, ownerID)
	return r.store.Update(ctx, p.OwnerID, id, map[string]interface{}{"done": done})
}

// UpdateDescription rewrites the description of one todo.
func (r *Repository) UpdateDescription(ctx context.Context, caller Caller, ownerID, id, description string) error {
	if caller.IsZero() {
		return ErrNotAuthenticated
	}
	p := ResolvePartition(caller, ownerID)
	return r.store.Update(ctx, p.OwnerID, id, map[string]interface{}{"description": description})
}

// Delete removes one todo from its owner's partition.
func (r *Repository) Delete(ctx context.Context, caller Caller, ownerID, id string) error {
	if caller.IsZero() {
		return ErrNotAuthenticated
	}
	p := ResolvePartition(caller, ownerID)
	return r.store.Delete(ctx, p.OwnerID, id)
}

// Share adds recipientEmail to the sharedWith set of one todo. An empty
// ownerID targets the caller's own partition. The update is a
// read-modify-write with no concurrency guard: two concurrent shares of the
// same todo can race and the loser's addition is lost. That window is
// accepted, known behavior, not corrected here.
func (r *Repository) Share(ctx context.Context, caller Caller, ownerID, id, recipientEmail string) error {
	if caller.IsZero() {
		return ErrNotAuthenticated
	}
	recipient := NormalizeEmail(recipientEmail)
	if recipient == "" {
		return ErrInvalidRecipient
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return ErrInvalidRecipient
	}

	p := ResolvePartition(caller, ownerID)
	todo, err := r.store.Get(ctx, p.OwnerID, id)
	if err != nil {
		return err
	}

	if containsEmail(todo.SharedWith, recipient) {
		return nil
	}
	sharedWith := append(todo.SharedWith, recipient)
	return r.store.Update(ctx, p.OwnerID, id, map[string]interface{}{"sharedWith": sharedWith})
}
