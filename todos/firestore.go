package todos

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jameshuangoutlook/arkiviatodo/models"
)

const (
	usersCollection = "users"
	todosCollection = "todos"
)

// FirestoreStore implements Store over Firestore using the
// users/{ownerId}/todos/{todoId} layout.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) partition(ownerID string) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(ownerID).Collection(todosCollection)
}

func (s *FirestoreStore) ScanOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	var todos []models.Todo
	iter := s.partition(ownerID).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, fmt.Sprintf("scanning todos for owner %s", ownerID))
		}
		var todo models.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, translateError(err, "decoding todo document")
		}
		todo.ID = doc.Ref.ID
		todos = append(todos, todo)
	}
	return todos, nil
}

func (s *FirestoreStore) ScanShared(ctx context.Context, email string) ([]models.Todo, error) {
	var todos []models.Todo
	query := s.client.CollectionGroup(todosCollection).Where("sharedWith", "array-contains", email)
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, "scanning shared todos")
		}
		var todo models.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, translateError(err, "decoding shared todo document")
		}
		todo.ID = doc.Ref.ID
		// Path is users/{ownerId}/todos/{todoId}: the owner is the parent
		// document of the todos collection this result came from.
		if owner := doc.Ref.Parent.Parent; owner != nil {
			todo.OwnerID = owner.ID
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (s *FirestoreStore) Get(ctx context.Context, ownerID, id string) (models.Todo, error) {
	doc, err := s.partition(ownerID).Doc(id).Get(ctx)
	if err != nil {
		return models.Todo{}, translateError(err, fmt.Sprintf("reading todo %s/%s", ownerID, id))
	}
	var todo models.Todo
	if err := doc.DataTo(&todo); err != nil {
		return models.Todo{}, translateError(err, "decoding todo document")
	}
	todo.ID = doc.Ref.ID
	todo.OwnerID = ownerID
	return todo, nil
}

func (s *FirestoreStore) Create(ctx context.Context, ownerID string, todo models.Todo) (string, error) {
	ref := s.partition(ownerID).NewDoc()
	if _, err := ref.Set(ctx, todo); err != nil {
		return "", translateError(err, fmt.Sprintf("creating todo for owner %s", ownerID))
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Update(ctx context.Context, ownerID, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if _, err := s.partition(ownerID).Doc(id).Update(ctx, updates); err != nil {
		return translateError(err, fmt.Sprintf("updating todo %s/%s", ownerID, id))
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, ownerID, id string) error {
	// Firestore deletes are silent on missing documents; the existence
	// precondition makes a vanished record report NotFound like every other
	// mutation.
	if _, err := s.partition(ownerID).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return translateError(err, fmt.Sprintf("deleting todo %s/%s", ownerID, id))
	}
	return nil
}

// translateError folds Firestore gRPC statuses into the repository taxonomy.
func translateError(err error, context string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", context, ErrNotFound)
	case codes.PermissionDenied:
		return fmt.Errorf("%s: %w", context, ErrPermissionDenied)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", context, ErrServiceUnavailable)
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}
