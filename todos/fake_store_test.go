package todos

import (
	"context"
	"fmt"

	"github.com/jameshuangoutlook/arkiviatodo/models"
)

// fakeStore is an in-memory Store keyed owner -> id -> todo. ScanShared
// matches exactly, like the real containment filter; with leakAll set it
// returns every todo from every partition, emulating a scan broader than
// its filter.
type fakeStore struct {
	partitions map[string]map[string]models.Todo
	nextID     int
	leakAll    bool
	onGet      func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{partitions: map[string]map[string]models.Todo{}}
}

func (f *fakeStore) seed(ownerID string, todo models.Todo) string {
	f.nextID++
	id := fmt.Sprintf("todo-%d", f.nextID)
	if f.partitions[ownerID] == nil {
		f.partitions[ownerID] = map[string]models.Todo{}
	}
	todo.ID = ""
	todo.OwnerID = ""
	f.partitions[ownerID][id] = todo
	return id
}

func copyTodo(t models.Todo) models.Todo {
	t.SharedWith = append([]string(nil), t.SharedWith...)
	return t
}

func (f *fakeStore) ScanOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	var out []models.Todo
	for id, t := range f.partitions[ownerID] {
		t = copyTodo(t)
		t.ID = id
		out = append(out, t)
	}
	return out, nil
}

func exactContains(sharedWith []string, email string) bool {
	for _, s := range sharedWith {
		if s == email {
			return true
		}
	}
	return false
}

func (f *fakeStore) ScanShared(ctx context.Context, email string) ([]models.Todo, error) {
	var out []models.Todo
	for ownerID, partition := range f.partitions {
		for id, t := range partition {
			if !f.leakAll && !exactContains(t.SharedWith, email) {
				continue
			}
			t = copyTodo(t)
			t.ID = id
			t.OwnerID = ownerID
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, ownerID, id string) (models.Todo, error) {
	t, ok := f.partitions[ownerID][id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	// The snapshot was taken above: a hook that writes competing updates
	// into the store does not change what this read returns.
	if f.onGet != nil {
		f.onGet()
	}
	t = copyTodo(t)
	t.ID = id
	t.OwnerID = ownerID
	return t, nil
}

func (f *fakeStore) Create(ctx context.Context, ownerID string, todo models.Todo) (string, error) {
	return f.seed(ownerID, copyTodo(todo)), nil
}

func (f *fakeStore) Update(ctx context.Context, ownerID, id string, fields map[string]interface{}) error {
	t, ok := f.partitions[ownerID][id]
	if !ok {
		return ErrNotFound
	}
	for path, value := range fields {
		switch path {
		case "done":
			t.Done = value.(bool)
		case "description":
			t.Description = value.(string)
		case "sharedWith":
			t.SharedWith = append([]string(nil), value.([]string)...)
		default:
			return fmt.Errorf("fake store: unknown field %q", path)
		}
	}
	f.partitions[ownerID][id] = t
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, ownerID, id string) error {
	if _, ok := f.partitions[ownerID][id]; !ok {
		return ErrNotFound
	}
	delete(f.partitions[ownerID], id)
	return nil
}
