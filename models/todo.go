package models

// Todo is one task document stored at users/{ownerId}/todos/{id}.
// ID and OwnerID are derived from the document path, never stored as fields.
type Todo struct {
	ID          string   `json:"id" firestore:"-"`
	OwnerID     string   `json:"ownerId" firestore:"-"`
	Description string   `json:"description" firestore:"description"`
	Done        bool     `json:"done" firestore:"done"`
	SharedWith  []string `json:"sharedWith" firestore:"sharedWith"`
}

type CreateTodoInput struct {
	Description string `json:"description"`
}

type UpdateDescriptionInput struct {
	Description string `json:"description"`
}

type SetDoneInput struct {
	Done bool `json:"done"`
}

type ShareTodoInput struct {
	Email string `json:"email"`
}
