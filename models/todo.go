package models

import "time"

// Todo represents a single task owned by exactly one user. Only the owner
// may read, update, or delete it; the ownership check lives in the service
// layer, not in the store.
type Todo struct {
	// ID is the unique identifier of the task, generated server-side.
	ID string `json:"id"`

	// UserID references the owning User.ID.
	UserID string `json:"user_id"`

	// Title is the task text. Must be non-empty after trimming.
	Title string `json:"title"`

	// Progress is the completion percentage in the range 0..100.
	Progress int `json:"progress"`

	// Date is the task timestamp. Client-supplied; defaults to the
	// creation time when omitted.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoInput carries the mutable todo fields accepted by the create and
// update endpoints.
type TodoInput struct {
	Title    string    `json:"title"`
	Progress int       `json:"progress"`
	Date     time.Time `json:"date"`
}
