// Copyright (c) 2026 TaskTrail. All rights reserved.

package tasks

import "context"

// UpdateFields carries the recognized fields of a partial update. A nil
// pointer means "leave unchanged".
type UpdateFields struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

// IsEmpty reports whether no recognized field is present.
func (f UpdateFields) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.Status == nil && f.Priority == nil
}

// Repository defines the data access contract for task records.
//
// Every method that targets an existing row takes the owner's userID and
// must constrain the query by it; a row owned by someone else behaves
// exactly like a missing row.
type Repository interface {
	ListByOwner(ctx context.Context, userID int64) ([]*Task, error)
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id, userID int64) (*Task, error)
	Update(ctx context.Context, id, userID int64, fields UpdateFields) (*Task, error)
	Delete(ctx context.Context, id, userID int64) error
}
