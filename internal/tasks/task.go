// Copyright (c) 2026 TaskTrail. All rights reserved.

// Package tasks implements the task records owned by authenticated users.
//
// Every operation in this package is scoped by the owning user's id: a task
// id alone never grants access.
package tasks

import "time"

// Task status values.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Field length limits.
const (
	TitleMaxLen       = 255
	DescriptionMaxLen = 2000
)

// Task represents a single task record belonging to a user.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Field identifiers for validation messages.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
)
