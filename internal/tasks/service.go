// Copyright (c) 2026 TaskTrail. All rights reserved.

package tasks

import (
	"context"
	"log/slog"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/validate"
)

// Service implements the task use cases. Every operation takes the calling
// principal's user id and passes it through to the ownership-scoped queries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the data for a new task. Status and Priority default to
// "pending" and "medium" when empty.
type CreateInput struct {
	Title       string
	Description *string
	Status      string
	Priority    string
}

// List returns the caller's tasks, ordered newest-first by creation time.
func (service *Service) List(ctx context.Context, userID int64) ([]*Task, error) {
	return service.repo.ListByOwner(ctx, userID)
}

// Create validates the input, applies defaults, and persists a new task.
//
// The task is always attributed to userID regardless of any owner in the
// input payload.
func (service *Service) Create(ctx context.Context, userID int64, input CreateInput) (*Task, error) {
	if input.Status == "" {
		input.Status = StatusPending
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLen).
		OneOf(FieldStatus, input.Status, StatusPending, StatusInProgress, StatusCompleted).
		OneOf(FieldPriority, input.Priority, PriorityLow, PriorityMedium, PriorityHigh)
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, DescriptionMaxLen)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	task := &Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		UserID:      userID,
	}

	if err := service.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "task_created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", userID),
	)

	return task, nil
}

// Get returns a single task by id, scoped to the caller.
func (service *Service) Get(ctx context.Context, userID, taskID int64) (*Task, error) {
	return service.repo.FindByID(ctx, taskID, userID)
}

// Update applies a partial update to the caller's task.
//
// At least one recognized field must be present. A task id belonging to
// another user yields NotFound, never a permission error, so the id's
// existence is not confirmed to non-owners.
func (service *Service) Update(ctx context.Context, userID, taskID int64, fields UpdateFields) (*Task, error) {
	if fields.IsEmpty() {
		return nil, apperr.ValidationError("No fields to update")
	}

	validator := &validate.Validator{}
	if fields.Title != nil {
		validator.Required(FieldTitle, *fields.Title).
			MaxLen(FieldTitle, *fields.Title, TitleMaxLen)
	}
	if fields.Description != nil {
		validator.MaxLen(FieldDescription, *fields.Description, DescriptionMaxLen)
	}
	if fields.Status != nil {
		validator.OneOf(FieldStatus, *fields.Status, StatusPending, StatusInProgress, StatusCompleted)
	}
	if fields.Priority != nil {
		validator.OneOf(FieldPriority, *fields.Priority, PriorityLow, PriorityMedium, PriorityHigh)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.Update(ctx, taskID, userID, fields)
}

// Delete removes the caller's task. Zero rows affected yields NotFound.
func (service *Service) Delete(ctx context.Context, userID, taskID int64) error {
	return service.repo.Delete(ctx, taskID, userID)
}
