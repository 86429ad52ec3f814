// Copyright (c) 2026 TaskTrail. All rights reserved.

package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrail/api/internal/platform/apperr"
)

const taskColumns = "id, title, description, status, priority, user_id, created_at, updated_at"

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListByOwner returns the owner's tasks, newest first.
func (repository *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC`, taskColumns)

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_task_repo_list_failed: %w", err)
	}
	defer rows.Close()

	tasks := make([]*Task, 0)
	for rows.Next() {
		task := &Task{}
		if err := scanTask(rows, task); err != nil {
			return nil, fmt.Errorf("postgres_task_repo_scan_failed: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_task_repo_rows_failed: %w", err)
	}

	return tasks, nil
}

// Create persists a new task record and fills in the generated ID and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, task *Task) error {
	query := fmt.Sprintf(`
		INSERT INTO tasks (title, description, status, priority, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, taskColumns)

	row := repository.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.UserID,
	)

	if err := scanTask(row, task); err != nil {
		return fmt.Errorf("postgres_task_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves a single task by the compound (id, user_id) key.
func (repository *PostgresRepository) FindByID(ctx context.Context, id, userID int64) (*Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE id = $1 AND user_id = $2`, taskColumns)

	task := &Task{}
	err := scanTask(repository.pool.QueryRow(ctx, query, id, userID), task)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Task")
		}
		return nil, fmt.Errorf("postgres_task_repo_find_failed: %w", err)
	}

	return task, nil
}

// Update applies the present fields to the row matching id AND user_id.
//
// The SET clause is built dynamically from the present fields; a row owned
// by another user yields the same NotFound as a missing row.
func (repository *PostgresRepository) Update(ctx context.Context, id, userID int64, fields UpdateFields) (*Task, error) {
	assignments := make([]string, 0, 4)
	values := make([]any, 0, 6)
	position := 1

	appendField := func(column string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		values = append(values, value)
		position++
	}

	if fields.Title != nil {
		appendField("title", *fields.Title)
	}
	if fields.Description != nil {
		appendField("description", *fields.Description)
	}
	if fields.Status != nil {
		appendField("status", *fields.Status)
	}
	if fields.Priority != nil {
		appendField("priority", *fields.Priority)
	}

	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s`,
		strings.Join(assignments, ", "), position, position+1, taskColumns)
	values = append(values, id, userID)

	task := &Task{}
	err := scanTask(repository.pool.QueryRow(ctx, query, values...), task)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Task")
		}
		return nil, fmt.Errorf("postgres_task_repo_update_failed: %w", err)
	}

	return task, nil
}

// Delete removes the row matching id AND user_id. Zero rows affected yields
// NotFound.
func (repository *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = "DELETE FROM tasks WHERE id = $1 AND user_id = $2"

	tag, err := repository.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("postgres_task_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Task")
	}

	return nil
}

// scanTask hydrates a Task from a single-row scanner.
func scanTask(row pgx.Row, task *Task) error {
	return row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
}
