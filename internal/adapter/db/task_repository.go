package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"rtodo/internal/core/domain"
	"rtodo/internal/core/ports"
)

const listByOwnerQuery = `
SELECT t.*
FROM tasks t
WHERE t.user_id = ?
ORDER BY FIELD(t.status, 'pending', 'in_progress', 'completed'),
         FIELD(t.priority, 'high', 'medium', 'low'),
         t.due_date IS NULL, t.due_date ASC,
         t.id DESC;
`

const listDueOnQuery = `
SELECT t.*, u.email AS owner_email
FROM tasks t
JOIN users u ON u.id = t.user_id
WHERE t.due_date = ? AND t.status != 'completed'
ORDER BY t.user_id, t.id;
`

const insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, due_date, priority, status)
VALUES (?, ?, ?, ?, ?, ?);
`

// Ownership-scoped writes: the owner id lives in the WHERE clause so the
// existence check and the mutation are one atomic statement.
const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due_date = ?, priority = ?, status = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?;
`

const markCompleteQuery = `
UPDATE tasks
SET status = 'completed', updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?;
`

const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullTime   `db:"due_date"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type dueTaskRow struct {
	taskRow
	OwnerEmail string `db:"owner_email"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, draft domain.TaskDraft) (uint64, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		draft.OwnerID,
		draft.Title,
		nullString(draft.Description),
		nullDate(draft.DueDate),
		string(draft.Priority),
		string(draft.Status),
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}

func (r *TaskRepository) Update(ctx context.Context, id, ownerID uint64, fields domain.TaskFields) (bool, error) {
	result, err := r.db.ExecContext(ctx, updateTaskQuery,
		fields.Title,
		nullString(fields.Description),
		nullDate(fields.DueDate),
		string(fields.Priority),
		string(fields.Status),
		id,
		ownerID,
	)
	if err != nil {
		return false, err
	}

	return matchedRows(result)
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID uint64) (bool, error) {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id, ownerID)
	if err != nil {
		return false, err
	}

	return matchedRows(result)
}

func (r *TaskRepository) MarkComplete(ctx context.Context, id, ownerID uint64) (bool, error) {
	result, err := r.db.ExecContext(ctx, markCompleteQuery, id, ownerID)
	if err != nil {
		return false, err
	}

	return matchedRows(result)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listByOwnerQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) ListDueOn(ctx context.Context, day time.Time) ([]domain.DueTask, error) {
	var rows []dueTaskRow
	if err := r.db.SelectContext(ctx, &rows, listDueOnQuery, day.Format("2006-01-02")); err != nil {
		return nil, err
	}

	due := make([]domain.DueTask, 0, len(rows))
	for _, row := range rows {
		due = append(due, domain.DueTask{
			Task:       mapTaskRowToDomainTask(row.taskRow),
			OwnerEmail: row.OwnerEmail,
		})
	}

	return due, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func matchedRows(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullDate(value *time.Time) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.Format("2006-01-02"), Valid: true}
}
