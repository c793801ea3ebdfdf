package ports

import (
	"context"
	"time"

	"rtodo/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, draft domain.TaskDraft) (uint64, error)
	// Update and Delete report whether a row matched both the id and the
	// owner. A false result is the authorization answer, not an error.
	Update(ctx context.Context, id, ownerID uint64, fields domain.TaskFields) (bool, error)
	Delete(ctx context.Context, id, ownerID uint64) (bool, error)
	MarkComplete(ctx context.Context, id, ownerID uint64) (bool, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	ListDueOn(ctx context.Context, day time.Time) ([]domain.DueTask, error)
}

type TaskService interface {
	Create(ctx context.Context, ownerID uint64, input domain.TaskInput) (uint64, error)
	Update(ctx context.Context, ownerID, taskID uint64, input domain.TaskInput) error
	Delete(ctx context.Context, ownerID, taskID uint64) error
	MarkComplete(ctx context.Context, ownerID, taskID uint64) error
	List(ctx context.Context, ownerID uint64) ([]domain.Task, error)
}
