package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ParseStatus coerces unrecognized values to the default so garbage input
// never reaches the table.
func ParseStatus(value string) TaskStatus {
	switch TaskStatus(value) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(value)
	default:
		return TaskStatusPending
	}
}

// ParsePriority coerces unrecognized values to the default.
func ParsePriority(value string) TaskPriority {
	switch TaskPriority(value) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return TaskPriority(value)
	default:
		return TaskPriorityMedium
	}
}

type Task struct {
	ID          uint64
	OwnerID     uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskDraft is a validated task ready for insertion. The store assigns id,
// created_at and updated_at.
type TaskDraft struct {
	OwnerID     uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

// TaskFields carries the full replacement field set for an update.
type TaskFields struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

// TaskInput is the loosely-typed payload of a create or update request,
// before validation normalizes it.
type TaskInput struct {
	Title       string
	Description *string
	DueDate     string
	Priority    string
	Status      string
}

// DueTask pairs a task with its owner's email address for the reminder digest.
type DueTask struct {
	Task       Task
	OwnerEmail string
}
