package service

import (
	"context"
	"strings"
	"time"

	"rtodo/internal/core/domain"
	"rtodo/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) Create(ctx context.Context, ownerID uint64, input domain.TaskInput) (uint64, error) {
	title, fields, err := normalizeInput(input)
	if err != nil {
		return 0, err
	}

	return s.taskRepository.Insert(ctx, domain.TaskDraft{
		OwnerID:     ownerID,
		Title:       title,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		Priority:    fields.Priority,
		Status:      fields.Status,
	})
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID uint64, input domain.TaskInput) error {
	title, fields, err := normalizeInput(input)
	if err != nil {
		return err
	}
	fields.Title = title

	matched, err := s.taskRepository.Update(ctx, taskID, ownerID, fields)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID uint64) error {
	matched, err := s.taskRepository.Delete(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) MarkComplete(ctx context.Context, ownerID, taskID uint64) error {
	// Matches on (id, owner) only, so completing an already completed task
	// stays a no-op success.
	matched, err := s.taskRepository.MarkComplete(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) List(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

// normalizeInput applies the validation rules shared by create and update:
// an empty title is the only fatal problem, everything else falls back to a
// safe default.
func normalizeInput(input domain.TaskInput) (string, domain.TaskFields, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return "", domain.TaskFields{}, domain.ErrTitleRequired
	}

	return title, domain.TaskFields{
		Description: input.Description,
		DueDate:     parseDueDate(input.DueDate),
		Priority:    domain.ParsePriority(input.Priority),
		Status:      domain.ParseStatus(input.Status),
	}, nil
}

func parseDueDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		// Malformed dates are treated as "no deadline".
		return nil
	}

	return &parsed
}

var _ ports.TaskService = (*TaskService)(nil)
