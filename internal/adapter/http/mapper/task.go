package mapper

import (
	"time"

	"rtodo/internal/adapter/http/dto"
	"rtodo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Priority:  string(task.Priority),
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	return item
}

func ToTaskSummaries(tasks []domain.Task) []dto.TaskSummary {
	summaries := make([]dto.TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summary := dto.TaskSummary{
			Title:  task.Title,
			Status: string(task.Status),
		}
		if task.DueDate != nil {
			value := task.DueDate.Format("2006-01-02")
			summary.DueDate = &value
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
