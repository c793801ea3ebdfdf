package validation

import (
	"rtodo/internal/adapter/http/dto"
	"rtodo/internal/core/domain"
)

// BuildTaskInput lowers the request body into the service's input struct.
// No validation happens here: title trimming, enum coercion and date
// normalization all belong to the service boundary.
func BuildTaskInput(req dto.SaveTaskRequest) domain.TaskInput {
	input := domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.Status != nil {
		input.Status = *req.Status
	}

	return input
}
