package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rtodo/internal/adapter/http/dto"
	"rtodo/internal/adapter/http/mapper"
	"rtodo/internal/adapter/http/middleware"
	"rtodo/internal/adapter/http/validation"
	"rtodo/internal/core/domain"
	"rtodo/internal/core/ports"
	"rtodo/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	tasks, err := h.taskService.List(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

// ListPublicTasks is the embeddable read-only listing: title, status and due
// date of the caller's own tasks, nothing else.
func (h *TaskHandler) ListPublicTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	tasks, err := h.taskService.List(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list public tasks", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskSummaries(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	id, err := h.taskService.Create(c.Request.Context(), ownerID, validation.BuildTaskInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTitleRequired, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskCreated{ID: id})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	err := h.taskService.Update(c.Request.Context(), ownerID, taskID, validation.BuildTaskInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTitleRequired, lang),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task",
				zap.Uint64("owner_id", ownerID),
				zap.Uint64("task_id", taskID),
				zap.Error(err),
			)
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	err := h.taskService.Delete(c.Request.Context(), ownerID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task",
			zap.Uint64("owner_id", ownerID),
			zap.Uint64("task_id", taskID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	err := h.taskService.MarkComplete(c.Request.Context(), ownerID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to complete task",
			zap.Uint64("owner_id", ownerID),
			zap.Uint64("task_id", taskID),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskIDParam(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
