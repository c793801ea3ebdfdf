package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rtodo/internal/adapter/http/dto"
	"rtodo/internal/adapter/http/handlers"
	"rtodo/internal/adapter/http/middleware"
	"rtodo/internal/core/domain"
	"rtodo/pkg/apierrors"
	"rtodo/pkg/translator"
)

const testUserID uint64 = 7

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, ownerID uint64, input domain.TaskInput) (uint64, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, ownerID, taskID uint64, input domain.TaskInput) error {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Error(0)
}

func (m *taskServiceMock) Delete(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) MarkComplete(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) List(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

// testIdentity stands in for the auth middleware so handler tests do not
// have to mint tokens.
func testIdentity(c *gin.Context) {
	c.Set(middleware.ContextUserIDKey, testUserID)
	c.Next()
}

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), testIdentity)
	api.GET("/tasks", handler.ListTasks)
	api.GET("/tasks/public", handler.ListPublicTasks)
	api.POST("/tasks", handler.CreateTask)
	api.PUT("/tasks/:id", handler.UpdateTask)
	api.DELETE("/tasks/:id", handler.DeleteTask)
	api.POST("/tasks/:id/complete", handler.CompleteTask)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "semi-skimmed"
	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 2, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, testUserID).Return(
		[]domain.Task{
			{
				ID:          1,
				OwnerID:     testUserID,
				Title:       "Buy milk",
				Description: &description,
				DueDate:     &dueDate,
				Priority:    domain.TaskPriorityHigh,
				Status:      domain.TaskStatusPending,
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			},
		},
		nil,
	).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, uint64(1), got[0].ID)
	require.Equal(t, "Buy milk", got[0].Title)
	require.Equal(t, "semi-skimmed", *got[0].Description)
	require.Equal(t, "2026-03-10", *got[0].DueDate)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "pending", got[0].Status)
	require.Equal(t, "2026-03-01T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-03-02T11:20:30Z", got[0].UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, testUserID).Return(nil, errors.New("db is down")).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to list tasks.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListPublicTasks_OmitsPrivateFields(t *testing.T) {
	description := "not for the front end"
	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, testUserID).Return(
		[]domain.Task{
			{
				ID:          1,
				OwnerID:     testUserID,
				Title:       "Buy milk",
				Description: &description,
				DueDate:     &dueDate,
				Priority:    domain.TaskPriorityHigh,
				Status:      domain.TaskStatusPending,
			},
		},
		nil,
	).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodGet, "/api/tasks/public", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Buy milk", got[0]["title"])
	require.Equal(t, "pending", got[0]["status"])
	require.Equal(t, "2026-03-10", got[0]["due_date"])
	require.NotContains(t, got[0], "id")
	require.NotContains(t, got[0], "description")
	require.NotContains(t, got[0], "priority")
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(input domain.TaskInput) bool {
		return input.Title == "Buy milk" && input.Priority == "high"
	})).Return(uint64(42), nil).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPost, "/api/tasks",
		`{"title":"Buy milk","priority":"high"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(42), got.ID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_EmptyTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, testUserID, mock.Anything).
		Return(uint64(0), domain.ErrTitleRequired).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPost, "/api/tasks", `{"title":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Title is required.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MalformedBody(t *testing.T) {
	serviceMock := new(taskServiceMock)

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPost, "/api/tasks", `{"title":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, testUserID, uint64(3), mock.Anything).
		Return(domain.ErrTaskNotFound).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPut, "/api/tasks/3",
		`{"title":"Renamed"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, testUserID, uint64(3), mock.Anything).Return(nil).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPut, "/api/tasks/3",
		`{"title":"Renamed"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPut, "/api/tasks/abc",
		`{"title":"Renamed"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, testUserID, uint64(99)).
		Return(domain.ErrTaskNotFound).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodDelete, "/api/tasks/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, testUserID, uint64(3)).Return(nil).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodDelete, "/api/tasks/3", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_Twice(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("MarkComplete", mock.Anything, testUserID, uint64(3)).Return(nil).Twice()

	router := newTaskRouter(serviceMock)
	first := doJSON(t, router, http.MethodPost, "/api/tasks/3/complete", "")
	second := doJSON(t, router, http.MethodPost, "/api/tasks/3/complete", "")

	require.Equal(t, http.StatusNoContent, first.Code)
	require.Equal(t, http.StatusNoContent, second.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("MarkComplete", mock.Anything, testUserID, uint64(3)).
		Return(errors.New("db is down")).Once()

	rec := doJSON(t, newTaskRouter(serviceMock), http.MethodPost, "/api/tasks/3/complete", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to complete task.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
