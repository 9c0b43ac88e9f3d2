package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/service"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// mockTodoService implements service.TodoService for unit tests.
type mockTodoService struct {
	createTodoFn  func(ctx context.Context, userID int64, todo models.Todo) (models.Todo, error)
	getTodosFn    func(ctx context.Context, userID int64) ([]models.Todo, error)
	getTodoByIDFn func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	updateTodoFn  func(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error
	deleteTodoFn  func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, userID int64, todo models.Todo) (models.Todo, error) {
	return m.createTodoFn(ctx, userID, todo)
}

func (m *mockTodoService) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return m.getTodosFn(ctx, userID)
}

func (m *mockTodoService) GetTodoByID(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.getTodoByIDFn(ctx, userID, todoID)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error {
	return m.updateTodoFn(ctx, userID, todoID, update)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return m.deleteTodoFn(ctx, userID, todoID)
}

func newHandlerWithTodoService(todoSvc service.TodoService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			TodoService: todoSvc,
		},
	}
}

// executeTodoRequest runs a request through the todo routes with the given
// user ID already present in the context, simulating a passed auth middleware.
func executeTodoRequest(h *Handler, userID int64, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Route("/todo", func(r chi.Router) {
		r.Get("/", h.getTodos)
		r.Post("/", h.createTodo)
		r.Get("/{id}", h.getTodoByID)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, userID))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandler_GetTodos_EmptyList(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		getTodosFn: func(_ context.Context, userID int64) ([]models.Todo, error) {
			assert.Equal(t, int64(7), userID)
			return []models.Todo{}, nil
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodGet, "/todo/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	// Empty list must serialize as [], never null.
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
}

func TestHandler_GetTodos_Success(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		getTodosFn: func(_ context.Context, _ int64) ([]models.Todo, error) {
			return []models.Todo{
				{ID: 1, UserID: 7, TodoName: "first"},
				{ID: 2, UserID: 7, TodoName: "second"},
			}, nil
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodGet, "/todo/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"todoName":"first"`)
	assert.Contains(t, rr.Body.String(), `"todoName":"second"`)
}

func TestHandler_CreateTodo_Success(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		createTodoFn: func(_ context.Context, userID int64, todo models.Todo) (models.Todo, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "Buy groceries", todo.TodoName)
			todo.ID = 1
			todo.UserID = userID
			return todo, nil
		},
	})

	body := `{"todoName":"Buy groceries","description":"milk, eggs"}`
	rr := executeTodoRequest(h, 7, http.MethodPost, "/todo/", body)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Todo created successfully"`)
	assert.Contains(t, rr.Body.String(), `"id":1`)
}

func TestHandler_CreateTodo_MissingName(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		createTodoFn: func(_ context.Context, _ int64, _ models.Todo) (models.Todo, error) {
			return models.Todo{}, service.ErrInvalidDataProvided
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodPost, "/todo/", `{"description":"no name"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_GetTodoByID_Success(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		getTodoByIDFn: func(_ context.Context, userID, todoID int64) (models.Todo, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(3), todoID)
			return models.Todo{ID: 3, UserID: 7, TodoName: "first"}, nil
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodGet, "/todo/3", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":3`)
	// No message on a plain fetch.
	assert.NotContains(t, rr.Body.String(), `"message"`)
}

func TestHandler_GetTodoByID_InvalidID(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	rr := executeTodoRequest(h, 7, http.MethodGet, "/todo/abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid ID"}`, rr.Body.String())
}

func TestHandler_GetTodoByID_NotFound(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		getTodoByIDFn: func(_ context.Context, _, _ int64) (models.Todo, error) {
			return models.Todo{}, store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodGet, "/todo/999999", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Todo not found"}`, rr.Body.String())
}

func TestHandler_UpdateTodo_Success(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		updateTodoFn: func(_ context.Context, userID, todoID int64, update models.TodoUpdate) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(3), todoID)
			if assert.NotNil(t, update.TodoName) {
				assert.Equal(t, "renamed", *update.TodoName)
			}
			assert.Nil(t, update.Description)
			return nil
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodPut, "/todo/3", `{"todoName":"renamed"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Todo updated successfully"}`, rr.Body.String())
}

func TestHandler_UpdateTodo_InvalidID(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	rr := executeTodoRequest(h, 7, http.MethodPut, "/todo/abc", `{"todoName":"renamed"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid ID"}`, rr.Body.String())
}

func TestHandler_UpdateTodo_NotFound(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		updateTodoFn: func(_ context.Context, _, _ int64, _ models.TodoUpdate) error {
			return store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodPut, "/todo/999999", `{"todoName":"renamed"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Todo not found"}`, rr.Body.String())
}

func TestHandler_DeleteTodo_Success(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		deleteTodoFn: func(_ context.Context, userID, todoID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(3), todoID)
			return nil
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodDelete, "/todo/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestHandler_DeleteTodo_InvalidID(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	rr := executeTodoRequest(h, 7, http.MethodDelete, "/todo/abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid ID"}`, rr.Body.String())
}

func TestHandler_DeleteTodo_NotFound(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		deleteTodoFn: func(_ context.Context, _, _ int64) error {
			return store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, 7, http.MethodDelete, "/todo/999999", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Todo not found"}`, rr.Body.String())
}
