package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.hello)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind bearer authentication
	router.Route("/todo", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.getTodos)
		r.Post("/", h.createTodo)
		r.Get("/{id}", h.getTodoByID)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	return router
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Hello, world!"}, http.StatusOK)
}
