package service

import (
	"github.com/MKhiriev/go-todo-api/internal/config"
	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		TodoService: NewTodoService(storages.TodoRepository, logger),
	}
}
