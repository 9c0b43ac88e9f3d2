package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/config"
	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/migrations"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is constructed once at startup and injected into the
// service layer.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
