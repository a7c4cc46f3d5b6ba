package storage

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-planner/internal/config"
)

type backend interface {
	begin(ctx context.Context) (*Writer, error)
	Close() error
}

// Storage exposes non-transactional tables for reads and opens Writers for
// multi-record workflows.
type Storage struct {
	Tables
	backend backend
}

// NewStorage opens the backend selected by STORE_DRIVER.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	switch env.StoreDriver {
	case config.StoreDriverPostgres:
		return NewPostgresStorage(ctx, env.PostgresURL())
	case config.StoreDriverBolt:
		return NewBoltStorage(env.BoltPath)
	}
	return nil, fmt.Errorf("unknown store driver %q", env.StoreDriver)
}

// Write opens a transaction.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	return s.backend.begin(ctx)
}

func (s *Storage) Close() error {
	return s.backend.Close()
}
