package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
// Repositories obtained after Begin share its transaction; the caller must
// Commit or Rollback explicitly.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	HistoryRepository() HistoryRepository
	ActorRepository() ActorRepository
	ProductRepository() ProductRepository
	ZoneRepository() ZoneRepository
}
