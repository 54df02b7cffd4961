// Package commands contains the use cases that change system state.
// Every handler validates its command, opens a unit of work, applies the change
// through domain aggregates and commits, rolling back on any error.
package commands

import (
	"context"

	"smartlogi/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// LifecycleUoW spans everything a parcel command touches: the parcel itself,
	// its history ledger and the actors, products and zones it refers to.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   // update the parcel, append history
	//
	//   return uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		ActorRepoFactory
		ProductRepoFactory
		ZoneRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// ActorUoW is used to register actors; couriers may reference a zone.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
		ZoneRepoFactory
	}

	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// CatalogUoW is used to register products and zones.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		ZoneRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)

// TransitionObserver is notified of committed and rejected status changes.
type TransitionObserver interface {
	ObserveTransition(from, to string)
	ObserveRejection(reason string)
}

type nopObserver struct{}

func (nopObserver) ObserveTransition(string, string) {}
func (nopObserver) ObserveRejection(string)          {}
