// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and a single atomic write through a repository.
package commands

import (
	"context"

	"pigeonpost/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the aggregates they
// touch, which keeps test fakes small.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// LetterRepoFactory provides access to the letter repository within a transaction.
	LetterRepoFactory interface {
		LetterRepository() ports.LetterRepository
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// LetterUoW manages transactions for letter-only operations.
	LetterUoW interface {
		TxManager
		LetterRepoFactory
	}

	// LetterUoWFactory creates new letter unit of work instances.
	LetterUoWFactory interface {
		Create() LetterUoW
	}

	// UoW manages transactions spanning all three aggregates. Used by commands
	// that validate cross-entity relationships (letter creation) or reference
	// counts before deletion.
	UoW interface {
		TxManager
		CarrierRepoFactory
		ClientRepoFactory
		LetterRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
