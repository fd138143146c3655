package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access bound to that
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DonationRepository returns a DonationRepository bound to the current transaction.
	DonationRepository() DonationRepository

	// RequestRepository returns a RequestRepository bound to the current transaction.
	RequestRepository() RequestRepository

	// TeamRepository returns a TeamRepository bound to the current transaction.
	TeamRepository() TeamRepository

	// VolunteerRepository returns a VolunteerRepository bound to the current transaction.
	VolunteerRepository() VolunteerRepository

	// NgoRepository returns an NgoRepository bound to the current transaction.
	NgoRepository() NgoRepository

	// JoinRequestRepository returns a JoinRequestRepository bound to the current transaction.
	JoinRequestRepository() JoinRequestRepository
}
