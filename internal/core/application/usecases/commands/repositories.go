// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddonation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DonationRepoFactory provides access to the donation repository within a transaction.
	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	// RequestRepoFactory provides access to the claim request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// TeamRepoFactory provides access to the team repository within a transaction.
	TeamRepoFactory interface {
		TeamRepository() ports.TeamRepository
	}

	// VolunteerRepoFactory provides access to the volunteer repository within a transaction.
	VolunteerRepoFactory interface {
		VolunteerRepository() ports.VolunteerRepository
	}

	// NgoRepoFactory provides access to the NGO repository within a transaction.
	NgoRepoFactory interface {
		NgoRepository() ports.NgoRepository
	}

	// JoinRequestRepoFactory provides access to the join request repository within a transaction.
	JoinRequestRepoFactory interface {
		JoinRequestRepository() ports.JoinRequestRepository
	}

	// DonationUoW manages transactions for donation-only operations.
	DonationUoW interface {
		TxManager
		DonationRepoFactory
	}

	// DonationUoWFactory creates new donation unit of work instances.
	DonationUoWFactory interface {
		Create() DonationUoW
	}

	// ClaimUoW manages transactions for the claim request lifecycle.
	// Used by commands that coordinate donations, claim requests, and the
	// claiming NGO's profile.
	ClaimUoW interface {
		TxManager
		DonationRepoFactory
		RequestRepoFactory
		NgoRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// PickupUoW manages transactions for OTP issue and verification.
	// The acting NGO's profile is loaded to authorize against the donation.
	PickupUoW interface {
		TxManager
		DonationRepoFactory
		NgoRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// TeamUoW manages transactions spanning donations, teams, and volunteers.
	// Used by team formation and completion, where volunteer availability and
	// the donation status must change together or not at all.
	TeamUoW interface {
		TxManager
		DonationRepoFactory
		TeamRepoFactory
		VolunteerRepoFactory
		NgoRepoFactory
	}

	// TeamUoWFactory creates new team unit of work instances.
	TeamUoWFactory interface {
		Create() TeamUoW
	}

	// MembershipUoW manages transactions for the NGO membership lifecycle.
	MembershipUoW interface {
		TxManager
		VolunteerRepoFactory
		NgoRepoFactory
		JoinRequestRepoFactory
	}

	// MembershipUoWFactory creates new membership unit of work instances.
	MembershipUoWFactory interface {
		Create() MembershipUoW
	}
)
