// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the donation workflow. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - TeamFormer: a domain service that validates and forms a pickup team
//     from an NGO's volunteer pool
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
