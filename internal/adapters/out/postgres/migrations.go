package postgres

import (
	"fooddonation/internal/adapters/out/postgres/donationrepo"
	"fooddonation/internal/adapters/out/postgres/joinrequestrepo"
	"fooddonation/internal/adapters/out/postgres/ngorepo"
	"fooddonation/internal/adapters/out/postgres/requestrepo"
	"fooddonation/internal/adapters/out/postgres/teamrepo"
	"fooddonation/internal/adapters/out/postgres/volunteerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&donationrepo.DonationDTO{},
		&donationrepo.ItemDTO{},
		&donationrepo.ProofImageDTO{},
		&requestrepo.RequestDTO{},
		&teamrepo.TeamDTO{},
		&teamrepo.TeamMemberDTO{},
		&volunteerrepo.VolunteerDTO{},
		&volunteerrepo.VolunteerNgoDTO{},
		&ngorepo.NgoDTO{},
		&ngorepo.NgoVolunteerDTO{},
		&ngorepo.NgoDonationDTO{},
		&joinrequestrepo.JoinRequestDTO{},
	)
}
