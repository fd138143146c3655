package queries_test

import (
	"context"
	"testing"

	postgresadapter "fooddonation/internal/adapters/out/postgres"
	"fooddonation/internal/core/application/usecases/queries"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against a real
// PostgreSQL database, seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		donations, donation_items, donation_proof_images, donation_requests,
		teams, team_members,
		volunteers, volunteer_ngos,
		ngos, ngo_volunteers, ngo_donations,
		join_requests`).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOpenDonations_ReturnsOnlyNewDonations() {
	ctx := context.Background()

	open := suite.seedDonation(donation.StatusNew)
	suite.seedDonation(donation.StatusAssigned)
	suite.seedDonation(donation.StatusCompleted)

	handler := queries.NewGetOpenDonationsQueryHandler(suite.db)
	responses, err := handler.Handle(ctx, queries.NewGetOpenDonationsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(responses, 1)
	suite.Equal(open.ID(), responses[0].ID)
	suite.Equal("Wedding leftovers", responses[0].Title)
	suite.Equal(40, responses[0].PeopleFed)
	suite.Equal("12 Market Street", responses[0].PickupAddress)
	suite.InDelta(77.59, responses[0].PickupPoint.Longitude(), 0.0001)
	suite.InDelta(12.97, responses[0].PickupPoint.Latitude(), 0.0001)
}

func (suite *QueriesIntegrationTestSuite) TestGetOpenDonations_NoOpenDonations_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.seedDonation(donation.StatusAssigned)

	handler := queries.NewGetOpenDonationsQueryHandler(suite.db)
	responses, err := handler.Handle(ctx, queries.NewGetOpenDonationsQuery())
	suite.Require().NoError(err)

	suite.Empty(responses)
}

func (suite *QueriesIntegrationTestSuite) TestGetNgoRoster_ReturnsMembersWithAvailability() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ngoProfile, err := ngo.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust")
	suite.Require().NoError(err)

	available, err := volunteer.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Asha")
	suite.Require().NoError(err)
	busy, err := volunteer.RestoreProfile(kernel.NewUUID(), kernel.NewUUID(), "Ravi", false, nil)
	suite.Require().NoError(err)
	outsider, err := volunteer.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Meera")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.VolunteerRepository().Add(ctx, available))
	suite.Require().NoError(uow.VolunteerRepository().Add(ctx, busy))
	suite.Require().NoError(uow.VolunteerRepository().Add(ctx, outsider))

	suite.Require().NoError(ngoProfile.AddVolunteer(available.ID()))
	suite.Require().NoError(ngoProfile.AddVolunteer(busy.ID()))
	suite.Require().NoError(uow.NgoRepository().Add(ctx, ngoProfile))

	query, err := queries.NewGetNgoRosterQuery(ngoProfile.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetNgoRosterQueryHandler(suite.db)
	roster, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(roster, 2)
	// Sorted by name: Asha before Ravi
	suite.Equal(available.ID(), roster[0].VolunteerID)
	suite.Equal("Asha", roster[0].Name)
	suite.True(roster[0].IsAvailable)
	suite.Equal(busy.ID(), roster[1].VolunteerID)
	suite.Equal("Ravi", roster[1].Name)
	suite.False(roster[1].IsAvailable)
}

func (suite *QueriesIntegrationTestSuite) TestGetNgoRoster_EmptyRoster_ReturnsEmptySlice() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ngoProfile, err := ngo.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NgoRepository().Add(ctx, ngoProfile))

	query, err := queries.NewGetNgoRosterQuery(ngoProfile.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetNgoRosterQueryHandler(suite.db)
	roster, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Empty(roster)
}

func (suite *QueriesIntegrationTestSuite) TestGetDonationStats_CountsPerStatus() {
	ctx := context.Background()

	suite.seedDonation(donation.StatusNew)
	suite.seedDonation(donation.StatusNew)
	suite.seedDonation(donation.StatusScheduled)

	handler := queries.NewGetDonationStatsQueryHandler(suite.db)
	stats, err := handler.Handle(ctx, queries.NewGetDonationStatsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(stats, 2)
	suite.Equal("New", stats[0].Status)
	suite.Equal(2, stats[0].Count)
	suite.Equal("Scheduled", stats[1].Status)
	suite.Equal(1, stats[1].Count)
}

// seedDonation persists a donation restored directly into the given status.
func (suite *QueriesIntegrationTestSuite) seedDonation(status donation.Status) *donation.Donation {
	item, err := donation.NewItem("rice", 20, "kg", "packed")
	suite.Require().NoError(err)
	point, err := kernel.NewGeoPoint(77.59, 12.97)
	suite.Require().NoError(err)

	var assignedNgoID *kernel.UUID
	if status != donation.StatusNew {
		ngoID := kernel.NewUUID()
		assignedNgoID = &ngoID
	}

	seeded, err := donation.RestoreDonation(
		kernel.NewUUID(), kernel.NewUUID(), "Wedding leftovers",
		[]donation.Item{item}, 40, "12 Market Street", point,
		status, assignedNgoID, nil, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.DonationRepository().Add(context.Background(), seeded))
	return seeded
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
