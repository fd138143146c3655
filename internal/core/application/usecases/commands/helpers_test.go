package commands_test

import (
	"testing"
	"time"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/core/domain/model/volunteer"

	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func testItems(t *testing.T) []donation.Item {
	t.Helper()
	item, err := donation.NewItem("rice", 20, "kg", "packed")
	require.NoError(t, err)
	return []donation.Item{item}
}

func testGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(77.59, 12.97)
	require.NoError(t, err)
	return point
}

func testNewDonation(t *testing.T, donorID kernel.UUID) *donation.Donation {
	t.Helper()
	don, err := donation.NewDonation(
		kernel.NewUUID(), donorID, "Warehouse surplus",
		testItems(t), 40, "12 Market Street", testGeoPoint(t),
	)
	require.NoError(t, err)
	return don
}

func testDonationInStatus(
	t *testing.T,
	donorID kernel.UUID,
	status donation.Status,
	assignedNgoID *kernel.UUID,
	otp *donation.OTP,
) *donation.Donation {
	t.Helper()
	don, err := donation.RestoreDonation(
		kernel.NewUUID(), donorID, "Warehouse surplus",
		testItems(t), 40, "12 Market Street", testGeoPoint(t),
		status, assignedNgoID, otp, nil,
	)
	require.NoError(t, err)
	return don
}

func testNgoProfile(t *testing.T, userID kernel.UUID, volunteers ...kernel.UUID) *ngo.Profile {
	t.Helper()
	profile, err := ngo.RestoreProfile(kernel.NewUUID(), userID, "Helping Hands", volunteers, nil)
	require.NoError(t, err)
	return profile
}

func testVolunteerProfile(t *testing.T, ngoID kernel.UUID) *volunteer.Profile {
	t.Helper()
	profile, err := volunteer.RestoreProfile(
		kernel.NewUUID(), kernel.NewUUID(), "Asha", true, []kernel.UUID{ngoID},
	)
	require.NoError(t, err)
	return profile
}

func testSchedule(t *testing.T) donation.Schedule {
	t.Helper()
	schedule, err := donation.NewSchedule(time.Now().Add(24*time.Hour), "warehouse gate")
	require.NoError(t, err)
	return schedule
}
