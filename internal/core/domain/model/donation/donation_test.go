package donation_test

import (
	"testing"
	"time"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []donation.Item {
	t.Helper()
	item, err := donation.NewItem("rice", 20, "kg", "packed")
	require.NoError(t, err)
	return []donation.Item{item}
}

func validPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(77.59, 12.97)
	require.NoError(t, err)
	return point
}

func newDonation(t *testing.T) *donation.Donation {
	t.Helper()
	d, err := donation.NewDonation(
		kernel.NewUUID(), kernel.NewUUID(), "Wedding leftovers",
		validItems(t), 40, "12 Market Street", validPoint(t))
	require.NoError(t, err)
	return d
}

func TestNewDonation(t *testing.T) {
	validID := kernel.NewUUID()
	donorID := kernel.NewUUID()

	t.Run("should create valid donation with all valid parameters", func(t *testing.T) {
		d, err := donation.NewDonation(
			validID, donorID, "Wedding leftovers", validItems(t), 40,
			"12 Market Street", validPoint(t))

		require.NoError(t, err)
		assert.NotNil(t, d)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.True(t, d.DonorID().IsEqual(donorID))
		assert.Equal(t, "Wedding leftovers", d.Title())
		assert.Equal(t, 40, d.PeopleFed())
		assert.Equal(t, donation.StatusNew, d.Status())
		assert.Equal(t, donation.StatusNew, d.LoadedStatus())
		assert.Nil(t, d.AssignedNgoID())
		assert.Nil(t, d.OTP())
		assert.Empty(t, d.ProofImages())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := donation.NewDonation(
			invalidID, donorID, "Wedding leftovers", validItems(t), 40,
			"12 Market Street", validPoint(t))

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail without title", func(t *testing.T) {
		d, err := donation.NewDonation(
			validID, donorID, "", validItems(t), 40,
			"12 Market Street", validPoint(t))

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without items", func(t *testing.T) {
		d, err := donation.NewDonation(
			validID, donorID, "Wedding leftovers", nil, 40,
			"12 Market Street", validPoint(t))

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, donation.ErrItemsAreRequired)
	})

	t.Run("should fail with negative people fed", func(t *testing.T) {
		d, err := donation.NewDonation(
			validID, donorID, "Wedding leftovers", validItems(t), -5,
			"12 Market Street", validPoint(t))

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail without pickup address", func(t *testing.T) {
		d, err := donation.NewDonation(
			validID, donorID, "Wedding leftovers", validItems(t), 40,
			"", validPoint(t))

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPoint kernel.GeoPoint

		d, err := donation.NewDonation(
			invalidID, donorID, "", nil, -1, "", invalidPoint)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreDonation(t *testing.T) {
	donorID := kernel.NewUUID()
	ngoID := kernel.NewUUID()

	t.Run("should remember loaded status for conditional updates", func(t *testing.T) {
		d, err := donation.RestoreDonation(
			kernel.NewUUID(), donorID, "Surplus", validItems(t), 10,
			"12 Market Street", validPoint(t),
			donation.StatusAssigned, &ngoID, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, donation.StatusAssigned, d.Status())
		assert.Equal(t, donation.StatusAssigned, d.LoadedStatus())
		require.NotNil(t, d.AssignedNgoID())
		assert.True(t, d.AssignedNgoID().IsEqual(ngoID))
	})

	t.Run("should keep loaded status while in-memory status advances", func(t *testing.T) {
		d, err := donation.RestoreDonation(
			kernel.NewUUID(), donorID, "Surplus", validItems(t), 10,
			"12 Market Street", validPoint(t),
			donation.StatusAssigned, &ngoID, nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Schedule())

		assert.Equal(t, donation.StatusScheduled, d.Status())
		assert.Equal(t, donation.StatusAssigned, d.LoadedStatus())
	})

	t.Run("should restore proof images", func(t *testing.T) {
		proofs := []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}

		d, err := donation.RestoreDonation(
			kernel.NewUUID(), donorID, "Surplus", validItems(t), 10,
			"12 Market Street", validPoint(t),
			donation.StatusCompleted, &ngoID, nil, proofs)

		require.NoError(t, err)
		assert.Equal(t, proofs, d.ProofImages())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		d, err := donation.RestoreDonation(
			kernel.NewUUID(), donorID, "Surplus", validItems(t), 10,
			"12 Market Street", validPoint(t),
			donation.StatusUnknown, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDonation_Assign(t *testing.T) {
	t.Run("should assign NGO to new donation", func(t *testing.T) {
		d := newDonation(t)
		ngoID := kernel.NewUUID()

		err := d.Assign(ngoID)

		require.NoError(t, err)
		assert.Equal(t, donation.StatusAssigned, d.Status())
		require.NotNil(t, d.AssignedNgoID())
		assert.True(t, d.AssignedNgoID().IsEqual(ngoID))
	})

	t.Run("should fail to assign twice", func(t *testing.T) {
		d := newDonation(t)
		firstNgo := kernel.NewUUID()
		require.NoError(t, d.Assign(firstNgo))

		err := d.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.True(t, d.AssignedNgoID().IsEqual(firstNgo)) // First NGO preserved
	})

	t.Run("should fail with invalid NGO ID", func(t *testing.T) {
		d := newDonation(t)
		var invalidID kernel.UUID

		err := d.Assign(invalidID)

		require.Error(t, err)
		assert.Equal(t, donation.StatusNew, d.Status()) // Status unchanged
		assert.Nil(t, d.AssignedNgoID())
	})
}

func TestDonation_Schedule(t *testing.T) {
	t.Run("should schedule assigned donation", func(t *testing.T) {
		d := newDonation(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))

		err := d.Schedule()

		require.NoError(t, err)
		assert.Equal(t, donation.StatusScheduled, d.Status())
	})

	t.Run("should fail to schedule new donation", func(t *testing.T) {
		d := newDonation(t)

		err := d.Schedule()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "New")
		assert.Equal(t, donation.StatusNew, d.Status())
	})
}

func TestDonation_IssueOTP(t *testing.T) {
	now := time.Now()

	scheduled := func(t *testing.T) *donation.Donation {
		t.Helper()
		d := newDonation(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Schedule())
		return d
	}

	t.Run("should issue code for scheduled donation", func(t *testing.T) {
		d := scheduled(t)

		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)

		require.NoError(t, err)
		assert.Len(t, otp.Code(), 6)
		require.NotNil(t, d.OTP())
		assert.Equal(t, otp.Code(), d.OTP().Code())
		assert.Equal(t, donation.StatusScheduled, d.Status()) // Status unchanged
	})

	t.Run("should replace previous code on reissue", func(t *testing.T) {
		d := scheduled(t)
		first, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)

		second, err := d.IssueOTP(now.Add(time.Minute), donation.DefaultOTPTTL)
		require.NoError(t, err)

		assert.Equal(t, second.Code(), d.OTP().Code())
		assert.Equal(t, second.ExpiresAt(), d.OTP().ExpiresAt())

		// Old code no longer verifies unless it happens to collide
		if first.Code() != second.Code() {
			err = d.VerifyOTP(first.Code(), now)
			assert.ErrorIs(t, err, donation.ErrOTPMismatch)
		}
	})

	t.Run("should fail before scheduling", func(t *testing.T) {
		d := newDonation(t)

		_, err := d.IssueOTP(now, donation.DefaultOTPTTL)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Nil(t, d.OTP())
	})

	t.Run("should fail after pickup", func(t *testing.T) {
		d := scheduled(t)
		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)
		require.NoError(t, d.VerifyOTP(otp.Code(), now))

		_, err = d.IssueOTP(now, donation.DefaultOTPTTL)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestDonation_VerifyOTP(t *testing.T) {
	now := time.Now()

	withOTP := func(t *testing.T) (*donation.Donation, donation.OTP) {
		t.Helper()
		d := newDonation(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Schedule())
		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)
		return d, otp
	}

	t.Run("should transition to Picked and clear code on match", func(t *testing.T) {
		d, otp := withOTP(t)

		err := d.VerifyOTP(otp.Code(), now)

		require.NoError(t, err)
		assert.Equal(t, donation.StatusPicked, d.Status())
		assert.Nil(t, d.OTP())
	})

	t.Run("should fail second verify with same code", func(t *testing.T) {
		d, otp := withOTP(t)
		require.NoError(t, d.VerifyOTP(otp.Code(), now))

		err := d.VerifyOTP(otp.Code(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrOTPNotIssued)
	})

	t.Run("should fail when no code issued", func(t *testing.T) {
		d := newDonation(t)

		err := d.VerifyOTP("123456", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrOTPNotIssued)
	})

	t.Run("should keep code and status on mismatch", func(t *testing.T) {
		d, otp := withOTP(t)
		wrong := "000000"
		if wrong == otp.Code() {
			wrong = "000001"
		}

		err := d.VerifyOTP(wrong, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrOTPMismatch)
		assert.Equal(t, donation.StatusScheduled, d.Status())
		assert.NotNil(t, d.OTP()) // Code kept for retry
	})

	t.Run("should keep code and status on expiry", func(t *testing.T) {
		d, otp := withOTP(t)
		late := now.Add(donation.DefaultOTPTTL + time.Second)

		err := d.VerifyOTP(otp.Code(), late)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrOTPExpired)
		assert.Equal(t, donation.StatusScheduled, d.Status())
		assert.NotNil(t, d.OTP()) // Stale code remains until replaced
	})
}

func TestDonation_Complete(t *testing.T) {
	now := time.Now()
	proofs := []string{"https://img.example/proof.jpg"}

	picked := func(t *testing.T) *donation.Donation {
		t.Helper()
		d := newDonation(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Schedule())
		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)
		require.NoError(t, d.VerifyOTP(otp.Code(), now))
		return d
	}

	t.Run("should complete picked donation with proof", func(t *testing.T) {
		d := picked(t)

		err := d.Complete(proofs)

		require.NoError(t, err)
		assert.Equal(t, donation.StatusCompleted, d.Status())
		assert.Equal(t, proofs, d.ProofImages())
	})

	t.Run("should fail without proof images", func(t *testing.T) {
		d := picked(t)

		err := d.Complete(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrProofIsRequired)
		assert.Equal(t, donation.StatusPicked, d.Status())
	})

	t.Run("should fail before pickup", func(t *testing.T) {
		d := newDonation(t)

		err := d.Complete(proofs)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should fail on already completed donation", func(t *testing.T) {
		d := picked(t)
		require.NoError(t, d.Complete(proofs))

		err := d.Complete(proofs)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "Completed")
	})
}

func TestDonation_IsOwnedBy(t *testing.T) {
	donorID := kernel.NewUUID()
	d, err := donation.NewDonation(
		kernel.NewUUID(), donorID, "Surplus", validItems(t), 10,
		"12 Market Street", validPoint(t))
	require.NoError(t, err)

	assert.True(t, d.IsOwnedBy(donorID))
	assert.False(t, d.IsOwnedBy(kernel.NewUUID()))
}

func TestDonation_FullWorkflow(t *testing.T) {
	t.Run("should follow complete donation lifecycle", func(t *testing.T) {
		now := time.Now()
		donorID := kernel.NewUUID()
		ngoID := kernel.NewUUID()

		d, err := donation.NewDonation(
			kernel.NewUUID(), donorID, "Wedding leftovers", validItems(t), 40,
			"12 Market Street", validPoint(t))
		require.NoError(t, err)
		assert.Equal(t, donation.StatusNew, d.Status())

		require.NoError(t, d.Assign(ngoID))
		assert.Equal(t, donation.StatusAssigned, d.Status())

		require.NoError(t, d.Schedule())
		assert.Equal(t, donation.StatusScheduled, d.Status())

		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)

		require.NoError(t, d.VerifyOTP(otp.Code(), now))
		assert.Equal(t, donation.StatusPicked, d.Status())
		assert.Nil(t, d.OTP())

		require.NoError(t, d.Complete([]string{"https://img.example/done.jpg"}))
		assert.Equal(t, donation.StatusCompleted, d.Status())

		// Assignment survived the whole lifecycle
		require.NotNil(t, d.AssignedNgoID())
		assert.True(t, d.AssignedNgoID().IsEqual(ngoID))
	})
}

func TestDonation_Immutability(t *testing.T) {
	t.Run("mutating returned items must not affect the aggregate", func(t *testing.T) {
		d := newDonation(t)

		items := d.Items()
		other, err := donation.NewItem("bread", 5, "loaves", "fresh")
		require.NoError(t, err)
		items[0] = other

		assert.Equal(t, "rice", d.Items()[0].Name())
	})

	t.Run("mutating returned proof images must not affect the aggregate", func(t *testing.T) {
		now := time.Now()
		d := newDonation(t)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Schedule())
		otp, err := d.IssueOTP(now, donation.DefaultOTPTTL)
		require.NoError(t, err)
		require.NoError(t, d.VerifyOTP(otp.Code(), now))
		require.NoError(t, d.Complete([]string{"https://img.example/a.jpg"}))

		proofs := d.ProofImages()
		proofs[0] = "tampered"

		assert.Equal(t, "https://img.example/a.jpg", d.ProofImages()[0])
	})
}
