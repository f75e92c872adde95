package appointment

import (
	"context"
	"testing"

	"medhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferSlotRejectsSelfReferral(t *testing.T) {
	svc, _, avail, _ := newTestService()
	publishDay(avail, "doc-1", "2026-09-01", "Tuesday", "08:00-08:25 AM")

	_, err := svc.ReferSlot(context.Background(), "doc-1", models.ReferralRequest{
		PatientID: "pat-1", DoctorID: "doc-1", Day: "Tuesday", Time: "08:00-08:25 AM",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestReferSlotTagsReferralFields(t *testing.T) {
	svc, _, avail, sched := newTestService()
	publishDay(avail, "doc-2", "2026-09-01", "Tuesday", "10:00-10:25 AM")

	appt, err := svc.ReferSlot(context.Background(), "doc-1", models.ReferralRequest{
		PatientID: "pat-1", DoctorID: "doc-2", Day: "Tuesday", Time: "10:00-10:25 AM",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.NotEqual(t, appt.CompositeKey(), appt.ID, "referrals get a fresh id, not the composite key")
	assert.True(t, appt.Referred)
	assert.True(t, appt.DiscountApplied)
	assert.Equal(t, "doc-1", appt.ReferredBy)
	assert.Equal(t, "Ali Raza", appt.DoctorName)
	assert.Equal(t, "Hamza Ahmed", appt.PatientName)
	assert.Len(t, sched.scheduled, 1)
}

func TestReferSlotDoubleSubmitRejected(t *testing.T) {
	svc, repo, avail, _ := newTestService()
	publishDay(avail, "doc-2", "2026-09-01", "Tuesday", "10:00-10:25 AM")

	req := models.ReferralRequest{
		PatientID: "pat-1", DoctorID: "doc-2", Day: "Tuesday", Time: "10:00-10:25 AM",
	}
	_, err := svc.ReferSlot(context.Background(), "doc-1", req)
	require.NoError(t, err)

	_, err = svc.ReferSlot(context.Background(), "doc-1", req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.byID, 1)
}

func TestReferSlotRequiresPublishedSlot(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ReferSlot(context.Background(), "doc-1", models.ReferralRequest{
		PatientID: "pat-1", DoctorID: "doc-2", Day: "Tuesday", Time: "10:00-10:25 AM",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
