package availability

import (
	"context"
	"testing"

	appointmentRepo "medhub/database/repository/appointment"
	"medhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailabilityRepo stores day documents in memory with the same
// create-or-replace semantics as the storage layer.
type fakeAvailabilityRepo struct {
	days []models.AvailabilityDay
}

func (r *fakeAvailabilityRepo) Upsert(day *models.AvailabilityDay) error {
	for i, existing := range r.days {
		if existing.DoctorID == day.DoctorID && existing.Date == day.Date {
			r.days[i] = *day
			return nil
		}
	}
	r.days = append(r.days, *day)
	return nil
}

func (r *fakeAvailabilityRepo) GetByDoctor(doctorID string) ([]models.AvailabilityDay, error) {
	var out []models.AvailabilityDay
	for _, day := range r.days {
		if day.DoctorID == doctorID {
			out = append(out, day)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) GetByDoctorAndDay(doctorID, dayName string) (*models.AvailabilityDay, error) {
	for _, day := range r.days {
		if day.DoctorID == doctorID && day.Day == dayName {
			d := day
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeAvailabilityRepo) DeleteByDoctorAndDate(doctorID, date string) error {
	return nil
}

// fakeLedger serves a fixed booked-times set per (doctorId, day).
type fakeLedger struct {
	booked map[string][]string
}

func (l *fakeLedger) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (l *fakeLedger) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return nil, nil
}

func (l *fakeLedger) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (l *fakeLedger) BookedTimes(ctx context.Context, doctorID, day string) ([]string, error) {
	return l.booked[doctorID+"|"+day], nil
}

func (l *fakeLedger) UpsertWithKey(ctx context.Context, appt *models.Appointment) error { return nil }
func (l *fakeLedger) Insert(ctx context.Context, appt *models.Appointment) error        { return nil }

var _ appointmentRepo.AppointmentRepository = (*fakeLedger)(nil)

func newTestService() (*DefaultAvailabilityService, *fakeAvailabilityRepo, *fakeLedger) {
	repo := &fakeAvailabilityRepo{}
	ledger := &fakeLedger{booked: make(map[string][]string)}
	return &DefaultAvailabilityService{Repo: repo, Appointments: ledger}, repo, ledger
}

func TestPublishRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Publish(ctx, "doc-1", models.SetAvailabilityRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.Publish(ctx, "doc-1", models.SetAvailabilityRequest{
		Date: "01-09-2026", Slots: []string{"08:00-08:25 AM"},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err), "date must be YYYY-MM-DD")

	_, err = svc.Publish(ctx, "doc-1", models.SetAvailabilityRequest{
		Date: "2026-09-01", Slots: []string{"07:00-07:25 AM"},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err), "slots outside the fixed enumeration are rejected")
}

func TestPublishDerivesWeekdayAndNormalizesSlots(t *testing.T) {
	svc, _, _ := newTestService()

	day, err := svc.Publish(context.Background(), "doc-1", models.SetAvailabilityRequest{
		Date: "2026-09-01",
		Slots: []string{
			"08:30-08:55 AM",
			"08:00-08:25 AM",
			"08:30-08:55 AM", // duplicate
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tuesday", day.Day)
	assert.Equal(t, []string{"08:00-08:25 AM", "08:30-08:55 AM"}, day.Slots)
}

func TestPublishReplacesWholeDay(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Publish(ctx, "doc-1", models.SetAvailabilityRequest{
		Date:  "2026-09-01",
		Slots: []string{"08:00-08:25 AM", "08:30-08:55 AM"},
	})
	require.NoError(t, err)

	_, err = svc.Publish(ctx, "doc-1", models.SetAvailabilityRequest{
		Date:  "2026-09-01",
		Slots: []string{"10:00-10:25 AM"},
	})
	require.NoError(t, err)

	require.Len(t, repo.days, 1)
	assert.Equal(t, []string{"10:00-10:25 AM"}, repo.days[0].Slots,
		"slots not reselected disappear; there is no merge")
}

func TestGetForDoctorComputesBookedFlags(t *testing.T) {
	svc, repo, ledger := newTestService()
	repo.days = append(repo.days, models.AvailabilityDay{
		DoctorID: "doc-1",
		Date:     "2026-09-01",
		Day:      "Tuesday",
		Slots:    []string{"08:00-08:25 AM", "08:30-08:55 AM", "10:00-10:25 AM"},
	})
	ledger.booked["doc-1|Tuesday"] = []string{"08:30-08:55 AM"}

	views, err := svc.GetForDoctor(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	flags := make(map[string]bool, len(views[0].Slots))
	for _, slot := range views[0].Slots {
		flags[slot.Time] = slot.IsBooked
	}
	assert.False(t, flags["08:00-08:25 AM"])
	assert.True(t, flags["08:30-08:55 AM"])
	assert.False(t, flags["10:00-10:25 AM"])
}

func TestBookedTimesRequiresDoctorAndDay(t *testing.T) {
	svc, _, ledger := newTestService()
	ledger.booked["doc-1|Tuesday"] = []string{"08:00-08:25 AM"}

	_, err := svc.BookedTimes(context.Background(), "", "Tuesday")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	times, err := svc.BookedTimes(context.Background(), "doc-1", "Tuesday")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00-08:25 AM"}, times)
}
