package appointment

import (
	"context"
	"fmt"

	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeAppointmentRepo keeps the ledger in memory and enforces the same
// (doctorId, day, time) uniqueness the storage index does.
type fakeAppointmentRepo struct {
	byID   map[string]models.Appointment
	nextID int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepo) slotHeldByOther(appt *models.Appointment) bool {
	for id, existing := range r.byID {
		if id == appt.ID {
			continue
		}
		if existing.DoctorID == appt.DoctorID && existing.Day == appt.Day && existing.Time == appt.Time {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if appt, ok := r.byID[id]; ok {
		return &appt, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.DoctorID == doctorID {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.PatientID == patientID {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) BookedTimes(ctx context.Context, doctorID, day string) ([]string, error) {
	var out []string
	for _, appt := range r.byID {
		if appt.DoctorID == doctorID && appt.Day == day {
			out = append(out, appt.Time)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpsertWithKey(ctx context.Context, appt *models.Appointment) error {
	appt.ID = appt.CompositeKey()
	if r.slotHeldByOther(appt) {
		return ErrSlotTaken
	}
	r.byID[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	r.nextID++
	appt.ID = fmt.Sprintf("generated-%d", r.nextID)
	if r.slotHeldByOther(appt) {
		return ErrSlotTaken
	}
	r.byID[appt.ID] = *appt
	return nil
}

// fakeAvailabilityRepo serves published days keyed by doctor and weekday name.
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
	for i, day := range r.days {
		if day.DoctorID == doctorID && day.Date == date {
			r.days = append(r.days[:i], r.days[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeDoctorRepo is an in-memory doctor directory.
type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			doc := d
			return &doc, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetAll(excludeID string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		if d.ID != excludeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Create(doctor *models.Doctor) error {
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeDoctorRepo) Delete(id string) error                              { return nil }

// fakePatientRepo is an in-memory patient directory.
type fakePatientRepo struct {
	patients map[string]models.Patient
}

func (r *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) GetByEmail(email string) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.Email == email {
			pat := p
			return &pat, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Create(patient *models.Patient) error {
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakePatientRepo) Delete(id string) error                              { return nil }

// fakeScheduler records reminder requests.
type fakeScheduler struct {
	scheduled []models.Appointment
}

func (s *fakeScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	s.scheduled = append(s.scheduled, appt)
	return nil
}

func newTestService() (*DefaultAppointmentService, *fakeAppointmentRepo, *fakeAvailabilityRepo, *fakeScheduler) {
	repo := newFakeAppointmentRepo()
	avail := &fakeAvailabilityRepo{}
	sched := &fakeScheduler{}
	svc := &DefaultAppointmentService{
		Repo:         repo,
		Availability: avail,
		Doctors: &fakeDoctorRepo{doctors: map[string]models.Doctor{
			"doc-1": {ID: "doc-1", Name: "Sarah Khan", Specialization: "Cardiologist"},
			"doc-2": {ID: "doc-2", Name: "Ali Raza", Specialization: "Dermatologist"},
		}},
		Patients: &fakePatientRepo{patients: map[string]models.Patient{
			"pat-1": {ID: "pat-1", Name: "Hamza Ahmed"},
		}},
		Reminders: sched,
	}
	return svc, repo, avail, sched
}

func publishDay(avail *fakeAvailabilityRepo, doctorID, date, dayName string, slots ...string) {
	avail.days = append(avail.days, models.AvailabilityDay{
		DoctorID: doctorID,
		Date:     date,
		Day:      dayName,
		Slots:    slots,
	})
}
