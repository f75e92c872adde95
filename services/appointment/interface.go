package appointment

import (
	"context"

	appointmentRepo "medhub/database/repository/appointment"
	availabilityRepo "medhub/database/repository/availability"
	doctorRepo "medhub/database/repository/doctor"
	patientRepo "medhub/database/repository/patient"
	"medhub/models"
)

// AppointmentService owns the booking and referral workflows.
type AppointmentService interface {
	// BookSlot books a published slot for the authenticated patient using the
	// deterministic composite key (idempotent on exact retry).
	BookSlot(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error)
	// ReferSlot books a slot with another doctor on behalf of a patient,
	// tagging the record with the referring doctor.
	ReferSlot(ctx context.Context, referringDoctorID string, req models.ReferralRequest) (*models.Appointment, error)
	// ListForDoctor returns the doctor's appointments with referrer names resolved.
	ListForDoctor(ctx context.Context, doctorID string) ([]models.DoctorAppointmentView, error)
	// ListForPatient returns the patient's appointments with provider details resolved.
	ListForPatient(ctx context.Context, patientID string) ([]models.PatientAppointmentView, error)
}

// ReminderScheduler enqueues a pre-appointment push reminder. Scheduling
// failures never fail a booking.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Availability availabilityRepo.AvailabilityRepository
	Doctors      doctorRepo.DoctorRepository
	Patients     patientRepo.PatientRepository
	Reminders    ReminderScheduler // optional
}
