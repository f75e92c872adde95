package availability

import (
	"context"

	appointmentRepo "medhub/database/repository/appointment"
	availabilityRepo "medhub/database/repository/availability"
	"medhub/models"
)

// AvailabilityService manages a doctor's published slot sets.
type AvailabilityService interface {
	// Publish validates and create-or-replaces the slot set for one date.
	Publish(ctx context.Context, doctorID string, req models.SetAvailabilityRequest) (*models.AvailabilityDay, error)
	// GetForDoctor returns all published days with live booked state.
	GetForDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityDayView, error)
	// BookedTimes returns the already-booked labels for (doctorId, day).
	BookedTimes(ctx context.Context, doctorID, day string) ([]string, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo         availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
}
