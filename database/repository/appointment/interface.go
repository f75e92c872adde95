// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"medhub/database"
	"medhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a write would claim a (doctorId, day, time)
// tuple already held by another appointment. Uniqueness is enforced by the
// storage layer, so two racing bookers cannot both win.
var ErrSlotTaken = errors.New("slot already booked")

// AppointmentRepository is the appointment ledger.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by record id, nil when absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByDoctor returns all appointments where the doctor is the provider.
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// ListByPatient returns all appointments for a patient.
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// BookedTimes returns the already-booked time labels for (doctorId, day).
	BookedTimes(ctx context.Context, doctorID, day string) ([]string, error)
	// UpsertWithKey writes the appointment under its deterministic composite
	// key. A retry with the identical key overwrites its own record; a
	// different booker racing for the same slot gets ErrSlotTaken.
	UpsertWithKey(ctx context.Context, appt *models.Appointment) error
	// Insert writes the appointment under a fresh auto-generated id.
	// Returns ErrSlotTaken when the slot is already held.
	Insert(ctx context.Context, appt *models.Appointment) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("medhub")
	repo := &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
