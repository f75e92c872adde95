// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"fmt"

	"medhub/database"
	"medhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores per-doctor, per-date published slot sets.
type AvailabilityRepository interface {
	// Upsert creates or wholesale-replaces the day document for (doctorId, date).
	Upsert(day *models.AvailabilityDay) error
	// GetByDoctor returns every published day for a doctor.
	GetByDoctor(doctorID string) ([]models.AvailabilityDay, error)
	// GetByDoctorAndDay returns the published day matching a weekday name, nil when absent.
	GetByDoctorAndDay(doctorID, dayName string) (*models.AvailabilityDay, error)
	// DeleteByDoctorAndDate removes a single published day.
	DeleteByDoctorAndDate(doctorID, date string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("medhub")
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
