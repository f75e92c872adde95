// File: database/repository/prescription/interface.go
package prescriptionRepo

import (
	"fmt"

	"medhub/database"
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrescriptionRepository stores prescription records.
type PrescriptionRepository interface {
	// Create inserts a new prescription record.
	Create(p *models.Prescription) error
	// GetByID retrieves a prescription by id, nil when absent.
	GetByID(id string) (*models.Prescription, error)
	// ListByPatient returns all prescriptions for a patient.
	ListByPatient(patientID string) ([]models.Prescription, error)
	// UpdateSetDocument applies a $set update, scoped to the prescribing doctor.
	UpdateSetDocument(id, doctorID string, updateDoc bson.M) error
	// DeleteMany removes prescriptions by id, scoped to the prescribing doctor.
	DeleteMany(ids []string, doctorID string) (int64, error)
}

type mongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo constructs a new MongoDB PrescriptionRepository.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	db := database.MongoClient.Database("medhub")
	repo := &mongoPrescriptionRepo{
		coll: db.Collection("prescriptions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
