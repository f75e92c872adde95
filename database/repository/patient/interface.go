package patientRepo

import (
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PatientRepository defines methods for patient profile access.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetByEmail retrieves a patient by its email address; returns nil when absent.
	GetByEmail(email string) (*models.Patient, error)
	// Create inserts a new patient record.
	Create(patient *models.Patient) error
	// UpdateSetDocument applies a $set update to a patient record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a patient record by its ID.
	Delete(id string) error
}
