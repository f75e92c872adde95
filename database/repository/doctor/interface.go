package doctorRepo

import (
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorRepository defines methods for doctor directory access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by its email address; returns nil when absent.
	GetByEmail(email string) (*models.Doctor, error)
	// GetAll retrieves all doctors, optionally excluding one ID (referral pickers).
	GetAll(excludeID string) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// UpdateSetDocument applies a $set update to a doctor record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
