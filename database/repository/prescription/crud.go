// File: database/repository/prescription/crud.go
package prescriptionRepo

import (
	"context"
	"fmt"
	"time"

	"medhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *mongoPrescriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new prescription document.
func (r *mongoPrescriptionRepo) Create(p *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

// GetByID retrieves a prescription by id.
func (r *mongoPrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Prescription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch prescription %s: %w", id, err)
	}
	return &p, nil
}

// ListByPatient returns all prescriptions for a patient.
func (r *mongoPrescriptionRepo) ListByPatient(patientID string) ([]models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prescriptions for patient %s: %w", patientID, err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, fmt.Errorf("error decoding prescriptions: %w", err)
	}
	return prescriptions, nil
}

// UpdateSetDocument applies a $set update scoped to the prescribing doctor.
func (r *mongoPrescriptionRepo) UpdateSetDocument(id, doctorID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "doctorId": doctorID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update prescription %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("prescription %s not found", id)
	}
	return nil
}

// DeleteMany removes prescriptions by id scoped to the prescribing doctor.
func (r *mongoPrescriptionRepo) DeleteMany(ids []string, doctorID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}, "doctorId": doctorID}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete prescriptions: %w", err)
	}
	return result.DeletedCount, nil
}
