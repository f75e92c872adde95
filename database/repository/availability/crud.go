// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *mongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "day", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert replaces the whole day document; republishing a date discards any
// slots not reselected.
func (r *mongoAvailabilityRepo) Upsert(day *models.AvailabilityDay) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	day.UpdatedAt = time.Now()
	filter := bson.M{"doctorId": day.DoctorID, "date": day.Date}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, day, opts); err != nil {
		return fmt.Errorf("failed to save availability for doctor %s on %s: %w", day.DoctorID, day.Date, err)
	}
	return nil
}

// GetByDoctor returns all published availability days for a doctor.
func (r *mongoAvailabilityRepo) GetByDoctor(doctorID string) ([]models.AvailabilityDay, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var days []models.AvailabilityDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding availability days: %w", err)
	}
	return days, nil
}

// GetByDoctorAndDay returns the day document whose weekday name matches.
// Two published dates can share a weekday, so the earliest date wins.
func (r *mongoAvailabilityRepo) GetByDoctorAndDay(doctorID, dayName string) (*models.AvailabilityDay, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: 1}})

	var day models.AvailabilityDay
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "day": dayName}, opts).Decode(&day)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability day: %w", err)
	}
	return &day, nil
}

// DeleteByDoctorAndDate removes one published day.
func (r *mongoAvailabilityRepo) DeleteByDoctorAndDate(doctorID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to delete availability for doctor %s on %s: %w", doctorID, date, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
