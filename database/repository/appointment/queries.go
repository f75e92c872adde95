// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListByDoctor returns all appointments where doctorId matches.
func (r *mongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"doctorId": doctorID})
}

// ListByPatient returns all appointments where patientId matches.
func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// BookedTimes returns the distinct booked time labels for (doctorId, day).
func (r *mongoAppointmentRepo) BookedTimes(ctx context.Context, doctorID, day string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "time", bson.M{"doctorId": doctorID, "day": day})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked times for doctor %s on %s: %w", doctorID, day, err)
	}

	times := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			times = append(times, s)
		}
	}
	return times, nil
}
