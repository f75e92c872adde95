package appointment

import (
	"context"
	"slices"
	"time"

	"medhub/models"
)

// ReferSlot books a slot with the target doctor on behalf of a patient.
// The record carries referred=true, the referral discount flag, and the
// referring doctor's id. The same (doctorId, day, time) uniqueness guard as
// direct booking applies, so a double-submit cannot create two appointments
// for the same slot.
func (s *DefaultAppointmentService) ReferSlot(ctx context.Context, referringDoctorID string, req models.ReferralRequest) (*models.Appointment, error) {
	if referringDoctorID == "" || req.PatientID == "" || req.DoctorID == "" || req.Day == "" || req.Time == "" {
		return nil, NewValidationError("Patient, doctor, day and time are required.")
	}
	if req.DoctorID == referringDoctorID {
		return nil, NewValidationError("A doctor cannot refer a patient to themselves.")
	}

	day, err := s.Availability.GetByDoctorAndDay(req.DoctorID, req.Day)
	if err != nil {
		return nil, err
	}
	if day == nil || !slices.Contains(day.Slots, req.Time) {
		return nil, NewValidationError("The selected slot is not offered on that day.")
	}

	booked, err := s.Repo.BookedTimes(ctx, req.DoctorID, req.Day)
	if err != nil {
		return nil, err
	}
	if slices.Contains(booked, req.Time) {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		PatientID:       req.PatientID,
		PatientName:     s.resolvePatientName(req.PatientID),
		DoctorID:        req.DoctorID,
		Day:             req.Day,
		Date:            req.Date,
		Time:            req.Time,
		BookedAt:        time.Now(),
		Referred:        true,
		ReferredBy:      referringDoctorID,
		DiscountApplied: true,
	}
	if appt.Date == "" {
		appt.Date = day.Date
	}
	if doctor, err := s.Doctors.GetByID(req.DoctorID); err == nil && doctor != nil {
		appt.DoctorName = doctor.Name
	}

	if err := s.Repo.Insert(ctx, appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, *appt)
	return appt, nil
}
