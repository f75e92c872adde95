package appointment

import (
	"context"
	"slices"
	"time"

	"medhub/models"
	"medhub/utils"

	"go.uber.org/zap"
)

// BookSlot validates the slot against the doctor's published day and the live
// booked-set, then writes the appointment under its composite key. The
// pre-check rejects known conflicts cheaply; the unique index behind
// UpsertWithKey settles races, so a losing concurrent booker still gets
// ErrSlotTaken instead of silently overwriting the winner.
func (s *DefaultAppointmentService) BookSlot(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	if patientID == "" || req.DoctorID == "" || req.Day == "" || req.Time == "" {
		return nil, NewValidationError("Doctor, day and time are required.")
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
		PatientID:   patientID,
		PatientName: s.resolvePatientName(patientID),
		DoctorID:    req.DoctorID,
		Day:         req.Day,
		Date:        req.Date,
		Time:        req.Time,
		BookedAt:    time.Now(),
	}
	if appt.Date == "" {
		appt.Date = day.Date
	}
	if doctor, err := s.Doctors.GetByID(req.DoctorID); err == nil && doctor != nil {
		appt.DoctorName = doctor.Name
	}

	if err := s.Repo.UpsertWithKey(ctx, appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, *appt)
	return appt, nil
}

// resolvePatientName mirrors the booking flow's tolerant directory lookup.
func (s *DefaultAppointmentService) resolvePatientName(patientID string) string {
	patient, err := s.Patients.GetByID(patientID)
	if err != nil || patient == nil {
		return "Unknown"
	}
	if patient.Name == "" {
		return "Unknown"
	}
	return patient.Name
}

func (s *DefaultAppointmentService) scheduleReminder(ctx context.Context, appt models.Appointment) {
	if s.Reminders == nil || appt.Date == "" {
		return
	}
	if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to schedule appointment reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
