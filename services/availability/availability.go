package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"medhub/models"
	"medhub/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// validSlotLabels indexes the fixed slot enumeration for membership checks.
var validSlotLabels = func() map[string]struct{} {
	m := make(map[string]struct{}, len(models.SlotLabels))
	for _, l := range models.SlotLabels {
		m[l] = struct{}{}
	}
	return m
}()

// Publish derives the weekday name from the date and replaces the whole day
// document. No merge with prior publications: slots not reselected are gone.
func (s *DefaultAvailabilityService) Publish(ctx context.Context, doctorID string, req models.SetAvailabilityRequest) (*models.AvailabilityDay, error) {
	if doctorID == "" || req.Date == "" || len(req.Slots) == 0 {
		return nil, NewValidationError("Please select a date and at least one time slot.")
	}

	parsed, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, NewValidationError("Date must be in YYYY-MM-DD format.")
	}

	seen := make(map[string]struct{}, len(req.Slots))
	slots := make([]string, 0, len(req.Slots))
	for _, label := range req.Slots {
		if _, ok := validSlotLabels[label]; !ok {
			return nil, NewValidationError(fmt.Sprintf("Unknown time slot %q.", label))
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		slots = append(slots, label)
	}
	sort.Strings(slots)

	day := &models.AvailabilityDay{
		DoctorID: doctorID,
		Date:     parsed.Format(dateLayout),
		Day:      parsed.Weekday().String(),
		Slots:    slots,
	}
	if err := s.Repo.Upsert(day); err != nil {
		utils.GetLogger().Error("Publish: failed to save availability", zap.Error(err))
		return nil, fmt.Errorf("failed to save availability")
	}
	return day, nil
}

// GetForDoctor returns every published day, with each slot's booked flag
// computed by set-difference against the appointment ledger. The ledger is
// the single source of truth; nothing booked is stored on the day document.
func (s *DefaultAvailabilityService) GetForDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityDayView, error) {
	days, err := s.Repo.GetByDoctor(doctorID)
	if err != nil {
		return nil, err
	}

	views := make([]models.AvailabilityDayView, 0, len(days))
	for _, day := range days {
		booked, err := s.Appointments.BookedTimes(ctx, doctorID, day.Day)
		if err != nil {
			return nil, err
		}
		bookedSet := make(map[string]struct{}, len(booked))
		for _, t := range booked {
			bookedSet[t] = struct{}{}
		}

		slots := make([]models.AvailabilitySlot, 0, len(day.Slots))
		labels := append([]string(nil), day.Slots...)
		sort.Strings(labels)
		for _, label := range labels {
			_, isBooked := bookedSet[label]
			slots = append(slots, models.AvailabilitySlot{Time: label, IsBooked: isBooked})
		}

		views = append(views, models.AvailabilityDayView{
			DoctorID: day.DoctorID,
			Date:     day.Date,
			Day:      day.Day,
			Slots:    slots,
		})
	}
	return views, nil
}

// BookedTimes exposes the conflict-check set for a doctor/day.
func (s *DefaultAvailabilityService) BookedTimes(ctx context.Context, doctorID, day string) ([]string, error) {
	if doctorID == "" || day == "" {
		return nil, NewValidationError("Doctor and day are required.")
	}
	return s.Appointments.BookedTimes(ctx, doctorID, day)
}
