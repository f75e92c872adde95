package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"medhub/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the slot start the push fires.
const reminderLead = 30 * time.Minute

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// DefaultReminderScheduler enqueues appointment reminders on the asynq queue.
type DefaultReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleAppointmentReminder enqueues a push 30 minutes before the slot
// starts. Appointments without a concrete date, or whose fire time has
// already passed, are skipped without error.
func (s *DefaultReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	if appt.Date == "" {
		return nil
	}
	start, err := slotStartTime(appt.Date, appt.Time)
	if err != nil {
		return err
	}
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorName:    appt.DoctorName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task, opts...)
	return err
}

// slotStartTime combines a YYYY-MM-DD date with a slot label such as
// "08:00-08:25 AM" into the slot's start instant in local time.
func slotStartTime(date, slot string) (time.Time, error) {
	window, meridiem, ok := strings.Cut(slot, " ")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed slot label %q", slot)
	}
	start, _, ok := strings.Cut(window, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed slot label %q", slot)
	}
	return time.ParseInLocation("2006-01-02 03:04 PM", date+" "+start+" "+meridiem, time.Local)
}
