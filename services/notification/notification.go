package notification

import (
	"context"
	"fmt"

	doctorRepo "medhub/database/repository/doctor"
	patientRepo "medhub/database/repository/patient"
	"medhub/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendDoctorPushNotification(ctx context.Context, doctorID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Patients patientRepo.PatientRepository
	Doctors  doctorRepo.DoctorRepository
}

func NewDefaultNotificationService(
	patients patientRepo.PatientRepository,
	doctors doctorRepo.DoctorRepository,
) (*DefaultNotificationService, error) {
	if patients == nil || doctors == nil {
		return nil, fmt.Errorf("notification service initialization error: patient or doctor repository is nil")
	}
	return &DefaultNotificationService{
		Patients: patients,
		Doctors:  doctors,
	}, nil
}

// withRole fills in the role data key, tolerating a nil map from callers.
func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = make(map[string]string, 1)
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}

// SendPatientPushNotification looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPushNotification(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.Patients.GetByID(patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPushNotification: could not find patient %s: %w", patientID, err)
	}
	if p == nil || p.FCMToken == "" {
		return fmt.Errorf("SendPatientPushNotification: patient %s has no FCM token", patientID)
	}

	data = withRole(data, "patient")

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPatientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) SendDoctorPushNotification(
	ctx context.Context,
	doctorID, title, body string,
	data map[string]string,
) error {
	d, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPushNotification: could not find doctor %s: %w", doctorID, err)
	}
	if d == nil || d.FCMToken == "" {
		return fmt.Errorf("SendDoctorPushNotification: doctor %s has no FCM token", doctorID)
	}

	data = withRole(data, "doctor")

	msg := &messaging.Message{
		Token: d.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendDoctorPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
