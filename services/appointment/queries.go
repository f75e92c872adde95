package appointment

import (
	"context"

	"medhub/models"
	"medhub/utils"

	"go.uber.org/zap"
)

// ListForDoctor returns the doctor's appointments. For referred records the
// referring doctor's name is resolved from the directory; a failed lookup
// leaves the name empty rather than failing the listing.
func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]models.DoctorAppointmentView, error) {
	appts, err := s.Repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	views := make([]models.DoctorAppointmentView, 0, len(appts))
	for _, appt := range appts {
		view := models.DoctorAppointmentView{Appointment: appt}
		if appt.PatientName == "" {
			view.PatientName = "Unknown Patient"
		}
		if appt.ReferredBy != "" {
			name, ok := names[appt.ReferredBy]
			if !ok {
				if doctor, err := s.Doctors.GetByID(appt.ReferredBy); err == nil && doctor != nil {
					name = doctor.Name
				} else if err != nil {
					utils.GetLogger().Warn("failed to resolve referring doctor",
						zap.String("doctorId", appt.ReferredBy), zap.Error(err))
				}
				names[appt.ReferredBy] = name
			}
			view.ReferredByName = name
		}
		views = append(views, view)
	}
	return views, nil
}

// ListForPatient returns the patient's appointments with the provider's name
// and specialization joined in. Doctors are fetched once per distinct id, not
// once per row.
func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.PatientAppointmentView, error) {
	appts, err := s.Repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	doctors := make(map[string]*models.Doctor)
	for _, appt := range appts {
		if _, ok := doctors[appt.DoctorID]; ok {
			continue
		}
		doctor, err := s.Doctors.GetByID(appt.DoctorID)
		if err != nil {
			utils.GetLogger().Warn("failed to resolve doctor",
				zap.String("doctorId", appt.DoctorID), zap.Error(err))
		}
		doctors[appt.DoctorID] = doctor
	}

	views := make([]models.PatientAppointmentView, 0, len(appts))
	for _, appt := range appts {
		view := models.PatientAppointmentView{Appointment: appt}
		if doctor := doctors[appt.DoctorID]; doctor != nil {
			view.DoctorName = doctor.Name
			view.Specialization = doctor.Specialization
		} else if view.DoctorName == "" {
			view.DoctorName = "Unknown Doctor"
		}
		views = append(views, view)
	}
	return views, nil
}
