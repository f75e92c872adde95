package prescription

import (
	prescriptionRepo "medhub/database/repository/prescription"
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PrescriptionService records and serves prescription entries.
type PrescriptionService interface {
	// Create records a prescription written by the doctor.
	Create(doctorID string, input models.PrescriptionInput) (*models.Prescription, error)
	// Update edits an entry; only the prescribing doctor may edit.
	Update(doctorID, prescriptionID string, input models.PrescriptionInput) (*models.Prescription, error)
	// Delete removes entries; only the prescribing doctor's own entries match.
	Delete(doctorID string, prescriptionIDs []string) (int64, error)
	// ListForPatient returns the patient's medical-record view.
	ListForPatient(patientID string) ([]models.Prescription, error)
}

// ValidationError rejects a prescription write before any storage call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DefaultPrescriptionService is the production implementation.
type DefaultPrescriptionService struct {
	Repo prescriptionRepo.PrescriptionRepository
}

func validateInput(input models.PrescriptionInput) error {
	if input.MedicineName == "" || input.Dosage == "" || input.TimesPerDay == "" || input.NumberOfDays == "" {
		return &ValidationError{Message: "Medicine name, dosage, times per day and number of days are required."}
	}
	return nil
}

func (s *DefaultPrescriptionService) Create(doctorID string, input models.PrescriptionInput) (*models.Prescription, error) {
	if input.PatientID == "" || input.AppointmentID == "" {
		return nil, &ValidationError{Message: "Patient and appointment are required."}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &models.Prescription{
		PatientID:     input.PatientID,
		DoctorID:      doctorID,
		AppointmentID: input.AppointmentID,
		MedicineName:  input.MedicineName,
		Dosage:        input.Dosage,
		TimesPerDay:   input.TimesPerDay,
		NumberOfDays:  input.NumberOfDays,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPrescriptionService) Update(doctorID, prescriptionID string, input models.PrescriptionInput) (*models.Prescription, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	set := bson.M{
		"medicineName": input.MedicineName,
		"dosage":       input.Dosage,
		"timesPerDay":  input.TimesPerDay,
		"numberOfDays": input.NumberOfDays,
	}
	if err := s.Repo.UpdateSetDocument(prescriptionID, doctorID, set); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(prescriptionID)
}

func (s *DefaultPrescriptionService) Delete(doctorID string, prescriptionIDs []string) (int64, error) {
	if len(prescriptionIDs) == 0 {
		return 0, &ValidationError{Message: "No prescriptions selected."}
	}
	return s.Repo.DeleteMany(prescriptionIDs, doctorID)
}

func (s *DefaultPrescriptionService) ListForPatient(patientID string) ([]models.Prescription, error) {
	return s.Repo.ListByPatient(patientID)
}
