package patient

import (
	"strings"

	patientRepo "medhub/database/repository/patient"
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PatientService manages patient profiles.
type PatientService interface {
	// GetProfile returns the patient's own profile, nil when absent.
	GetProfile(patientID string) (*models.Patient, error)
	// UpdateProfile applies the editable profile fields.
	UpdateProfile(patientID string, update models.PatientProfileUpdate) (*models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) GetProfile(patientID string) (*models.Patient, error) {
	return s.Repo.GetByID(patientID)
}

func (s *DefaultPatientService) UpdateProfile(patientID string, update models.PatientProfileUpdate) (*models.Patient, error) {
	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Age != "" {
		set["age"] = update.Age
	}
	if update.Gender != "" {
		set["gender"] = update.Gender
	}
	if update.BloodGroup != "" {
		set["bloodGroup"] = update.BloodGroup
	}
	if update.Address != "" {
		set["address"] = update.Address
	}
	if update.Contact != "" {
		set["contact"] = NormalizeContact(update.Contact)
	}
	if update.FCMToken != "" {
		set["fcmToken"] = update.FCMToken
	}
	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(patientID, set); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(patientID)
}

// NormalizeContact strips non-digits, caps at 11 digits, and re-inserts the
// dash after the 03xx prefix.
func NormalizeContact(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 11 {
			break
		}
	}
	s := digits.String()
	if len(s) <= 4 {
		return s
	}
	return s[:4] + "-" + s[4:]
}
