package doctor

import (
	doctorRepo "medhub/database/repository/doctor"
	"medhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorService manages doctor profiles and the directory.
type DoctorService interface {
	// GetProfile returns the doctor's own profile, nil when absent.
	GetProfile(doctorID string) (*models.Doctor, error)
	// UpdateProfile applies the editable profile fields.
	UpdateProfile(doctorID string, update models.DoctorProfileUpdate) (*models.Doctor, error)
	// Directory lists doctors, optionally excluding one id (referral pickers).
	Directory(excludeID string) ([]models.Doctor, error)
	// GetByID returns a doctor's public profile for patients.
	GetByID(doctorID string) (*models.Doctor, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) GetProfile(doctorID string) (*models.Doctor, error) {
	return s.Repo.GetByID(doctorID)
}

func (s *DefaultDoctorService) UpdateProfile(doctorID string, update models.DoctorProfileUpdate) (*models.Doctor, error) {
	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Specialization != "" {
		set["specialization"] = update.Specialization
	}
	if update.Experience != "" {
		set["experience"] = update.Experience
	}
	if update.ContactNumber != "" {
		set["contactNumber"] = update.ContactNumber
	}
	if update.FCMToken != "" {
		set["fcmToken"] = update.FCMToken
	}
	if len(set) > 0 {
		if err := s.Repo.UpdateSetDocument(doctorID, set); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(doctorID)
}

func (s *DefaultDoctorService) Directory(excludeID string) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(excludeID)
	if err != nil {
		return nil, err
	}
	public := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		public = append(public, d.PublicView())
	}
	return public, nil
}

func (s *DefaultDoctorService) GetByID(doctorID string) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(doctorID)
	if err != nil || doctor == nil {
		return doctor, err
	}
	view := doctor.PublicView()
	return &view, nil
}
