package auth

import (
	"context"

	doctorRepo "medhub/database/repository/doctor"
	patientRepo "medhub/database/repository/patient"
	"medhub/models"
)

// Role names used in tokens and cache keys.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// AuthService fronts the identity provider and owns session tokens.
type AuthService interface {
	// Registration. The returned string is the email-verification link.
	RegisterPatient(ctx context.Context, data models.PatientRegistrationData) (*models.Patient, string, error)
	RegisterDoctor(ctx context.Context, data models.DoctorRegistrationData) (*models.Doctor, string, error)

	// Authentication.
	AuthenticatePatient(ctx context.Context, email, password string) (*AuthResponse, error)
	AuthenticateDoctor(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, role, id string) error

	// Password reset. The returned string is the reset link.
	ResetPassword(ctx context.Context, role, email string) (string, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
}

// AuthResponse contains the subject's ID, session token, and profile basics.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
