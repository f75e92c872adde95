package auth

import (
	"context"
	"slices"

	"medhub/models"
	"medhub/utils"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// validatePatientRegistration runs every field check before any network call.
func validatePatientRegistration(data models.PatientRegistrationData) error {
	if data.Name == "" || data.Email == "" || data.Password == "" || data.Age == "" ||
		data.Gender == "" || data.BloodGroup == "" || data.Address == "" || data.Contact == "" {
		return NewValidationError("Please fill all fields")
	}
	if !utils.IsValidEmail(data.Email) {
		return NewValidationError("Please enter a valid email")
	}
	if !utils.IsValidAge(data.Age) {
		return NewValidationError("Please enter a valid age")
	}
	if !utils.IsValidContact(data.Contact) {
		return NewValidationError("Contact must be in format 03xx-xxxxxxx")
	}
	return nil
}

// validateDoctorRegistration runs every field check before any network call.
func validateDoctorRegistration(data models.DoctorRegistrationData) error {
	if data.Name == "" || data.Email == "" || data.Password == "" || data.Specialization == "" ||
		data.LicenseNumber == "" || data.Experience == "" || data.ContactNumber == "" {
		return NewValidationError("Please fill in all fields.")
	}
	if !utils.IsValidEmail(data.Email) {
		return NewValidationError("Please enter a valid email")
	}
	if !utils.IsValidLicense(data.LicenseNumber) {
		return NewValidationError("License number must be 5 to 7 digits.")
	}
	if !slices.Contains(models.Specializations, data.Specialization) {
		return NewValidationError("Please pick a specialization from the list.")
	}
	return nil
}

// RegisterPatient creates the identity-provider account, writes the profile
// document keyed by the provider UID, and returns an email-verification link.
func (s *DefaultAuthService) RegisterPatient(ctx context.Context, data models.PatientRegistrationData) (*models.Patient, string, error) {
	if err := validatePatientRegistration(data); err != nil {
		return nil, "", err
	}

	uid, link, err := s.createAccount(ctx, data.Email, data.Password)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	patient := &models.Patient{
		ID:           uid,
		Name:         data.Name,
		Email:        data.Email,
		Age:          data.Age,
		Gender:       data.Gender,
		BloodGroup:   data.BloodGroup,
		Address:      data.Address,
		Contact:      data.Contact,
		Role:         RolePatient,
		PasswordHash: string(hash),
	}
	if err := s.Patients.Create(patient); err != nil {
		s.rollbackAccount(ctx, uid)
		return nil, "", err
	}
	return patient, link, nil
}

// RegisterDoctor creates the identity-provider account, writes the profile
// document keyed by the provider UID, and returns an email-verification link.
// Login stays gated until the link is followed.
func (s *DefaultAuthService) RegisterDoctor(ctx context.Context, data models.DoctorRegistrationData) (*models.Doctor, string, error) {
	if err := validateDoctorRegistration(data); err != nil {
		return nil, "", err
	}

	uid, link, err := s.createAccount(ctx, data.Email, data.Password)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	doctor := &models.Doctor{
		ID:             uid,
		Name:           data.Name,
		Email:          data.Email,
		Specialization: data.Specialization,
		LicenseNumber:  data.LicenseNumber,
		Experience:     data.Experience,
		ContactNumber:  data.ContactNumber,
		Role:           RoleDoctor,
		PasswordHash:   string(hash),
	}
	if err := s.Doctors.Create(doctor); err != nil {
		s.rollbackAccount(ctx, uid)
		return nil, "", err
	}
	return doctor, link, nil
}

// createAccount provisions the Firebase user and issues a verification link.
func (s *DefaultAuthService) createAccount(ctx context.Context, email, password string) (string, string, error) {
	client := utils.GetAuthClient()

	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := client.CreateUser(ctx, params)
	if err != nil {
		utils.GetLogger().Error("createAccount: provider rejected user", zap.Error(err))
		return "", "", NewAuthError(CodeInvalidCredential)
	}

	link, err := client.EmailVerificationLink(ctx, email)
	if err != nil {
		// The account exists; verification can be re-requested later.
		utils.GetLogger().Warn("createAccount: failed to issue verification link", zap.Error(err))
		link = ""
	}
	return record.UID, link, nil
}

// rollbackAccount removes the provider account after a failed profile write.
func (s *DefaultAuthService) rollbackAccount(ctx context.Context, uid string) {
	if err := utils.GetAuthClient().DeleteUser(ctx, uid); err != nil {
		utils.GetLogger().Error("rollbackAccount: failed to delete provider user",
			zap.String("uid", uid), zap.Error(err))
	}
}
