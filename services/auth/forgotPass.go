package auth

import (
	"context"

	"medhub/utils"

	"go.uber.org/zap"
)

// ResetPassword checks the role's own directory first, so a patient email
// cannot trigger a reset through the doctor flow, then issues a provider
// reset link.
func (s *DefaultAuthService) ResetPassword(ctx context.Context, role, email string) (string, error) {
	if email == "" {
		return "", NewValidationError("Please enter your email.")
	}
	if !utils.IsValidEmail(email) {
		return "", NewAuthError(CodeInvalidEmail)
	}

	switch role {
	case RoleDoctor:
		doctor, err := s.Doctors.GetByEmail(email)
		if err != nil {
			return "", err
		}
		if doctor == nil {
			return "", NewAuthError(CodeNoAccount)
		}
	case RolePatient:
		patient, err := s.Patients.GetByEmail(email)
		if err != nil {
			return "", err
		}
		if patient == nil {
			return "", NewAuthError(CodeNoAccount)
		}
	default:
		return "", NewValidationError("Unknown role.")
	}

	link, err := utils.GetAuthClient().PasswordResetLink(ctx, email)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to issue reset link", zap.Error(err))
		return "", NewAuthError(CodeNetworkFailure)
	}
	return link, nil
}
