package auth

import (
	"context"
	"time"

	"medhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// AuthenticatePatient verifies credentials and issues a session token.
func (s *DefaultAuthService) AuthenticatePatient(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("Please enter both email and password.")
	}
	if !utils.IsValidEmail(email) {
		return nil, NewAuthError(CodeInvalidEmail)
	}

	patient, err := s.Patients.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticatePatient: failed to fetch patient", zap.Error(err))
		return nil, NewAuthError(CodeNetworkFailure)
	}
	if patient == nil {
		return nil, NewAuthError(CodeInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(CodeInvalidCredential)
	}

	token, err := s.openSession(ctx, RolePatient, patient.ID, patient.Email, func(hash string) error {
		return s.Patients.UpdateSetDocument(patient.ID, bson.M{"tokenHash": hash})
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:    patient.ID,
		Token: token,
		Name:  patient.Name,
		Email: patient.Email,
		Role:  RolePatient,
	}, nil
}

// AuthenticateDoctor verifies credentials, the provider's email-verified flag,
// and the profile's role before issuing a session token.
func (s *DefaultAuthService) AuthenticateDoctor(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("Please enter both email and password.")
	}
	if !utils.IsValidEmail(email) {
		return nil, NewAuthError(CodeInvalidEmail)
	}

	doctor, err := s.Doctors.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateDoctor: failed to fetch doctor", zap.Error(err))
		return nil, NewAuthError(CodeNetworkFailure)
	}
	if doctor == nil {
		return nil, NewAuthError(CodeInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(CodeInvalidCredential)
	}

	record, err := utils.GetAuthClient().GetUser(ctx, doctor.ID)
	if err != nil {
		utils.GetLogger().Error("AuthenticateDoctor: provider lookup failed", zap.Error(err))
		return nil, NewAuthError(CodeNetworkFailure)
	}
	if !record.EmailVerified {
		return nil, NewAuthError(CodeEmailNotVerified)
	}
	if doctor.Role != RoleDoctor {
		return nil, NewAuthError(CodeNotDoctor)
	}

	token, err := s.openSession(ctx, RoleDoctor, doctor.ID, doctor.Email, func(hash string) error {
		return s.Doctors.UpdateSetDocument(doctor.ID, bson.M{"tokenHash": hash})
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:    doctor.ID,
		Token: token,
		Name:  doctor.Name,
		Email: doctor.Email,
		Role:  RoleDoctor,
	}, nil
}

// openSession mints a JWT, caches its hash for the middleware, and persists
// the hash on the profile as the cache fallback.
func (s *DefaultAuthService) openSession(ctx context.Context, role, id, email string, persistHash func(string) error) (string, error) {
	token, err := utils.GenerateToken(id, email, role, sessionTTL)
	if err != nil {
		utils.GetLogger().Error("openSession: failed to generate token", zap.Error(err))
		return "", NewAuthError(CodeNetworkFailure)
	}
	hash := utils.HashToken(token)

	cacheKey := utils.AuthCachePrefix + role + ":" + id
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, hash, sessionTTL).Err(); err != nil {
		utils.GetLogger().Warn("openSession: failed to cache token hash", zap.Error(err))
	}
	if err := persistHash(hash); err != nil {
		return "", err
	}
	return token, nil
}

// SignOut revokes the active session token for a subject.
func (s *DefaultAuthService) SignOut(ctx context.Context, role, id string) error {
	cacheKey := utils.AuthCachePrefix + role + ":" + id
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("SignOut: failed to clear token cache", zap.Error(err))
	}

	unset := bson.M{"tokenHash": ""}
	switch role {
	case RoleDoctor:
		return s.Doctors.UpdateSetDocument(id, unset)
	case RolePatient:
		return s.Patients.UpdateSetDocument(id, unset)
	}
	return nil
}
