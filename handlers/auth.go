package handlers

import (
	"net/http"
	"strings"

	"medhub/models"
	authSvc "medhub/services/auth"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// PatientSignup registers a patient account and profile.
func (h *HandlerBundle) PatientSignup(c *gin.Context) {
	var data models.PatientRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	patient, verificationLink, err := h.Auth.RegisterPatient(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"patient":          patient,
		"verificationLink": verificationLink,
		"message":          "Account created. Please verify your email before logging in.",
	})
}

// DoctorSignup registers a doctor account and profile.
func (h *HandlerBundle) DoctorSignup(c *gin.Context) {
	var data models.DoctorRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doctor, verificationLink, err := h.Auth.RegisterDoctor(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"doctor":           doctor,
		"verificationLink": verificationLink,
		"message":          "Account created. Please verify your email before logging in.",
	})
}

// PatientLogin authenticates a patient and returns a session token.
func (h *HandlerBundle) PatientLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Auth.AuthenticatePatient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DoctorLogin authenticates a doctor and returns a session token.
func (h *HandlerBundle) DoctorLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Auth.AuthenticateDoctor(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PatientForgotPassword issues a reset link for a patient email.
func (h *HandlerBundle) PatientForgotPassword(c *gin.Context) {
	h.forgotPassword(c, authSvc.RolePatient)
}

// DoctorForgotPassword issues a reset link for a doctor email.
func (h *HandlerBundle) DoctorForgotPassword(c *gin.Context) {
	h.forgotPassword(c, authSvc.RoleDoctor)
}

func (h *HandlerBundle) forgotPassword(c *gin.Context, role string) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	link, err := h.Auth.ResetPassword(c.Request.Context(), role, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resetLink": link,
		"message":   "Password reset email sent. Check your inbox.",
	})
}

// Logout revokes the session carried in the Authorization header.
func (h *HandlerBundle) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	id, role, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	if err := h.Auth.SignOut(c.Request.Context(), role, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out."})
}
