package handlers

import (
	"errors"
	"net/http"

	doctorRepoPkg "medhub/database/repository/doctor"
	patientRepoPkg "medhub/database/repository/patient"
	appointmentSvc "medhub/services/appointment"
	authSvc "medhub/services/auth"
	availabilitySvc "medhub/services/availability"
	doctorSvc "medhub/services/doctor"
	patientSvc "medhub/services/patient"
	prescriptionSvc "medhub/services/prescription"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers around their services.
type HandlerBundle struct {
	DoctorRepo  doctorRepoPkg.DoctorRepository
	PatientRepo patientRepoPkg.PatientRepository

	Auth          authSvc.AuthService
	Doctors       doctorSvc.DoctorService
	Patients      patientSvc.PatientService
	Availability  availabilitySvc.AvailabilityService
	Appointments  appointmentSvc.AppointmentService
	Prescriptions prescriptionSvc.PrescriptionService
}

// respondError maps service errors onto HTTP statuses: validation 400,
// credential problems 401, lost booking races 409, everything else 500.
func respondError(c *gin.Context, err error) {
	var authValidation *authSvc.ValidationError
	var apptValidation *appointmentSvc.ValidationError
	var availValidation *availabilitySvc.ValidationError
	var rxValidation *prescriptionSvc.ValidationError
	var authErr *authSvc.AuthError

	switch {
	case errors.As(err, &authValidation),
		errors.As(err, &apptValidation),
		errors.As(err, &availValidation),
		errors.As(err, &rxValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), authErr.Code)
	case errors.Is(err, appointmentSvc.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "This slot has just been booked. Please pick another.", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Try again.", "")
	}
}

// subjectID reads an auth middleware context key, aborting with 401 if unset.
func subjectID(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return "", false
	}
	return id, true
}
