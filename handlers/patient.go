package handlers

import (
	"net/http"

	"medhub/models"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// GetPatientProfile returns the authenticated patient's own profile.
func (h *HandlerBundle) GetPatientProfile(c *gin.Context) {
	patientID, ok := subjectID(c, "patientID")
	if !ok {
		return
	}

	patient, err := h.Patients.GetProfile(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if patient == nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found.", "")
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatientProfile applies editable fields on the patient's own profile.
func (h *HandlerBundle) UpdatePatientProfile(c *gin.Context) {
	patientID, ok := subjectID(c, "patientID")
	if !ok {
		return
	}

	var update models.PatientProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	patient, err := h.Patients.UpdateProfile(patientID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}
