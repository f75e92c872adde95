package handlers

import (
	"net/http"

	"medhub/models"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// CreatePrescription records a prescription written by the authenticated doctor.
func (h *HandlerBundle) CreatePrescription(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var input models.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := h.Prescriptions.Create(doctorID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePrescription edits an entry the authenticated doctor prescribed.
func (h *HandlerBundle) UpdatePrescription(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var input models.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := h.Prescriptions.Update(doctorID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	if p == nil {
		utils.JSONError(c, http.StatusNotFound, "Prescription not found.", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePrescriptions removes the authenticated doctor's selected entries.
func (h *HandlerBundle) DeletePrescriptions(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	deleted, err := h.Prescriptions.Delete(doctorID, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListPatientPrescriptions returns the authenticated patient's medical record.
func (h *HandlerBundle) ListPatientPrescriptions(c *gin.Context) {
	patientID, ok := subjectID(c, "patientID")
	if !ok {
		return
	}

	prescriptions, err := h.Prescriptions.ListForPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}
