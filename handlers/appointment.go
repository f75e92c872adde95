package handlers

import (
	"net/http"

	"medhub/models"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// BookAppointment books a published slot for the authenticated patient.
// Retrying the same booking returns the same appointment.
func (h *HandlerBundle) BookAppointment(c *gin.Context) {
	patientID, ok := subjectID(c, "patientID")
	if !ok {
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Appointments.BookSlot(c.Request.Context(), patientID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ReferAppointment books a slot with another doctor on a patient's behalf,
// tagging the record with the referring doctor.
func (h *HandlerBundle) ReferAppointment(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var req models.ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Appointments.ReferSlot(c.Request.Context(), doctorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListDoctorAppointments returns the authenticated doctor's appointments.
func (h *HandlerBundle) ListDoctorAppointments(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	appts, err := h.Appointments.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	if appts == nil {
		appts = []models.DoctorAppointmentView{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListPatientAppointments returns the authenticated patient's appointments.
func (h *HandlerBundle) ListPatientAppointments(c *gin.Context) {
	patientID, ok := subjectID(c, "patientID")
	if !ok {
		return
	}

	appts, err := h.Appointments.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if appts == nil {
		appts = []models.PatientAppointmentView{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
