package handlers

import (
	"net/http"

	"medhub/models"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// GetDoctorProfile returns the authenticated doctor's own profile.
func (h *HandlerBundle) GetDoctorProfile(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	doctor, err := h.Doctors.GetProfile(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	if doctor == nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found.", "")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// UpdateDoctorProfile applies editable fields on the doctor's own profile.
func (h *HandlerBundle) UpdateDoctorProfile(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var update models.DoctorProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doctor, err := h.Doctors.UpdateProfile(doctorID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// ListDoctors returns the doctor directory. A doctor caller is excluded from
// their own listing, which is what referral pickers need; patients can pass
// ?exclude= to drop a doctor they already saw.
func (h *HandlerBundle) ListDoctors(c *gin.Context) {
	excludeID := c.Query("exclude")
	if v, exists := c.Get("doctorID"); exists {
		if id, ok := v.(string); ok && id != "" {
			excludeID = id
		}
	}

	doctors, err := h.Doctors.Directory(excludeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorByID returns a doctor's public profile.
func (h *HandlerBundle) GetDoctorByID(c *gin.Context) {
	doctor, err := h.Doctors.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if doctor == nil {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found.", "")
		return
	}
	c.JSON(http.StatusOK, doctor)
}
