package handlers

import (
	"net/http"

	"medhub/models"
	"medhub/utils"

	"github.com/gin-gonic/gin"
)

// SetAvailability publishes the authenticated doctor's slots for one date,
// replacing whatever was published for that date before.
func (h *HandlerBundle) SetAvailability(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	day, err := h.Availability.Publish(c.Request.Context(), doctorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetOwnAvailability returns the authenticated doctor's published days with
// booked flags computed against the appointment ledger.
func (h *HandlerBundle) GetOwnAvailability(c *gin.Context) {
	doctorID, ok := subjectID(c, "doctorID")
	if !ok {
		return
	}
	h.availabilityFor(c, doctorID)
}

// GetDoctorAvailability returns a doctor's published days for patients.
func (h *HandlerBundle) GetDoctorAvailability(c *gin.Context) {
	h.availabilityFor(c, c.Param("id"))
}

func (h *HandlerBundle) availabilityFor(c *gin.Context, doctorID string) {
	days, err := h.Availability.GetForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": days})
}

// GetBookedSlots returns the taken times for a doctor on a weekday, the set
// clients grey out before booking.
func (h *HandlerBundle) GetBookedSlots(c *gin.Context) {
	doctorID := c.Param("id")
	day := c.Query("day")

	times, err := h.Availability.BookedTimes(c.Request.Context(), doctorID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	if times == nil {
		times = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"bookedSlots": times})
}
