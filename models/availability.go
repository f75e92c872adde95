package models

import "time"

// AvailabilityDay is a doctor's published slot set for one calendar date.
// Publishing the same date again replaces the whole document; booked state is
// never stored here, it is derived from the appointment ledger on read.
type AvailabilityDay struct {
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Day       string    `bson:"day" json:"day"`   // weekday name derived from Date
	Slots     []string  `bson:"slots" json:"slots"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AvailabilitySlot is the per-slot view returned to clients, with the booked
// flag computed against the appointment ledger.
type AvailabilitySlot struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`
}

// AvailabilityDayView is an AvailabilityDay joined with live booked state.
type AvailabilityDayView struct {
	DoctorID string             `json:"doctorId"`
	Date     string             `json:"date"`
	Day      string             `json:"day"`
	Slots    []AvailabilitySlot `json:"slots"`
}

// SetAvailabilityRequest is the publish payload.
type SetAvailabilityRequest struct {
	Date  string   `json:"date" binding:"required"`
	Slots []string `json:"slots" binding:"required"`
}

// SlotLabels is the fixed enumeration of half-hour bookable windows a doctor
// can toggle when publishing availability.
var SlotLabels = []string{
	"08:00-08:25 AM",
	"08:30-08:55 AM",
	"09:00-09:25 AM",
	"09:30-09:55 AM",
	"10:00-10:25 AM",
	"10:30-10:55 AM",
	"11:00-11:25 AM",
	"11:30-11:55 AM",
	"12:00-12:25 PM",
	"12:30-12:55 PM",
}
