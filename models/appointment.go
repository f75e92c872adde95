package models

import "time"

// Appointment is a single booked slot. Records are written once and never
// mutated; a retry with the same composite key overwrites its own record.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	PatientName     string    `bson:"patientName" json:"patientName"`
	DoctorID        string    `bson:"doctorId" json:"doctorId"`
	DoctorName      string    `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Day             string    `bson:"day" json:"day"`
	Date            string    `bson:"date,omitempty" json:"date,omitempty"`
	Time            string    `bson:"time" json:"time"`
	BookedAt        time.Time `bson:"bookedAt" json:"bookedAt"`
	Referred        bool      `bson:"referred,omitempty" json:"referred,omitempty"`
	ReferredBy      string    `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	DiscountApplied bool      `bson:"discountApplied,omitempty" json:"discountApplied,omitempty"`
}

// CompositeKey derives the deterministic record id used for direct patient
// bookings: patientId_doctorId_day_time.
func (a Appointment) CompositeKey() string {
	return a.PatientID + "_" + a.DoctorID + "_" + a.Day + "_" + a.Time
}

// BookingRequest is the direct patient booking payload.
type BookingRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Day      string `json:"day" binding:"required"`
	Date     string `json:"date"`
	Time     string `json:"time" binding:"required"`
}

// ReferralRequest is the payload for a doctor booking on behalf of a patient.
type ReferralRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"` // referral target
	Day       string `json:"day" binding:"required"`
	Date      string `json:"date"`
	Time      string `json:"time" binding:"required"`
}

// DoctorAppointmentView is an appointment enriched with the referring
// doctor's name; empty when the lookup fails or the booking was direct.
type DoctorAppointmentView struct {
	Appointment
	ReferredByName string `json:"referredByName,omitempty"`
}

// PatientAppointmentView is an appointment enriched with the provider's
// name and specialization for the patient's list.
type PatientAppointmentView struct {
	Appointment
	Specialization string `json:"specialization,omitempty"`
}
