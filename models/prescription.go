package models

import "time"

// Prescription is a medicine entry recorded by a doctor against an appointment.
type Prescription struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	DoctorID      string    `bson:"doctorId" json:"doctorId"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	MedicineName  string    `bson:"medicineName" json:"medicineName"`
	Dosage        string    `bson:"dosage" json:"dosage"`
	TimesPerDay   string    `bson:"timesPerDay" json:"timesPerDay"`
	NumberOfDays  string    `bson:"numberOfDays" json:"numberOfDays"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PrescriptionInput is the create/update payload.
type PrescriptionInput struct {
	PatientID     string `json:"patientId"`
	AppointmentID string `json:"appointmentId"`
	MedicineName  string `json:"medicineName"`
	Dosage        string `json:"dosage"`
	TimesPerDay   string `json:"timesPerDay"`
	NumberOfDays  string `json:"numberOfDays"`
}
