package models

import "time"

// Doctor represents a doctor profile document, keyed by the Firebase Auth UID.
type Doctor struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Specialization string    `bson:"specialization" json:"specialization"`
	LicenseNumber  string    `bson:"licenseNumber" json:"licenseNumber"`
	Experience     string    `bson:"experience" json:"experience"` // years of practice, free-form
	ContactNumber  string    `bson:"contactNumber" json:"contactNumber"`
	Role           string    `bson:"role" json:"role"` // always "doctor"
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	TokenHash      string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken       string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicView strips credentials and session fields for directory listings.
func (d Doctor) PublicView() Doctor {
	d.PasswordHash = ""
	d.TokenHash = ""
	d.FCMToken = ""
	return d
}

// Specializations is the fixed list offered at doctor registration.
var Specializations = []string{
	"Cardiologist",
	"Dermatologist",
	"Neurologist",
	"Pediatrician",
	"Psychiatrist",
	"General Physician",
	"Orthopedic Surgeon",
	"ENT Specialist",
	"Gynecologist",
	"Radiologist",
	"Urologist",
	"Dentist",
}

// DoctorProfileUpdate is the profile edit payload. Empty fields are left
// untouched. FCMToken registers the device's push token.
type DoctorProfileUpdate struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	ContactNumber  string `json:"contactNumber"`
	FCMToken       string `json:"fcmToken"`
}

// DoctorRegistrationData is the doctor signup payload.
type DoctorRegistrationData struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Experience     string `json:"experience"`
	ContactNumber  string `json:"contactNumber"`
}
