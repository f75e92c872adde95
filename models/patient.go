package models

import "time"

// Patient represents a patient profile document, keyed by the Firebase Auth UID.
type Patient struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Age          string    `bson:"age" json:"age"`
	Gender       string    `bson:"gender" json:"gender"`
	BloodGroup   string    `bson:"bloodGroup" json:"bloodGroup"`
	Address      string    `bson:"address" json:"address"`
	Contact      string    `bson:"contact" json:"contact"`
	Role         string    `bson:"role" json:"role"` // always "patient"
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PatientProfileUpdate is the profile edit payload. Empty fields are left
// untouched. FCMToken lets the app register its push token so appointment
// reminders can reach the device.
type PatientProfileUpdate struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
	FCMToken   string `json:"fcmToken"`
}

// PatientRegistrationData is the patient signup payload.
type PatientRegistrationData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
}
