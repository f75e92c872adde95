package doctor

import (
	"testing"

	"medhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
	lastSet bson.M
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) { return nil, nil }

func (r *fakeDoctorRepo) GetAll(excludeID string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		if d.ID != excludeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Create(doctor *models.Doctor) error {
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.lastSet = updateDoc
	d := r.doctors[id]
	if v, ok := updateDoc["experience"].(string); ok {
		d.Experience = v
	}
	if v, ok := updateDoc["fcmToken"].(string); ok {
		d.FCMToken = v
	}
	r.doctors[id] = d
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) error { return nil }

func TestUpdateProfileOnlySetsProvidedFields(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: map[string]models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Sarah Khan", Experience: "8"},
	}}
	svc := &DefaultDoctorService{Repo: repo}

	updated, err := svc.UpdateProfile("doc-1", models.DoctorProfileUpdate{Experience: "9"})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"experience": "9"}, repo.lastSet)
	assert.Equal(t, "9", updated.Experience)
	assert.Equal(t, "Sarah Khan", updated.Name, "untouched fields survive")
}

func TestUpdateProfileRegistersPushToken(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: map[string]models.Doctor{
		"doc-1": {ID: "doc-1"},
	}}
	svc := &DefaultDoctorService{Repo: repo}

	_, err := svc.UpdateProfile("doc-1", models.DoctorProfileUpdate{FCMToken: "fcm-device-token"})
	require.NoError(t, err)
	assert.Equal(t, "fcm-device-token", repo.doctors["doc-1"].FCMToken)
}

func TestDirectoryStripsCredentialFields(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: map[string]models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Sarah Khan", PasswordHash: "hash", TokenHash: "th", FCMToken: "ft"},
		"doc-2": {ID: "doc-2", Name: "Ali Raza"},
	}}
	svc := &DefaultDoctorService{Repo: repo}

	doctors, err := svc.Directory("doc-2")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "doc-1", doctors[0].ID)
	assert.Empty(t, doctors[0].PasswordHash)
	assert.Empty(t, doctors[0].TokenHash)
	assert.Empty(t, doctors[0].FCMToken)
}
