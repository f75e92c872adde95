package patient

import (
	"testing"

	"medhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakePatientRepo struct {
	patients map[string]models.Patient
	lastSet  bson.M
}

func (r *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) GetByEmail(email string) (*models.Patient, error) { return nil, nil }

func (r *fakePatientRepo) Create(patient *models.Patient) error {
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.lastSet = updateDoc
	p := r.patients[id]
	if v, ok := updateDoc["contact"].(string); ok {
		p.Contact = v
	}
	if v, ok := updateDoc["address"].(string); ok {
		p.Address = v
	}
	if v, ok := updateDoc["fcmToken"].(string); ok {
		p.FCMToken = v
	}
	r.patients[id] = p
	return nil
}

func (r *fakePatientRepo) Delete(id string) error { return nil }

func TestNormalizeContact(t *testing.T) {
	assert.Equal(t, "0300-1234567", NormalizeContact("03001234567"))
	assert.Equal(t, "0300-1234567", NormalizeContact("0300-1234567"))
	assert.Equal(t, "0300-1234567", NormalizeContact("(0300) 123 4567 ext 9"), "extra digits are dropped")
	assert.Equal(t, "0300", NormalizeContact("0300"))
	assert.Equal(t, "", NormalizeContact("abc"))
}

func TestUpdateProfileOnlySetsProvidedFields(t *testing.T) {
	repo := &fakePatientRepo{patients: map[string]models.Patient{
		"pat-1": {ID: "pat-1", Name: "Hamza Ahmed", Contact: "0300-1234567", Address: "Lahore"},
	}}
	svc := &DefaultPatientService{Repo: repo}

	updated, err := svc.UpdateProfile("pat-1", models.PatientProfileUpdate{Address: "Karachi"})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"address": "Karachi"}, repo.lastSet)
	assert.Equal(t, "Karachi", updated.Address)
	assert.Equal(t, "0300-1234567", updated.Contact, "untouched fields survive")
}

func TestUpdateProfileNormalizesContact(t *testing.T) {
	repo := &fakePatientRepo{patients: map[string]models.Patient{
		"pat-1": {ID: "pat-1"},
	}}
	svc := &DefaultPatientService{Repo: repo}

	updated, err := svc.UpdateProfile("pat-1", models.PatientProfileUpdate{Contact: "0311 765 4321"})
	require.NoError(t, err)
	assert.Equal(t, "0311-7654321", updated.Contact)
}

func TestUpdateProfileNoFieldsIsNoOp(t *testing.T) {
	repo := &fakePatientRepo{patients: map[string]models.Patient{
		"pat-1": {ID: "pat-1", Name: "Hamza Ahmed"},
	}}
	svc := &DefaultPatientService{Repo: repo}

	updated, err := svc.UpdateProfile("pat-1", models.PatientProfileUpdate{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastSet)
	assert.Equal(t, "Hamza Ahmed", updated.Name)
}

func TestUpdateProfileRegistersPushToken(t *testing.T) {
	repo := &fakePatientRepo{patients: map[string]models.Patient{
		"pat-1": {ID: "pat-1"},
	}}
	svc := &DefaultPatientService{Repo: repo}

	_, err := svc.UpdateProfile("pat-1", models.PatientProfileUpdate{FCMToken: "fcm-device-token"})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"fcmToken": "fcm-device-token"}, repo.lastSet)
	assert.Equal(t, "fcm-device-token", repo.patients["pat-1"].FCMToken,
		"the stored token is what reminder pushes are sent to")
}
