package prescription

import (
	"errors"
	"fmt"
	"testing"

	"medhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakePrescriptionRepo struct {
	byID    map[string]models.Prescription
	nextID  int
	lastSet bson.M
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{byID: make(map[string]models.Prescription)}
}

func (r *fakePrescriptionRepo) Create(p *models.Prescription) error {
	r.nextID++
	p.ID = fmt.Sprintf("rx-%d", r.nextID)
	r.byID[p.ID] = *p
	return nil
}

func (r *fakePrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	if p, ok := r.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePrescriptionRepo) ListByPatient(patientID string) ([]models.Prescription, error) {
	var out []models.Prescription
	for _, p := range r.byID {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePrescriptionRepo) UpdateSetDocument(id, doctorID string, updateDoc bson.M) error {
	p, ok := r.byID[id]
	if !ok || p.DoctorID != doctorID {
		return errors.New("prescription not found")
	}
	r.lastSet = updateDoc
	if v, ok := updateDoc["dosage"].(string); ok {
		p.Dosage = v
	}
	if v, ok := updateDoc["medicineName"].(string); ok {
		p.MedicineName = v
	}
	r.byID[id] = p
	return nil
}

func (r *fakePrescriptionRepo) DeleteMany(ids []string, doctorID string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if p, ok := r.byID[id]; ok && p.DoctorID == doctorID {
			delete(r.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func validInput() models.PrescriptionInput {
	return models.PrescriptionInput{
		PatientID:     "pat-1",
		AppointmentID: "appt-1",
		MedicineName:  "Panadol",
		Dosage:        "500mg",
		TimesPerDay:   "3",
		NumberOfDays:  "5",
	}
}

func TestCreateRejectsIncompleteInput(t *testing.T) {
	svc := &DefaultPrescriptionService{Repo: newFakePrescriptionRepo()}

	input := validInput()
	input.Dosage = ""
	_, err := svc.Create("doc-1", input)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)

	input = validInput()
	input.AppointmentID = ""
	_, err = svc.Create("doc-1", input)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestCreateStampsPrescribingDoctor(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := &DefaultPrescriptionService{Repo: repo}

	p, err := svc.Create("doc-1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "doc-1", p.DoctorID)
	assert.Equal(t, "pat-1", p.PatientID)
	assert.Len(t, repo.byID, 1)
}

func TestUpdateScopedToPrescriber(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := &DefaultPrescriptionService{Repo: repo}

	created, err := svc.Create("doc-1", validInput())
	require.NoError(t, err)

	input := validInput()
	input.Dosage = "250mg"

	// Another doctor's update does not touch the record.
	_, err = svc.Update("doc-2", created.ID, input)
	require.Error(t, err)
	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, "500mg", stored.Dosage)

	updated, err := svc.Update("doc-1", created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "250mg", updated.Dosage)
}

func TestDeleteScopedToPrescriber(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := &DefaultPrescriptionService{Repo: repo}

	mine, err := svc.Create("doc-1", validInput())
	require.NoError(t, err)
	other, err := svc.Create("doc-2", validInput())
	require.NoError(t, err)

	deleted, err := svc.Delete("doc-1", []string{mine.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Len(t, repo.byID, 1)

	_, err = svc.Delete("doc-1", nil)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestListForPatient(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := &DefaultPrescriptionService{Repo: repo}

	_, err := svc.Create("doc-1", validInput())
	require.NoError(t, err)
	otherPatient := validInput()
	otherPatient.PatientID = "pat-2"
	_, err = svc.Create("doc-1", otherPatient)
	require.NoError(t, err)

	list, err := svc.ListForPatient("pat-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
