package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
)

// createdPatientID is the id reported for every created record until ids
// come from storage.
const createdPatientID int64 = 123

type patientService struct {
	logger *logger.Logger
}

// NewPatientService returns a [PatientService] backed by sample data.
// Nothing is persisted.
func NewPatientService(logger *logger.Logger) PatientService {
	return &patientService{logger: logger}
}

var (
	sampleList = []models.Patient{
		{"id": int64(1), "name": "John Doe", "age": 30, "email": "john@example.com"},
		{"id": int64(2), "name": "Jane Smith", "age": 25, "email": "jane@example.com"},
	}

	// sampleDetail is the record returned for any id, minus the id itself.
	sampleDetail = models.Patient{
		"name":    "John Doe",
		"age":     30,
		"email":   "john@example.com",
		"phone":   "+1234567890",
		"address": "123 Main St, City, State",
	}
)

// samplePatients returns a fresh copy of the fixed sample list.
func samplePatients() []models.Patient {
	patients := make([]models.Patient, len(sampleList))
	for i, p := range sampleList {
		patients[i] = p.Clone()
	}
	return patients
}

// TODO: replace sample data with a repository query once patient storage exists.
func (s *patientService) List(ctx context.Context, skip, limit int) (models.PatientList, error) {
	patients := samplePatients()
	lo, hi := window(len(patients), skip, limit)

	return models.PatientList{
		Total:    len(patients),
		Skip:     skip,
		Limit:    limit,
		Patients: patients[lo:hi],
	}, nil
}

func (s *patientService) Get(ctx context.Context, patientID int64) (models.Patient, error) {
	patient := sampleDetail.Clone()
	patient["id"] = patientID
	return patient, nil
}

func (s *patientService) Create(ctx context.Context, data models.Patient) (models.PatientResult, error) {
	logger.FromContext(ctx).Debug().Int("fields", len(data)).Msg("patient create accepted, nothing persisted")

	return models.PatientResult{
		Message: "Patient created successfully",
		Patient: data.WithID(createdPatientID),
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID int64, data models.Patient) (models.PatientResult, error) {
	logger.FromContext(ctx).Debug().Int64("patient_id", patientID).Msg("patient update accepted, nothing persisted")

	return models.PatientResult{
		Message: fmt.Sprintf("Patient %d updated successfully", patientID),
		Patient: data.WithID(patientID),
	}, nil
}

func (s *patientService) Delete(ctx context.Context, patientID int64) (models.Message, error) {
	logger.FromContext(ctx).Debug().Int64("patient_id", patientID).Msg("patient delete accepted, nothing removed")

	return models.Message{
		Message: fmt.Sprintf("Patient %d deleted successfully", patientID),
	}, nil
}
