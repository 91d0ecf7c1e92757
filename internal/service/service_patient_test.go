package service

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatientService() PatientService {
	return NewPatientService(logger.Nop())
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestPatientService_List(t *testing.T) {
	tests := []struct {
		name    string
		skip    int
		limit   int
		wantIDs []int64
	}{
		{name: "defaults return both", skip: 0, limit: 10, wantIDs: []int64{1, 2}},
		{name: "first only", skip: 0, limit: 1, wantIDs: []int64{1}},
		{name: "second only", skip: 1, limit: 1, wantIDs: []int64{2}},
		{name: "skip past end", skip: 5, limit: 10, wantIDs: []int64{}},
		{name: "skip equals size", skip: 2, limit: 10, wantIDs: []int64{}},
		{name: "zero limit", skip: 0, limit: 0, wantIDs: []int64{}},
		{name: "negative skip counts from end", skip: -1, limit: 10, wantIDs: []int64{2}},
		{name: "negative limit trims from end", skip: 0, limit: -1, wantIDs: []int64{1}},
		{name: "very negative skip clamps", skip: -100, limit: 101, wantIDs: []int64{1}},
		{name: "huge limit saturates", skip: 1, limit: math.MaxInt, wantIDs: []int64{2}},
		{name: "huge negative limit", skip: math.MinInt, limit: math.MinInt, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestPatientService().List(context.Background(), tt.skip, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, 2, got.Total)
			assert.Equal(t, tt.skip, got.Skip)
			assert.Equal(t, tt.limit, got.Limit)
			require.NotNil(t, got.Patients)

			ids := make([]int64, 0, len(got.Patients))
			for _, p := range got.Patients {
				ids = append(ids, p["id"].(int64))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPatientService_List_FirstSampleRecord(t *testing.T) {
	got, err := newTestPatientService().List(context.Background(), 0, 1)
	require.NoError(t, err)

	require.Len(t, got.Patients, 1)
	assert.Equal(t, models.Patient{"id": int64(1), "name": "John Doe", "age": 30, "email": "john@example.com"}, got.Patients[0])
}

func TestPatientService_List_ReturnsFreshCopies(t *testing.T) {
	svc := newTestPatientService()

	first, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	first.Patients[0]["name"] = "Mutated"

	second, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", second.Patients[0]["name"])
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestPatientService_Get_EchoesAnyID(t *testing.T) {
	for _, id := range []int64{0, 1, 42, -7, math.MaxInt64, math.MinInt64} {
		got, err := newTestPatientService().Get(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, models.Patient{
			"id":      id,
			"name":    "John Doe",
			"age":     30,
			"email":   "john@example.com",
			"phone":   "+1234567890",
			"address": "123 Main St, City, State",
		}, got)
	}
}

func TestPatientService_Get_ReturnsFreshCopies(t *testing.T) {
	svc := newTestPatientService()

	first, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	first["name"] = "Mutated"

	second, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", second["name"])
	assert.Equal(t, int64(2), second["id"])
	assert.NotContains(t, sampleDetail, "id")
}

// ── Create / Update / Delete ─────────────────────────────────────────────────

func TestPatientService_Create(t *testing.T) {
	got, err := newTestPatientService().Create(context.Background(), models.Patient{"name": "X"})

	require.NoError(t, err)
	assert.Equal(t, "Patient created successfully", got.Message)
	assert.Equal(t, models.Patient{"id": int64(123), "name": "X"}, got.Patient)
}

func TestPatientService_Create_BodyIDOverridesSynthetic(t *testing.T) {
	got, err := newTestPatientService().Create(context.Background(), models.Patient{"id": "mine"})

	require.NoError(t, err)
	assert.Equal(t, models.Patient{"id": "mine"}, got.Patient)
}

func TestPatientService_Create_EmptyBody(t *testing.T) {
	got, err := newTestPatientService().Create(context.Background(), models.Patient{})

	require.NoError(t, err)
	assert.Equal(t, models.Patient{"id": int64(123)}, got.Patient)
}

func TestPatientService_Update(t *testing.T) {
	got, err := newTestPatientService().Update(context.Background(), 55, models.Patient{"age": 41})

	require.NoError(t, err)
	assert.Equal(t, "Patient 55 updated successfully", got.Message)
	assert.Equal(t, models.Patient{"id": int64(55), "age": 41}, got.Patient)
}

func TestPatientService_Delete(t *testing.T) {
	got, err := newTestPatientService().Delete(context.Background(), -3)

	require.NoError(t, err)
	assert.Equal(t, models.Message{Message: "Patient -3 deleted successfully"}, got)
}

// ── window ───────────────────────────────────────────────────────────────────

func TestWindow(t *testing.T) {
	tests := []struct {
		n, skip, limit int
		lo, hi         int
	}{
		{n: 0, skip: 0, limit: 10, lo: 0, hi: 0},
		{n: 5, skip: 1, limit: 2, lo: 1, hi: 3},
		{n: 5, skip: 4, limit: 10, lo: 4, hi: 5},
		{n: 5, skip: 3, limit: -1, lo: 3, hi: 4},
		{n: 5, skip: 3, limit: -3, lo: 3, hi: 3},
		{n: 5, skip: -2, limit: 1, lo: 3, hi: 4},
		{n: 5, skip: -2, limit: 2, lo: 3, hi: 3},
	}

	for _, tt := range tests {
		lo, hi := window(tt.n, tt.skip, tt.limit)
		assert.Equal(t, tt.lo, lo, "lo for n=%d skip=%d limit=%d", tt.n, tt.skip, tt.limit)
		assert.Equal(t, tt.hi, hi, "hi for n=%d skip=%d limit=%d", tt.n, tt.skip, tt.limit)
	}
}
