// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the ECW API HTTP surface.
//
// [APIClient] hides the transport from callers. The package ships an
// HTTP/REST implementation built on resty ([NewHTTPClient]). Non-2xx
// responses are mapped to the sentinel errors in errors.go, so callers can
// use [errors.Is] (e.g. [ErrUnprocessable] for 422, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/ecw-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient calls a running ECW API.
type APIClient interface {
	// Welcome fetches the root greeting.
	Welcome(ctx context.Context) (models.Welcome, error)

	// Health fetches the health status.
	Health(ctx context.Context) (models.Health, error)

	// Info fetches application and runtime details of the server.
	Info(ctx context.Context) (models.SystemInfo, error)

	// ListPatients fetches one page of patients.
	ListPatients(ctx context.Context, skip, limit int) (models.PatientList, error)

	// GetPatient fetches a single patient record.
	GetPatient(ctx context.Context, patientID int64) (models.Patient, error)

	// CreatePatient submits a new patient record. The server answers with
	// the stored record including its id.
	CreatePatient(ctx context.Context, data models.Patient) (models.PatientResult, error)

	// UpdatePatient replaces the fields of patientID with data.
	UpdatePatient(ctx context.Context, patientID int64, data models.Patient) (models.PatientResult, error)

	// DeletePatient removes patientID.
	DeletePatient(ctx context.Context, patientID int64) (models.Message, error)
}
