// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/ecw-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports static service metadata.
type AppInfoService interface {
	// Welcome returns the root greeting with links to the docs and health
	// endpoints.
	Welcome(ctx context.Context) models.Welcome
	// Health always reports "healthy" while the process serves requests.
	Health(ctx context.Context) models.Health
	// SystemInfo returns app metadata plus runtime details read at call time.
	SystemInfo(ctx context.Context) models.SystemInfo
}

// PatientService manages patient records.
//
// The current implementation serves hard-coded sample data; every method
// returns an error so a persistent implementation can drop in unchanged.
type PatientService interface {
	List(ctx context.Context, skip, limit int) (models.PatientList, error)
	Get(ctx context.Context, patientID int64) (models.Patient, error)
	Create(ctx context.Context, data models.Patient) (models.PatientResult, error)
	Update(ctx context.Context, patientID int64, data models.Patient) (models.PatientResult, error)
	Delete(ctx context.Context, patientID int64) (models.Message, error)
}
