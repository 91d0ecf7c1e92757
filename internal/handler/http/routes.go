package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ecw-api/internal/openapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	patientsRoute = "/api/v1/patients"
	patientRoute  = patientsRoute + "/{" + patientIDParam + "}"
)

// route is one entry of the route table. Routes with a nil doc are served
// but left out of the OpenAPI document.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	doc     *openapi.Operation
}

func (h *Handler) routes() []route {
	patientID := openapi.PathParam(patientIDParam)

	return []route{
		{http.MethodGet, "/", h.welcome,
			operation(tagGeneral, "root", "Root endpoint - API welcome message", http.StatusOK, schemaWelcome)},
		{http.MethodGet, "/health", h.health,
			operation(tagGeneral, "health_check", "Health check endpoint - Returns API health status", http.StatusOK, schemaHealth)},
		{http.MethodGet, "/info", h.systemInfo,
			operation(tagGeneral, "system_info", "System information endpoint", http.StatusOK, schemaSystemInfo)},

		{http.MethodGet, patientsRoute, h.listPatients,
			withParams(operation(tagPatients, "get_patients", "Get list of patients with pagination", http.StatusOK, schemaPatientList),
				openapi.QueryParam(skipParam, defaultSkip), openapi.QueryParam(limitParam, defaultLimit))},
		{http.MethodGet, patientRoute, h.getPatient,
			withParams(operation(tagPatients, "get_patient", "Get a specific patient by ID", http.StatusOK, schemaPatient), patientID)},
		{http.MethodPost, patientsRoute, h.createPatient,
			withBody(operation(tagPatients, "create_patient", "Create a new patient record", http.StatusCreated, schemaPatientResult))},
		{http.MethodPut, patientRoute, h.updatePatient,
			withBody(withParams(operation(tagPatients, "update_patient", "Update an existing patient record", http.StatusOK, schemaPatientResult), patientID))},
		{http.MethodDelete, patientRoute, h.deletePatient,
			withParams(operation(tagPatients, "delete_patient", "Delete a patient record", http.StatusOK, schemaMessage), patientID)},
	}
}

// NewRouter returns a router carrying the request tracing, access logging
// and panic recovery middleware. HEAD requests fall back to GET routes.
func (h *Handler) NewRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		middleware.GetHead,
	)
	return router
}

// RegisterRoutes adds the API routes, the OpenAPI document and the docs
// page to router. The JWKS route is only added when its file exists now;
// creating the file later has no effect.
//
// Middleware must be attached to router before calling RegisterRoutes.
func (h *Handler) RegisterRoutes(router chi.Router) error {
	routes := h.routes()
	for _, rt := range routes {
		router.Method(rt.method, rt.pattern, rt.handler)
	}

	if h.jwksAvailable() {
		router.Get(jwksRoute, h.serveJWKS)
		h.logger.Info().Str("path", h.jwksPath).Msg("serving JWKS document")
	} else {
		h.logger.Debug().Str("path", h.jwksPath).Msg("JWKS document not found, route disabled")
	}

	doc, err := json.Marshal(h.newAPIDocument(routes))
	if err != nil {
		return fmt.Errorf("error marshaling OpenAPI document: %w", err)
	}
	page, err := renderDocsPage(h.app.Name, openAPIRoute)
	if err != nil {
		return err
	}

	router.Get(openAPIRoute, serveStatic("application/json", doc))
	router.Get(docsRoute, serveStatic("text/html; charset=utf-8", page))

	return nil
}
