package http

import (
	"maps"
	"slices"

	"github.com/MKhiriev/ecw-api/internal/openapi"
)

const (
	tagGeneral  = "General"
	tagPatients = "Patients"
)

// Component schema names.
const (
	schemaWelcome       = "Welcome"
	schemaHealth        = "Health"
	schemaSystemInfo    = "SystemInfo"
	schemaPatient       = "Patient"
	schemaPatientList   = "PatientList"
	schemaPatientResult = "PatientResult"
	schemaMessage       = "Message"
)

// newAPIDocument builds the OpenAPI document for every documented route.
func (h *Handler) newAPIDocument(routes []route) *openapi.Document {
	doc := openapi.New(openapi.Info{
		Title:       h.app.Name,
		Description: h.app.Description,
		Version:     h.app.Version,
	})

	for name, schema := range componentSchemas() {
		doc.AddSchema(name, schema)
	}
	for _, rt := range routes {
		if rt.doc != nil {
			doc.AddOperation(rt.method, rt.pattern, rt.doc)
		}
	}

	return doc
}

func componentSchemas() map[string]*openapi.Schema {
	str := func() *openapi.Schema { return &openapi.Schema{Type: "string"} }
	integer := func() *openapi.Schema { return &openapi.Schema{Type: "integer"} }
	object := func(props map[string]*openapi.Schema) *openapi.Schema {
		return &openapi.Schema{
			Type:       "object",
			Properties: props,
			Required:   slices.Sorted(maps.Keys(props)),
		}
	}

	return map[string]*openapi.Schema{
		schemaWelcome: object(map[string]*openapi.Schema{
			"message": str(), "version": str(), "docs": str(), "health": str(),
		}),
		schemaHealth: object(map[string]*openapi.Schema{
			"status": str(), "version": str(), "service": str(),
		}),
		schemaSystemInfo: object(map[string]*openapi.Schema{
			"app_name": str(), "app_version": str(), "go_version": str(),
			"platform": str(), "host": str(), "port": integer(),
			"build_version": str(), "build_date": str(), "build_commit": str(),
		}),
		// Patient records are open mappings; nothing is validated.
		schemaPatient: {Type: "object", AdditionalProperties: true},
		schemaPatientList: object(map[string]*openapi.Schema{
			"total": integer(), "skip": integer(), "limit": integer(),
			"patients": {Type: "array", Items: openapi.SchemaRef(schemaPatient)},
		}),
		schemaPatientResult: object(map[string]*openapi.Schema{
			"message": str(), "patient": openapi.SchemaRef(schemaPatient),
		}),
		schemaMessage: object(map[string]*openapi.Schema{
			"message": str(),
		}),
	}
}

func operation(tag, id, summary string, ok int, schema string) *openapi.Operation {
	return &openapi.Operation{
		Summary:     summary,
		Tags:        []string{tag},
		OperationID: id,
		Responses: openapi.Responses(map[int]*openapi.Response{
			ok: openapi.JSONResponse("Successful Response", schema),
		}),
	}
}

// withCoercion adds the 422 answer given to values that are not integers or
// bodies that are not JSON objects.
func withCoercion(op *openapi.Operation) *openapi.Operation {
	op.Responses["422"] = &openapi.Response{Description: "Unprocessable Entity"}
	return op
}

func withParams(op *openapi.Operation, params ...*openapi.Parameter) *openapi.Operation {
	op.Parameters = append(op.Parameters, params...)
	return withCoercion(op)
}

func withBody(op *openapi.Operation) *openapi.Operation {
	op.RequestBody = openapi.JSONBody(schemaPatient)
	return withCoercion(op)
}
