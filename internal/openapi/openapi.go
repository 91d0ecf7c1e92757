// Package openapi holds the subset of OpenAPI 3.1 types needed to describe
// the HTTP surface, plus a small builder used when routes are registered.
package openapi

import (
	"net/http"
	"strconv"
)

// Version is the OpenAPI version written into every document.
const Version = "3.1.0"

// Document is a complete OpenAPI document.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Info describes the API.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem groups the operations available on one path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Patch  *Operation `json:"patch,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	Summary     string               `json:"summary,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	OperationID string               `json:"operationId,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required,omitempty"`
	Schema   *Schema `json:"schema"`
}

type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is a JSON Schema fragment.
type Schema struct {
	Ref                  string             `json:"$ref,omitempty"`
	Type                 string             `json:"type,omitempty"`
	Format               string             `json:"format,omitempty"`
	Default              any                `json:"default,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}

type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}

// New returns an empty document for the given API metadata.
func New(info Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]*PathItem),
	}
}

// AddOperation attaches op to path under method. Methods without a slot in
// [PathItem] are ignored and reported as false.
func (d *Document) AddOperation(method, path string, op *Operation) bool {
	item, ok := d.Paths[path]
	if !ok {
		item = &PathItem{}
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	default:
		return false
	}

	d.Paths[path] = item
	return true
}

// AddSchema registers a reusable schema under components/schemas.
func (d *Document) AddSchema(name string, schema *Schema) {
	if d.Components == nil {
		d.Components = &Components{Schemas: make(map[string]*Schema)}
	}
	d.Components.Schemas[name] = schema
}

// SchemaRef references a schema registered with [Document.AddSchema].
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// JSONResponse describes a JSON response whose body matches the named schema.
func JSONResponse(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef(schemaName)},
		},
	}
}

// JSONBody describes a required JSON request body matching the named schema.
func JSONBody(schemaName string) *RequestBody {
	return &RequestBody{
		Required: true,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef(schemaName)},
		},
	}
}

// Responses keys responses by status code.
func Responses(byStatus map[int]*Response) map[string]*Response {
	out := make(map[string]*Response, len(byStatus))
	for status, resp := range byStatus {
		out[strconv.Itoa(status)] = resp
	}
	return out
}

// PathParam is a required integer path parameter.
func PathParam(name string) *Parameter {
	return &Parameter{
		Name:     name,
		In:       "path",
		Required: true,
		Schema:   &Schema{Type: "integer"},
	}
}

// QueryParam is an optional integer query parameter with a default.
func QueryParam(name string, def int) *Parameter {
	return &Parameter{
		Name:   name,
		In:     "query",
		Schema: &Schema{Type: "integer", Default: def},
	}
}
