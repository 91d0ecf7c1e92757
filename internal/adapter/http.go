package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	traceIDHeader = "X-Trace-ID"

	patientsPath = "/api/v1/patients"
	patientPath  = patientsPath + "/{patient_id}"
)

type httpClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPClient returns an [APIClient] talking to cfg.BaseURL. A base URL
// without a scheme is taken as http.
//
// Every request carries an X-Trace-ID header so client and server log
// entries can be correlated. JSON numbers in patient records are decoded as
// [json.Number] and so keep their exact text.
func NewHTTPClient(cfg config.ClientAdapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetJSONUnmarshaler(unmarshalUseNumber).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(traceIDHeader) == "" {
				r.SetHeader(traceIDHeader, uuid.NewString())
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Str("trace_id", resp.Header().Get(traceIDHeader)).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("API call")
			return nil
		})

	return &httpClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func unmarshalUseNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func (h *httpClient) Welcome(ctx context.Context) (models.Welcome, error) {
	var out models.Welcome
	if err := h.get(ctx, "/", &out); err != nil {
		return models.Welcome{}, err
	}
	return out, nil
}

func (h *httpClient) Health(ctx context.Context) (models.Health, error) {
	var out models.Health
	if err := h.get(ctx, "/health", &out); err != nil {
		return models.Health{}, err
	}
	return out, nil
}

func (h *httpClient) Info(ctx context.Context) (models.SystemInfo, error) {
	var out models.SystemInfo
	if err := h.get(ctx, "/info", &out); err != nil {
		return models.SystemInfo{}, err
	}
	return out, nil
}

func (h *httpClient) ListPatients(ctx context.Context, skip, limit int) (models.PatientList, error) {
	var out models.PatientList
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"skip":  strconv.Itoa(skip),
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&out).
		Get(patientsPath)
	if err != nil {
		return models.PatientList{}, fmt.Errorf("list patients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PatientList{}, err
	}
	return out, nil
}

func (h *httpClient) GetPatient(ctx context.Context, patientID int64) (models.Patient, error) {
	var out models.Patient
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("patient_id", strconv.FormatInt(patientID, 10)).
		SetResult(&out).
		Get(patientPath)
	if err != nil {
		return nil, fmt.Errorf("get patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *httpClient) CreatePatient(ctx context.Context, data models.Patient) (models.PatientResult, error) {
	var out models.PatientResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(nonNil(data)).
		SetResult(&out).
		Post(patientsPath)
	if err != nil {
		return models.PatientResult{}, fmt.Errorf("create patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PatientResult{}, err
	}
	return out, nil
}

func (h *httpClient) UpdatePatient(ctx context.Context, patientID int64, data models.Patient) (models.PatientResult, error) {
	var out models.PatientResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("patient_id", strconv.FormatInt(patientID, 10)).
		SetBody(nonNil(data)).
		SetResult(&out).
		Put(patientPath)
	if err != nil {
		return models.PatientResult{}, fmt.Errorf("update patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PatientResult{}, err
	}
	return out, nil
}

func (h *httpClient) DeletePatient(ctx context.Context, patientID int64) (models.Message, error) {
	var out models.Message
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("patient_id", strconv.FormatInt(patientID, 10)).
		SetResult(&out).
		Delete(patientPath)
	if err != nil {
		return models.Message{}, fmt.Errorf("delete patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}
	return out, nil
}

func (h *httpClient) get(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

// nonNil keeps a nil record from being sent as JSON null, which the API
// rejects.
func nonNil(data models.Patient) models.Patient {
	if data == nil {
		return models.Patient{}
	}
	return data
}
