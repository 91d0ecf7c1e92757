package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	patientIDParam = "patient_id"
	skipParam      = "skip"
	limitParam     = "limit"

	defaultSkip  = 0
	defaultLimit = 10
)

// pathInt64 parses the named chi URL parameter as a base-10 integer.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return v, nil
}

// queryInt returns the last value of the named query parameter, or def when
// the parameter is absent. A present but empty value is an error.
func queryInt(r *http.Request, name string, def int) (int, error) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return def, nil
	}

	raw := values[len(values)-1]
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return v, nil
}
