package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// AnyOrigin is the wildcard entry that allows every origin.
const AnyOrigin = "*"

// Origins is a list of CORS origins decoded from a JSON array of strings,
// e.g. ["http://localhost:3000","https://example.com"].
type Origins []string

// UnmarshalText implements [encoding.TextUnmarshaler]. Anything other than a
// JSON array of strings is rejected.
func (o *Origins) UnmarshalText(text []byte) error {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: %q", ErrOriginsNotJSONArray, text)
	}

	var origins []string
	if err := json.Unmarshal(trimmed, &origins); err != nil {
		return fmt.Errorf("%w: %w", ErrOriginsNotJSONArray, err)
	}

	*o = origins
	return nil
}

// AllowsAny reports whether the wildcard origin is present.
func (o Origins) AllowsAny() bool {
	return slices.Contains(o, AnyOrigin)
}

// Allows reports whether origin may make cross-origin requests.
func (o Origins) Allows(origin string) bool {
	return o.AllowsAny() || slices.Contains(o, origin)
}
