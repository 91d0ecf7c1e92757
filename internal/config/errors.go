package config

import "errors"

var (
	// ErrOriginsNotJSONArray indicates ALLOWED_ORIGINS is not a JSON array of
	// strings.
	ErrOriginsNotJSONArray = errors.New("allowed origins must be a JSON array of strings")
	// ErrEmptyValue indicates a variable that is set but empty although its
	// field cannot hold an empty value (numbers, durations, origin lists).
	ErrEmptyValue = errors.New("value must not be empty")
	// ErrInvalidServerConfigs indicates invalid listener settings (for
	// example, a port outside 1..65535 or HTTP and gRPC on the same port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates a negative rate or a burst below
	// one while rate limiting is enabled.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
