// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const maxPort = 65535

// validate checks that the final [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.GRPCPort < 0 || cfg.Server.GRPCPort > maxPort {
		return fmt.Errorf("%w: grpc port %d out of range", ErrInvalidServerConfigs, cfg.Server.GRPCPort)
	}

	if cfg.Server.GRPCPort == cfg.Server.Port {
		return fmt.Errorf("%w: http and grpc share port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.RateLimit.RPS < 0 || (cfg.RateLimit.Enabled() && cfg.RateLimit.Burst < 1) {
		return fmt.Errorf("%w: rps %g, burst %d", ErrInvalidRateLimitConfigs, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
