// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultHTTPAddress     = "localhost:8082"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLockTTL         = 10 * time.Second
	defaultLockRetries     = 5
	defaultLockRetryDelay  = 50 * time.Millisecond
	defaultAdapterTimeout  = 10 * time.Second
)

// applyDefaults fills settings that every deployment needs but rarely
// changes. Zero values are treated as "not configured".
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Lock.TTL == 0 {
		cfg.Lock.TTL = defaultLockTTL
	}
	if cfg.Lock.Retries == 0 {
		cfg.Lock.Retries = defaultLockRetries
	}
	if cfg.Lock.RetryDelay == 0 {
		cfg.Lock.RetryDelay = defaultLockRetryDelay
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The database DSN is
// checked when the connection is opened, so the client can share this
// config without one.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Lock.TTL < 0 || cfg.Lock.Retries < 0 || cfg.Lock.RetryDelay < 0 || cfg.Lock.RedisDB < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidLockConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
