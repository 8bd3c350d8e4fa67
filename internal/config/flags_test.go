package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8082},
			expected: "localhost:8082",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8082},
			expected: ":8082",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMessage string
		expectedHost string
		expectedPort int
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8082",
			expectedHost: "localhost",
			expectedPort: 8082,
		},
		{
			name:         "valid IPv4",
			input:        "192.168.1.1:443",
			expectedHost: "192.168.1.1",
			expectedPort: 443,
		},
		{
			name:         "empty host binds all interfaces",
			input:        ":8082",
			expectedHost: "",
			expectedPort: 8082,
		},
		{
			name:         "missing port separator",
			input:        "localhost",
			expectError:  true,
			errorMessage: "need address in a form `host:port`",
		},
		{
			name:         "too many separators",
			input:        "a:b:c",
			expectError:  true,
			errorMessage: "need address in a form `host:port`",
		},
		{
			name:        "port is not a number",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:         "port zero",
			input:        "localhost:0",
			expectError:  true,
			errorMessage: "port number must be between 1 and 65535",
		},
		{
			name:         "port too large",
			input:        "localhost:70000",
			expectError:  true,
			errorMessage: "port number must be between 1 and 65535",
		},
		{
			name:         "hostname is not an IP",
			input:        "example.com:8082",
			expectError:  true,
			errorMessage: "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMessage != "" {
					assert.EqualError(t, err, tt.errorMessage)
				}
				assert.Equal(t, NetAddress{}, addr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	resetFlags(t,
		"-a", "127.0.0.1:8090",
		"-d", "postgres://localhost/boxes",
		"-config", "/etc/boxes.json",
		"-request-timeout", "15s",
		"-shutdown-timeout", "3s",
		"-log-level", "warn",
		"-redis-address", "localhost:6379",
		"-lock-ttl", "2s",
	)

	cfg := ParseFlags()

	assert.Equal(t, "127.0.0.1:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/boxes", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/boxes.json", cfg.JSONFilePath)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.Lock.RedisAddress)
	assert.Equal(t, 2*time.Second, cfg.Lock.TTL)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	resetFlags(t, "-c", "/tmp/box.json")

	cfg := ParseFlags()

	assert.Equal(t, "/tmp/box.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseFlags_NoFlags(t *testing.T) {
	resetFlags(t)

	cfg := ParseFlags()

	assert.Equal(t, &StructuredConfig{}, cfg)
}
