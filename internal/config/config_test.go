package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_CX", "")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", "")

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.GoogleAPIKey)
	assert.Empty(t, cfg.GoogleCX)
	assert.Empty(t, cfg.SheetsCredentials)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_API_KEY", "key-123")
	t.Setenv("GOOGLE_CX", "cx-456")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", `{"type": "service_account"}`)

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "key-123", cfg.GoogleAPIKey)
	assert.Equal(t, "cx-456", cfg.GoogleCX)
	assert.Equal(t, `{"type": "service_account"}`, cfg.SheetsCredentials)
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"valid port", 3000, false},
		{"zero port", 0, true},
		{"negative port", -1, true},
		{"port too large", 70000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: tt.port}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
