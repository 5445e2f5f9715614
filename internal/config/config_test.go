package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T) {
	t.Setenv(EnvWhatsAppToken, "token-123")
	t.Setenv(EnvPhoneNumberID, "555000111")
	t.Setenv(EnvVerifyToken, "mysecrettoken")
	t.Setenv(EnvGeminiAPIKey, "gm-key")
}

func TestLoad(t *testing.T) {
	setAll(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", cfg.WhatsAppToken)
	assert.Equal(t, "555000111", cfg.PhoneNumberID)
	assert.Equal(t, "mysecrettoken", cfg.VerifyToken)
	assert.Equal(t, "gm-key", cfg.GeminiAPIKey)
	assert.Equal(t, "8080", cfg.Port, "PORT should default when unset")
}

func TestLoadCustomPort(t *testing.T) {
	setAll(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadMissingVars(t *testing.T) {
	setAll(t)
	t.Setenv(EnvWhatsAppToken, "")
	t.Setenv(EnvGeminiAPIKey, "  ")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), EnvWhatsAppToken)
	assert.Contains(t, err.Error(), EnvGeminiAPIKey)
	assert.NotContains(t, err.Error(), EnvPhoneNumberID)
}

func TestMissingListsAll(t *testing.T) {
	for _, name := range required {
		t.Setenv(name, "")
	}
	assert.Equal(t, required, Missing())
}

func TestMissingEmptyWhenConfigured(t *testing.T) {
	setAll(t)
	assert.Empty(t, Missing())
}
