package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names for all required configuration values.
const (
	EnvWhatsAppToken = "WHATSAPP_TOKEN"
	EnvPhoneNumberID = "PHONE_NUMBER_ID"
	EnvVerifyToken   = "VERIFY_TOKEN"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
)

var required = []string{
	EnvWhatsAppToken,
	EnvPhoneNumberID,
	EnvVerifyToken,
	EnvGeminiAPIKey,
}

type Config struct {
	WhatsAppToken string
	PhoneNumberID string
	VerifyToken   string
	GeminiAPIKey  string
	Port          string
}

// Missing returns the names of every required environment variable that is
// unset or empty.
func Missing() []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Load reads the configuration from the process environment. The returned
// error names every missing variable so a bad deploy fails with one message.
func Load() (*Config, error) {
	if missing := Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		WhatsAppToken: os.Getenv(EnvWhatsAppToken),
		PhoneNumberID: os.Getenv(EnvPhoneNumberID),
		VerifyToken:   os.Getenv(EnvVerifyToken),
		GeminiAPIKey:  os.Getenv(EnvGeminiAPIKey),
		Port:          os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
