package provider

import (
	"os"
	"strings"
)

// LoadAPIKey returns apiKey when set, otherwise the value of envVar.
func LoadAPIKey(apiKey, envVar, description string) (string, error) {
	if apiKey != "" {
		return apiKey, nil
	}
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}
	return "", &LoadAPIKeyError{Description: description, EnvVar: envVar}
}
