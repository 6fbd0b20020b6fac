package config

import "strings"

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	BearerToken    string
	AllowedOrigins []string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// ParseOrigins splits a comma-separated origin list from the environment.
func ParseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
