package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"

func TestFromMapDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Server.AdminToken)
	assert.Equal(t, "https://e-jagriti.gov.in/services", cfg.Jagriti.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Jagriti.Timeout)
	assert.True(t, cfg.Jagriti.FromDate().IsZero())
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"LEXI_ADDR":                ":9090",
		"LEXI_LOG_FORMAT":          "text",
		"JAGRITI_BASE_URL":         "http://localhost:8081/services",
		"JAGRITI_USER_AGENT":       chromeUA,
		"JAGRITI_TIMEOUT":          "2s",
		"JAGRITI_SEARCH_FROM_DATE": "2023-04-01",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, "http://localhost:8081/services", cfg.Jagriti.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Jagriti.Timeout)
	assert.Equal(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), cfg.Jagriti.FromDate())
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"unparseable duration", map[string]string{"JAGRITI_TIMEOUT": "soon"}, "parse environment"},
		{"non-positive timeout", map[string]string{"JAGRITI_TIMEOUT": "0s"}, "JAGRITI_TIMEOUT must be positive"},
		{"relative base url", map[string]string{"JAGRITI_BASE_URL": "/services"}, "JAGRITI_BASE_URL"},
		{"ftp base url", map[string]string{"JAGRITI_BASE_URL": "ftp://e-jagriti.gov.in"}, "JAGRITI_BASE_URL"},
		{"bot user agent", map[string]string{"JAGRITI_USER_AGENT": "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"}, "got bot"},
		{"non-browser user agent", map[string]string{"JAGRITI_USER_AGENT": "curl/8.4.0"}, "browser user agent"},
		{"bad from date", map[string]string{"JAGRITI_SEARCH_FROM_DATE": "01/04/2023"}, "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.vars)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
