package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planportal/planportal/internal/config"
)

var required = map[string]string{
	"JWT_SECRET":             "test-secret",
	"USER_CREDENTIALS":       "{}",
	"ADMIN_USERNAME_HASH":    "aa",
	"ADMIN_PASSWORD_HASH":    "bb",
	"FELLES_OKTER_SHEET_URL": "https://x/felles",
}

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range required {
		t.Setenv(k, v)
	}
}

func TestLoad(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, []byte("{}"), cfg.UserCredentials)
	assert.Equal(t, "aa", cfg.AdminUsernameHash)
	assert.Equal(t, "bb", cfg.AdminPasswordHash)
	assert.Equal(t, "https://x/felles", cfg.FellesOkterURL)
	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.Production)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Production)
}

func TestLoadFailsWithoutRequiredKeys(t *testing.T) {
	for missing := range required {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}
