package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 12, cfg.Storefront.ShippingFee)
	assert.Equal(t, "skt10", cfg.Storefront.PromoCode)
	assert.Equal(t, 10, cfg.Storefront.PromoAmount)
	assert.Equal(t, 6, cfg.Storefront.SearchLimit)
	assert.Equal(t, 2*time.Second, cfg.Storefront.FeedbackDelay)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "X-SKT-Session", cfg.Session.Header)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvShippingFee, "5")
	t.Setenv(EnvFeedbackDelay, "250ms")
	t.Setenv(EnvCORSOrigins, "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Storefront.ShippingFee)
	assert.Equal(t, 250*time.Millisecond, cfg.Storefront.FeedbackDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	require.NoError(t, os.Unsetenv(EnvAppEnv))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidStorefrontValues(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvShippingFee, "-1")
	_, err := Load()
	assert.Error(t, err)

	setMinimalEnv(t)
	t.Setenv(EnvPromoCode, "   ")
	_, err = Load()
	assert.Error(t, err)
}

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvShippingFee, "12")
	t.Setenv(EnvPromoCode, "skt10")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	assert.True(t, devConfig.IsDev())
	assert.False(t, devConfig.IsProd())

	prodConfig := AppConfig{Env: "prod"}
	assert.True(t, prodConfig.IsProd())
	assert.False(t, prodConfig.IsDev())
}
