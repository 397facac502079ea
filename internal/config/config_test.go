package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestLoadConfigFromPath(t *testing.T) {
	validYAML := `
env: "test"
http_server:
  address: ":8081"
wordpress:
  WP_API_URL: "https://cms.example.com/wp-json/wp/v2/"
  WP_API_ROOT: "https://cms.example.com/wp-json"
  WP_TIMEOUT: "3s"
woocommerce:
  WC_API_BASE: "https://shop.example.com/wp-json/wc/v3"
  WC_KEY: "ck_file"
  WC_SECRET: "cs_file"
  WC_TIMEOUT: "7s"
site:
  SITE_ORIGIN: "https://example.com/"
  REVALIDATE_TOKEN: "file-token"
cache:
  default_ttl: "2m"
  cleanup_interval: "30s"
sendgrid:
  API_KEY: "sg_test_123"
  FROM_EMAIL: "web@example.com"
  FROM_NAME: "Example"
  CONTACT_TO_EMAIL: "sales@example.com"
otel:
  SERVICE_NAME: "test-service"
  EXPORTER_ENDPOINT: "http://otel:4318/v1/traces"
  SAMPLER_RATIO: 0.5
logging:
  level: "debug"
  format: "text"
`

	// Verifies values from YAML are loaded correctly
	t.Run("Load from file", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
		assert.Equal(t, "https://cms.example.com/wp-json/wp/v2", cfg.WordPress.APIURL, "trailing slash is trimmed")
		assert.Equal(t, 3*time.Second, cfg.WordPress.Timeout)
		assert.Equal(t, "ck_file", cfg.WooCommerce.ConsumerKey)
		assert.Equal(t, "cs_file", cfg.WooCommerce.ConsumerSecret)
		assert.Equal(t, 7*time.Second, cfg.WooCommerce.Timeout)
		assert.Equal(t, "https://example.com", cfg.Site.Origin)
		assert.Equal(t, "file-token", cfg.Site.RevalidateToken)
		assert.Equal(t, 2*time.Minute, cfg.Cache.DefaultTTL)
		assert.Equal(t, 30*time.Second, cfg.Cache.CleanupInterval)
		assert.Equal(t, "sales@example.com", cfg.SendGrid.ContactToEmail)
		assert.InDelta(t, 0.5, cfg.OTel.SamplerRatio, 0.0001)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.True(t, cfg.WooCommerce.HasCommerceCredentials())
	})

	// Verifies envs override the YAML values
	t.Run("Environment variable override", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)

		t.Setenv("ENV", "production")
		t.Setenv("WC_API_BASE", "https://override.example.com/wp-json/wc/v3")
		t.Setenv("WC_KEY", "ck_env")
		t.Setenv("WC_SECRET", "cs_env")
		t.Setenv("WP_API_URL", "https://override.example.com/wp-json/wp/v2")

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "https://override.example.com/wp-json/wc/v3", cfg.WooCommerce.BaseURL)
		assert.Equal(t, "ck_env", cfg.WooCommerce.ConsumerKey)
		assert.Equal(t, "cs_env", cfg.WooCommerce.ConsumerSecret)
		assert.Equal(t, "https://override.example.com/wp-json/wp/v2", cfg.WordPress.APIURL)
	})

	t.Run("Defaults for a minimal file", func(t *testing.T) {
		configPath := createTempConfigFile(t, `env: "minimal"`)

		cfg, err := LoadConfigFromPath(configPath)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.HTTPServer.Addr)
		assert.Equal(t, "https://saonamtg.com/wp-json/wp/v2", cfg.WordPress.APIURL)
		assert.Equal(t, "https://saonamtg.com/wp-json", cfg.WordPress.APIRoot)
		assert.Equal(t, "https://saonamtg.com/wp-json/wc/v3", cfg.WooCommerce.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.WooCommerce.Timeout)
		assert.Equal(t, "https://saonamtg.com", cfg.Site.Origin)
		assert.Equal(t, "default_token", cfg.Site.RevalidateToken)
		assert.Equal(t, 300*time.Second, cfg.Cache.DefaultTTL)
		assert.Equal(t, time.Minute, cfg.Cache.CleanupInterval)
		assert.Empty(t, cfg.OTel.ExporterEndpoint)
		assert.False(t, cfg.WooCommerce.HasCommerceCredentials())
	})

	t.Run("Missing file", func(t *testing.T) {
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		configPath := createTempConfigFile(t, "env: [unterminated")

		cfg, err := LoadConfigFromPath(configPath)

		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_ORIGIN", "https://env.example.com/")
	t.Setenv("CACHE_DEFAULT_TTL", "45s")
	t.Setenv("REVALIDATE_TOKEN", "env-token")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Site.Origin)
	assert.Equal(t, 45*time.Second, cfg.Cache.DefaultTTL)
	assert.Equal(t, "env-token", cfg.Site.RevalidateToken)
	assert.Equal(t, "https://saonamtg.com/wp-json/wc/v3", cfg.WooCommerce.BaseURL)
}
