package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

// WordPress is the headless content API.
type WordPress struct {
	APIURL  string        `yaml:"WP_API_URL" env:"WP_API_URL" env-default:"https://saonamtg.com/wp-json/wp/v2"`
	APIRoot string        `yaml:"WP_API_ROOT" env:"WP_API_ROOT" env-default:"https://saonamtg.com/wp-json"`
	Timeout time.Duration `yaml:"WP_TIMEOUT" env:"WP_TIMEOUT" env-default:"10s"`
}

// WooCommerce is the commerce API. Key and secret are sent as query parameters.
type WooCommerce struct {
	BaseURL        string        `yaml:"WC_API_BASE" env:"WC_API_BASE" env-default:"https://saonamtg.com/wp-json/wc/v3"`
	ConsumerKey    string        `yaml:"WC_KEY" env:"WC_KEY"`
	ConsumerSecret string        `yaml:"WC_SECRET" env:"WC_SECRET"`
	Timeout        time.Duration `yaml:"WC_TIMEOUT" env:"WC_TIMEOUT" env-default:"10s"`
}

type Site struct {
	Origin          string `yaml:"SITE_ORIGIN" env:"SITE_ORIGIN" env-default:"https://saonamtg.com"`
	RevalidateToken string `yaml:"REVALIDATE_TOKEN" env:"REVALIDATE_TOKEN" env-default:"default_token"`
}

type CacheConfig struct {
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"300s"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"1m"`
}

type SendGrid struct {
	APIKey         string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail      string `yaml:"FROM_EMAIL" env:"FROM_EMAIL" env-default:"no-reply@saonamtg.com"`
	FromName       string `yaml:"FROM_NAME" env:"FROM_NAME" env-default:"Sao Nam TG"`
	ContactToEmail string `yaml:"CONTACT_TO_EMAIL" env:"CONTACT_TO_EMAIL" env-default:"info@saonamtg.com"`
}

type OTel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"saonamtg-web"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1"`
}

type Logging struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	WordPress   WordPress   `yaml:"wordpress"`
	WooCommerce WooCommerce `yaml:"woocommerce"`
	Site        Site        `yaml:"site"`
	Cache       CacheConfig `yaml:"cache"`
	SendGrid    SendGrid    `yaml:"sendgrid"`
	OTel        OTel        `yaml:"otel"`
	Logging     Logging     `yaml:"logging"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	var (
		cfg *Config
		err error
	)

	// Without a file everything comes from the environment.
	if configPath == "" {
		cfg, err = LoadConfigFromEnv()
	} else {
		cfg, err = LoadConfigFromPath(configPath)
	}

	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	cfg.normalize()

	return &cfg, nil
}

func LoadConfigFromEnv() (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("can not read config from environment: %w", err)
	}

	cfg.normalize()

	return &cfg, nil
}

func (c *Config) normalize() {
	c.WordPress.APIURL = strings.TrimRight(c.WordPress.APIURL, "/")
	c.WordPress.APIRoot = strings.TrimRight(c.WordPress.APIRoot, "/")
	c.WooCommerce.BaseURL = strings.TrimRight(c.WooCommerce.BaseURL, "/")
	c.Site.Origin = strings.TrimRight(c.Site.Origin, "/")
}

// HasCommerceCredentials reports whether both WooCommerce credentials are set.
func (w *WooCommerce) HasCommerceCredentials() bool {
	return w.ConsumerKey != "" && w.ConsumerSecret != ""
}
