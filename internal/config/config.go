package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	HTTP       HTTPConfig       `yaml:"http"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Generative GenerativeConfig `yaml:"generative"`
	Valuation  ValuationConfig  `yaml:"valuation"`
	Comps      CompsConfig      `yaml:"comps"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
	Jobs       JobsConfig       `yaml:"jobs"`
	LogLevel   string           `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// PricingConfig configures the optional external pricing API. An empty
// BaseURL disables the client and the retention model becomes authoritative.
type PricingConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// GenerativeConfig configures the optional generative estimator. An empty
// APIKey disables it.
type GenerativeConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type ValuationConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type CompsConfig struct {
	YearBand    int `yaml:"year_band"`
	MileageBand int `yaml:"mileage_band"`
	MaxComps    int `yaml:"max_comps"`
	MinComps    int `yaml:"min_comps"`
}

type LifecycleConfig struct {
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	StaleThreshold time.Duration `yaml:"stale_threshold"`
	PurgeInterval  time.Duration `yaml:"purge_interval"`
	RetentionDays  int           `yaml:"retention_days"`
}

type JobsConfig struct {
	DrainInterval time.Duration `yaml:"drain_interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "dealscout"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "listings"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "listing_events"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Pricing.Timeout == 0 {
		c.Pricing.Timeout = 10 * time.Second
	}
	if c.Pricing.Retry.MaxAttempts == 0 {
		c.Pricing.Retry.MaxAttempts = 3
	}
	if c.Pricing.Retry.InitialBackoff == 0 {
		c.Pricing.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Pricing.Retry.MaxBackoff == 0 {
		c.Pricing.Retry.MaxBackoff = 10 * time.Second
	}
	if c.Generative.BaseURL == "" {
		c.Generative.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Generative.Model == "" {
		c.Generative.Model = "google/gemini-flash-1.5"
	}
	if c.Generative.Timeout == 0 {
		c.Generative.Timeout = 10 * time.Second
	}
	if c.Valuation.CacheTTL == 0 {
		c.Valuation.CacheTTL = 7 * 24 * time.Hour
	}
	if c.Comps.YearBand == 0 {
		c.Comps.YearBand = 2
	}
	if c.Comps.MileageBand == 0 {
		c.Comps.MileageBand = 30000
	}
	if c.Comps.MaxComps == 0 {
		c.Comps.MaxComps = 50
	}
	if c.Comps.MinComps == 0 {
		c.Comps.MinComps = 3
	}
	if c.Lifecycle.SweepInterval == 0 {
		c.Lifecycle.SweepInterval = 1 * time.Hour
	}
	if c.Lifecycle.StaleThreshold == 0 {
		c.Lifecycle.StaleThreshold = 48 * time.Hour
	}
	if c.Lifecycle.PurgeInterval == 0 {
		c.Lifecycle.PurgeInterval = 24 * time.Hour
	}
	if c.Lifecycle.RetentionDays == 0 {
		c.Lifecycle.RetentionDays = 90
	}
	if c.Jobs.DrainInterval == 0 {
		c.Jobs.DrainInterval = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
