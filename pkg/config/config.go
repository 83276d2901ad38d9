package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Summary struct {
		Enabled       bool          `yaml:"enabled"`
		BaseURL       string        `yaml:"base_url"`
		InternalToken string        `yaml:"internal_token"`
		Timeout       time.Duration `yaml:"timeout"`
	} `yaml:"summary"`
	// Trigger tier thresholds are supplied as configuration, not constants.
	// The zero value of any field falls back to the documented default.
	Triggers struct {
		LossCapMultiple          float64 `yaml:"loss_cap_multiple"`
		UsageThreshold           float64 `yaml:"usage_threshold"`
		RevaluationMultiple      float64 `yaml:"revaluation_multiple"`
		ReverseImpairmentHaircut float64 `yaml:"reverse_impairment_haircut"`
		CPRMRateThreshold        float64 `yaml:"cprm_rate_threshold"`
		OCIMGrowthThreshold      float64 `yaml:"ocim_growth_threshold"`
		FAREXIndicatorThreshold  float64 `yaml:"farex_indicator_threshold"`
	} `yaml:"triggers"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, perr := strconv.Atoi(v); perr == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SUMMARY_BASE_URL"); v != "" {
		c.Summary.BaseURL = v
		c.Summary.Enabled = true
	}
	if v := os.Getenv("SUMMARY_INTERNAL_TOKEN"); v != "" {
		c.Summary.InternalToken = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Summary.Timeout == 0 {
		c.Summary.Timeout = 10 * time.Second
	}
	if c.Triggers.LossCapMultiple == 0 {
		c.Triggers.LossCapMultiple = 1.2
	}
	if c.Triggers.UsageThreshold == 0 {
		c.Triggers.UsageThreshold = 0.75
	}
	if c.Triggers.RevaluationMultiple == 0 {
		c.Triggers.RevaluationMultiple = 2.0
	}
	if c.Triggers.ReverseImpairmentHaircut == 0 {
		c.Triggers.ReverseImpairmentHaircut = 0.30
	}
	if c.Triggers.CPRMRateThreshold == 0 {
		c.Triggers.CPRMRateThreshold = 0.10
	}
	if c.Triggers.OCIMGrowthThreshold == 0 {
		c.Triggers.OCIMGrowthThreshold = 0.30
	}
	if c.Triggers.FAREXIndicatorThreshold == 0 {
		c.Triggers.FAREXIndicatorThreshold = 1.5
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Triggers.LossCapMultiple < 1 {
		return fmt.Errorf("triggers.loss_cap_multiple must be >= 1, got %v", c.Triggers.LossCapMultiple)
	}
	if c.Triggers.UsageThreshold <= 0 || c.Triggers.UsageThreshold > 1 {
		return fmt.Errorf("triggers.usage_threshold must be in (0, 1], got %v", c.Triggers.UsageThreshold)
	}
	if c.Triggers.ReverseImpairmentHaircut < 0 || c.Triggers.ReverseImpairmentHaircut >= 1 {
		return fmt.Errorf("triggers.reverse_impairment_haircut must be in [0, 1), got %v", c.Triggers.ReverseImpairmentHaircut)
	}
	if c.Summary.Enabled && c.Summary.BaseURL == "" {
		return fmt.Errorf("summary.base_url is required when summary.enabled is true")
	}
	return nil
}
