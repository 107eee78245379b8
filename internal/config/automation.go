package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// AutomationConfig holds the settings for the external workflow-automation
// integration and the closing export storage.
type AutomationConfig struct {
	Webhook WebhookConfig `toml:"webhook"`
	Export  ExportConfig  `toml:"export"`
}

// WebhookConfig contains the outbound automation webhook settings. An empty
// URL disables delivery entirely.
type WebhookConfig struct {
	URL            string `toml:"url"`
	Secret         string `toml:"secret"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ExportConfig contains day-closing export settings
type ExportConfig struct {
	Bucket           string `toml:"bucket"`
	URLExpiryMinutes int    `toml:"url_expiry_minutes"`
}

// LoadAutomationConfig loads configuration from a TOML file
func LoadAutomationConfig(filename string) (*AutomationConfig, error) {
	config := &AutomationConfig{}
	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	config.applyDefaults()
	return config, nil
}

// DefaultAutomationConfig returns the configuration used when no TOML file is
// supplied; the webhook URL can still be injected from the environment.
func DefaultAutomationConfig() *AutomationConfig {
	config := &AutomationConfig{}
	config.applyDefaults()
	return config
}

func (c *AutomationConfig) applyDefaults() {
	if c.Webhook.TimeoutSeconds <= 0 {
		c.Webhook.TimeoutSeconds = 30
	}
	if c.Export.Bucket == "" {
		c.Export.Bucket = "day-closings"
	}
	if c.Export.URLExpiryMinutes <= 0 {
		c.Export.URLExpiryMinutes = 60
	}
}
