package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		// No config file: run on defaults.
		Config = AppConfig{}
		applyDefaults(&Config)
		return nil
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8355
	}
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = "http://localhost:5000"
	}
	if cfg.Service.TimeoutMS == 0 {
		cfg.Service.TimeoutMS = 30000
	}
	if cfg.Service.MaxTransfers == 0 {
		cfg.Service.MaxTransfers = 3
	}
	if cfg.Directory.Source == "" {
		cfg.Directory.Source = "static"
	}
}
