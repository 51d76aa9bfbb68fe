package config

import (
	"encoding/json"
	"fmt"
	"os"

	"safeher/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the whole deployment configuration from a single JSON
// blob in the 'config' environment variable (a .env file is honoured for
// local runs). The result is never mutated after startup.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.JwtSecret == "" {
		return nil, fmt.Errorf("config is missing jwtSecret")
	}
	if envCfg.TwoFactorApiKey == "" {
		return nil, fmt.Errorf("config is missing twoFactorApiKey")
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}
