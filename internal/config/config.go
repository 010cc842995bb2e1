package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
)

const (
	defaultConfigPath = "./ecowars_config.json"
	defaultAddress    = ":8080"
	defaultDBPath     = "./data/ecowars.db"
	defaultBotName    = "SimEconomy"
	defaultOpenTTL    = 5 * time.Minute
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	Practice *struct {
		BotName string `json:"bot_name"`
	} `json:"practice"`
	// How long a match waiting for an opponent stays on the public list.
	OpenMatchTTLMinutes int `json:"open_match_ttl_minutes"`
}

type envOverrides struct {
	ConfigPath string `env:"ECOWARS_CONFIG"`
	Address    string `env:"ECOWARS_ADDR"`
	DBPath     string `env:"ECOWARS_DB"`
}

// LoadedConfig is the fully resolved server configuration: compiled-in
// defaults, overridden by the optional JSON config file, overridden by
// environment variables.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string
	BotName       string
	OpenMatchTTL  time.Duration
}

// Load resolves the configuration. The config file path may come from the
// ECOWARS_CONFIG env var; a missing file at the default path is fine, a
// missing file at an explicitly configured path is an error.
func Load() (*LoadedConfig, error) {
	cfg := &LoadedConfig{
		ServerAddress: defaultAddress,
		DatabasePath:  defaultDBPath,
		BotName:       defaultBotName,
		OpenMatchTTL:  defaultOpenTTL,
	}

	var env envOverrides
	if err := envdecode.Decode(&env); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	path := env.ConfigPath
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}
	if err := applyFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	// Environment wins over the file.
	if env.Address != "" {
		cfg.ServerAddress = env.Address
	}
	if env.DBPath != "" {
		cfg.DatabasePath = env.DBPath
	}
	return cfg, nil
}

func applyFile(cfg *LoadedConfig, path string, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		cfg.DatabasePath = rc.Database.Path
	}
	if rc.Practice != nil && rc.Practice.BotName != "" {
		cfg.BotName = rc.Practice.BotName
	}
	if rc.OpenMatchTTLMinutes < 0 {
		return fmt.Errorf("config file %s: open_match_ttl_minutes must not be negative", path)
	}
	if rc.OpenMatchTTLMinutes > 0 {
		cfg.OpenMatchTTL = time.Duration(rc.OpenMatchTTLMinutes) * time.Minute
	}
	return nil
}
