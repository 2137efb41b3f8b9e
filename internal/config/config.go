// Package config handles global studytool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/studytool/config.yml.
type GlobalConfig struct {
	GitHubBase         string `yaml:"github_base,omitempty"`          // base URL for annotation links
	DefaultRepo        string `yaml:"default_repo,omitempty"`         // fallback repository for annotation links
	DBPath             string `yaml:"db_path,omitempty"`              // study index database location
	LinkTimeoutSeconds int    `yaml:"link_timeout_seconds,omitempty"` // per-request timeout for link checks
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "studytool"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// DBFile is the default study index database file name.
	DBFile = "studies.db"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/studytool/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetGitHubBase returns the configured annotation link base URL, or "" when
// the built-in default should apply.
func GetGitHubBase() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.GitHubBase
}

// GetDefaultRepo returns the configured fallback repository, or "" when the
// built-in default should apply.
func GetDefaultRepo() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.DefaultRepo
}

// GetLinkTimeoutSeconds returns the configured link check timeout, or 0 when
// the built-in default should apply.
func GetLinkTimeoutSeconds() int {
	cfg, _ := LoadGlobalConfig()
	return cfg.LinkTimeoutSeconds
}

// DefaultDBPath returns the study index database path: the configured
// db_path when set, otherwise <user cache dir>/studytool/studies.db.
func DefaultDBPath() (string, error) {
	cfg, _ := LoadGlobalConfig()
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}
	return filepath.Join(cacheDir, GlobalConfigDir, DBFile), nil
}
