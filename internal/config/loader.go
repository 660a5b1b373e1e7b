package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"velo/internal/common"
	"velo/internal/platform"

	"gopkg.in/yaml.v3"
)

// ResolveHome returns $VELO_HOME when set, otherwise ~/.velo.
func ResolveHome() (string, error) {
	if home := os.Getenv(common.ENV_VELO_HOME); home != "" {
		return filepath.Abs(home)
	}

	userHome, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, DefaultHomeDirName), nil
}

func userHomeDir() (string, error) {
	userHome, err := platform.GetHomeDirectory()
	if err != nil {
		if userHome, err = os.UserHomeDir(); err != nil {
			return "", fmt.Errorf(ERROR_HOME_UNRESOLVED, err)
		}
	}
	return userHome, nil
}

// expandHome turns a home written in the config file into an absolute path.
// A leading "~" is the user's home directory; other relative paths are taken
// relative to the directory holding the config file.
func expandHome(home, configDir string) (string, error) {
	if home == "~" || strings.HasPrefix(home, "~/") || strings.HasPrefix(home, "~"+string(filepath.Separator)) {
		userHome, err := userHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(userHome, home[1:]), nil
	}
	if filepath.IsAbs(home) {
		return filepath.Clean(home), nil
	}
	return filepath.Abs(filepath.Join(configDir, home))
}

// DefaultConfigPath is the config file inside the velo home.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, DefaultConfigFile)
}

// LoadConfig reads configPath on top of the defaults. An empty configPath
// means the file in the velo home, which may legitimately be absent; an
// explicit path that does not exist is an error.
func LoadConfig(configPath string) (*Config, error) {
	home, err := ResolveHome()
	if err != nil {
		return nil, err
	}

	cfg := Default(home)

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath(home)
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(ERROR_CONFIG_PARSE, configPath, err)
		}
		if cfg.Home != "" && cfg.Home != home {
			configDir, err := filepath.Abs(filepath.Dir(configPath))
			if err != nil {
				return nil, fmt.Errorf(ERROR_CONFIG_READ, configPath, err)
			}
			if cfg.Home, err = expandHome(cfg.Home, configDir); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf(ERROR_CONFIG_NOT_FOUND, configPath)
	default:
		return nil, fmt.Errorf(ERROR_CONFIG_READ, configPath, err)
	}

	applyEnvironment(cfg, home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(ERROR_CONFIG_INVALID, err)
	}

	return cfg, nil
}

func applyEnvironment(cfg *Config, resolvedHome string) {
	if os.Getenv(common.ENV_VELO_HOME) != "" || cfg.Home == "" {
		cfg.Home = resolvedHome
	}
	if level := os.Getenv(common.ENV_VELO_LOG_LEVEL); level != "" {
		cfg.LogLevel = level
	}
}
