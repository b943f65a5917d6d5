// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads lazyprop settings from defaults, lazyprop.yaml,
// LAZYPROP_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "lazyprop"
	envPrefix = "LAZYPROP"
)

// Config is the application configuration.
type Config struct {
	JarPath          string        `mapstructure:"jar_path" yaml:"jar_path"`
	EnvsPath         string        `mapstructure:"envs_path" yaml:"envs_path"`
	Engine           string        `mapstructure:"engine" yaml:"engine"`
	JavaBin          string        `mapstructure:"java_bin" yaml:"java_bin"`
	Language         string        `mapstructure:"language" yaml:"language"`
	LogFile          string        `mapstructure:"log_file" yaml:"log_file"`
	LogLevel         string        `mapstructure:"log_level" yaml:"log_level"`
	Backup           bool          `mapstructure:"backup" yaml:"backup"`
	FuzzySearch      bool          `mapstructure:"fuzzy_search" yaml:"fuzzy_search"`
	TickRate         float64       `mapstructure:"tick_rate" yaml:"tick_rate"`
	TransformTimeout time.Duration `mapstructure:"transform_timeout" yaml:"transform_timeout"`
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Lazyprop")
		default:
			configDir = "/etc/lazyprop"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// Defaults returns the built-in value for every key.
func Defaults() map[string]any {
	envsPath := "envs.yaml"
	if userConfigPath, err := GetConfigPath(false); err == nil {
		envsPath = filepath.Join(filepath.Dir(userConfigPath), "envs.yaml")
	}
	return map[string]any{
		"jar_path":          "secure-properties-tool.jar",
		"envs_path":         envsPath,
		"engine":            "jar",
		"java_bin":          "java",
		"language":          "en",
		"log_file":          "",
		"log_level":         "info",
		"backup":            true,
		"fuzzy_search":      false,
		"tick_rate":         4.0,
		"transform_timeout": "0s",
	}
}

// LoadConfig builds a T from defaults, the config file, the environment and
// the flags of cmd. A viper.ConfigFileNotFoundError is returned together
// with the populated value when no config file exists, so callers can
// write a default one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// LAZYPROP_JAR_PATH, LAZYPROP_ENVS_PATH, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(flagKey(f.Name), f)
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// flagKey maps a dashed flag name to its config key (envs-path -> envs_path).
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may point at key material
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
