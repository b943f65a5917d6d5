// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/lazyprop/lazyprop/internal/config"
)

// isolate points the user config dir at a fresh temp dir and runs the test
// from another empty dir so no stray lazyprop.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if c.Engine != "jar" || c.JavaBin != "java" || c.Language != "en" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if !c.Backup || c.TickRate != 4 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if !strings.HasSuffix(c.EnvsPath, filepath.Join("lazyprop", "envs.yaml")) {
		t.Fatalf("unexpected envs path: %s", c.EnvsPath)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	content := "jar_path: /opt/tool.jar\nenvs_path: /data/envs.yaml\nengine: native\ntransform_timeout: 5s\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.JarPath != "/opt/tool.jar" || c.EnvsPath != "/data/envs.yaml" || c.Engine != "native" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.TransformTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", c.TransformTimeout)
	}
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte("jar_path: /from/file.jar\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LAZYPROP_JAR_PATH", "/from/env.jar")
	t.Setenv("LAZYPROP_FUZZY_SEARCH", "true")

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.JarPath != "/from/env.jar" {
		t.Fatalf("expected env override, got %s", c.JarPath)
	}
	if !c.FuzzySearch {
		t.Fatalf("expected fuzzy_search from env")
	}
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("LAZYPROP_ENVS_PATH", "/from/env.yaml")

	cmd := &cobra.Command{}
	cmd.Flags().String("envs-path", "", "")
	if err := cmd.Flags().Set("envs-path", "/from/flag.yaml"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if c.EnvsPath != "/from/flag.yaml" {
		t.Fatalf("expected flag override, got %s", c.EnvsPath)
	}
}

func TestLoadConfig_UnsetFlagKeepsDefault(t *testing.T) {
	isolate(t)

	cmd := &cobra.Command{}
	cmd.Flags().String("engine", "", "")

	c, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if c.Engine != "jar" {
		t.Fatalf("expected default engine, got %q", c.Engine)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{JarPath: "tool.jar", EnvsPath: "envs.yaml", Engine: "jar", Language: "en"}
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), "jar_path: tool.jar") {
		t.Fatalf("unexpected content: %s", data)
	}

	// the written file is picked up on the next load
	c2, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c2.JarPath != "tool.jar" {
		t.Fatalf("expected written jar_path, got %s", c2.JarPath)
	}
}
