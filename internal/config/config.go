// Package config loads the optional lvgl.yaml of a demo project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "lvgl.yaml"

// DefaultAssetDir holds the demo images, relative to the project root.
const DefaultAssetDir = "assets"

// Config represents the optional lvgl.yaml configuration.
type Config struct {
	App     AppConfig    `yaml:"app"`
	Display lvgl.Config  `yaml:"display"`
	Assets  AssetsConfig `yaml:"assets"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// AssetsConfig locates image files.
type AssetsConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Display    lvgl.Config
	AssetDir   string
}

// LoadOptional reads lvgl.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads lvgl.yaml (if present) and resolves defaults. dir need not
// be a Go module; without go.mod the module path stays empty.
func Resolve(dir string) (*Resolved, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(abs)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(abs)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, abs)
	}

	display := cfg.Display.WithDefaults()
	if err := display.Validate(); err != nil {
		return nil, fmt.Errorf("%s: display: %w", FileName, err)
	}

	assetDir := strings.TrimSpace(cfg.Assets.Dir)
	if assetDir == "" {
		assetDir = DefaultAssetDir
	}
	if !filepath.IsAbs(assetDir) {
		assetDir = filepath.Join(abs, assetDir)
	}

	return &Resolved{
		Root:       abs,
		ModulePath: modulePath,
		AppName:    appName,
		Display:    display,
		AssetDir:   assetDir,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "lvgl_app"
	}
	return base
}
