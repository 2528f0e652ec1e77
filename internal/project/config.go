// Package project persists cratepack's application configuration and
// batch run bundles to disk.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppConfig is the user-level configuration cratepack keeps between
// invocations.
type AppConfig struct {
	LogLevel             string   `json:"log_level"`
	DefaultCataloguePath string   `json:"default_catalogue_path"`
	RecentBatches        []string `json:"recent_batches"`
}

// DefaultAppConfig is the configuration a fresh installation starts with.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		LogLevel:      "info",
		RecentBatches: []string{},
	}
}

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.cratepack/.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cratepack")
}

// DefaultConfigPath returns the default path for the application config
// file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to path as JSON, creating any
// missing parent directories.
func SaveAppConfig(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from path. If the file does not
// exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentBatches == nil {
		config.RecentBatches = []string{}
	}
	return config, nil
}

// BatchProject describes one scripted batch run: where its inputs live
// and which catalogue/fill settings to pack against. Intended to be
// hand-written or generated, then passed to `cratepack pack --project`.
type BatchProject struct {
	Name                   string  `toml:"name"`
	OrdersPath             string  `toml:"orders_path"`
	ItemCataloguePath      string  `toml:"item_catalogue_path"`
	ContainerCataloguePath string  `toml:"container_catalogue_path"`
	OutputDir              string  `toml:"output_dir"`
	WastePercent           float64 `toml:"waste_percent"`
}

// LoadBatchProject reads a batch project definition from a TOML file.
func LoadBatchProject(path string) (BatchProject, error) {
	var p BatchProject
	_, err := toml.DecodeFile(path, &p)
	return p, err
}

// SaveBatchProject writes a batch project definition to a TOML file.
func SaveBatchProject(path string, p BatchProject) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}
