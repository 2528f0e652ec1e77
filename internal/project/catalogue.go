package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cratepack/internal/model"
)

// DefaultCataloguePresetsPath is where the CataloguePresetStore lives
// inside the config directory.
func DefaultCataloguePresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "catalogue_presets.json")
}

// SaveCataloguePresets writes a preset store to path as JSON.
func SaveCataloguePresets(path string, store model.CataloguePresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalogue presets: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCataloguePresets reads a preset store from path. If the file does
// not exist, it returns an empty store with no error.
func LoadCataloguePresets(path string) (model.CataloguePresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCataloguePresetStore(), nil
		}
		return model.CataloguePresetStore{}, fmt.Errorf("read catalogue presets: %w", err)
	}
	var store model.CataloguePresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.CataloguePresetStore{}, fmt.Errorf("parse catalogue presets: %w", err)
	}
	return store, nil
}
