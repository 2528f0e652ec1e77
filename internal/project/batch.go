package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/cratepack/internal/model"
)

// BatchBundle is a complete, replayable snapshot of one batch run: the
// order list, the container catalogue it was packed against, and the
// waste percentage used for packing-material estimates.
type BatchBundle struct {
	Version      string            `json:"version"`
	CreatedAt    string            `json:"created_at"`
	Catalogue    []model.Container `json:"catalogue"`
	WastePercent float64           `json:"waste_percent"`
	OrderIDs     []string          `json:"order_ids"`
}

// SaveBatchBundle writes a batch bundle to exportPath as JSON, creating
// any missing parent directories.
func SaveBatchBundle(exportPath string, catalogue []model.Container, wastePercent float64, orderIDs []string) error {
	bundle := BatchBundle{
		Version:      "1.0.0",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Catalogue:    catalogue,
		WastePercent: wastePercent,
		OrderIDs:     orderIDs,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch bundle: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("write batch bundle: %w", err)
	}
	return nil
}

// LoadBatchBundle reads a batch bundle previously written by
// SaveBatchBundle.
func LoadBatchBundle(importPath string) (BatchBundle, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BatchBundle{}, fmt.Errorf("read batch bundle: %w", err)
	}
	var bundle BatchBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return BatchBundle{}, fmt.Errorf("parse batch bundle: %w", err)
	}
	if bundle.Version == "" {
		return BatchBundle{}, fmt.Errorf("invalid batch bundle: missing version field")
	}
	return bundle, nil
}
