package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/cratepack/internal/model"
)

// containerRecord mirrors the container catalogue's JSON wire shape.
// Field names follow spec.md §6 exactly; Go's encoding/json keys off
// struct tags so the constructor can still normalise dimensions itself.
type containerRecord struct {
	Length            float64 `json:"length"`
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	Weight            float64 `json:"weight"`
	MaxWeight         float64 `json:"max_weight"`
	Description       string  `json:"description"`
	ContainerType     string  `json:"container_type"`
	Remark            string  `json:"remark"`
	MaxFillPercentage float64 `json:"max_fill_percentage"`
	MinFillPercentage float64 `json:"min_fill_percentage"`
}

// ReadContainerCatalogue reads a JSON array of container records from
// path and builds normalised Container values.
func ReadContainerCatalogue(path string) ([]model.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []containerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	catalogue := make([]model.Container, 0, len(records))
	for _, r := range records {
		catalogue = append(catalogue, model.NewContainer(
			r.Width, r.Height, r.Length, r.Weight, r.MaxWeight,
			r.ContainerType, r.Description, r.Remark,
			r.MinFillPercentage, r.MaxFillPercentage,
		))
	}
	return catalogue, nil
}
