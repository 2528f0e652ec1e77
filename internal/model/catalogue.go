package model

import "github.com/google/uuid"

// DefaultCatalogue returns the built-in container presets a fresh
// installation ships with, covering the type tags the core treats
// specially (XXS) and a representative size ladder.
func DefaultCatalogue() []Container {
	return []Container{
		NewContainer(100, 100, 100, 50, 500, "XXS", "Extra small single-item box", "", 0, 100),
		NewContainer(200, 200, 200, 150, 5000, "S", "Small parcel", "", 5, 80),
		NewContainer(400, 400, 400, 400, 15000, "M", "Medium parcel", "", 5, 80),
		NewContainer(600, 600, 600, 800, 30000, "L", "Large parcel", "", 5, 80),
		NewContainer(1200, 200, 200, 600, 20000, "XSD", "Extra-long slim box", "", 5, 80),
		NewContainer(350, 250, 50, 80, 2000, "ENV", "Padded envelope", "", 0, 100),
	}
}

// CataloguePreset is a named, saveable container catalogue: an operator
// might keep a "standard" catalogue and a "holiday oversized" catalogue
// and switch between them per batch run.
type CataloguePreset struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Containers []Container `json:"containers"`
}

// NewCataloguePreset wraps a container list under a name, assigning a
// short stable ID.
func NewCataloguePreset(name string, containers []Container) CataloguePreset {
	return CataloguePreset{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Containers: append([]Container(nil), containers...),
	}
}

// CataloguePresetStore is a collection of named catalogue presets.
type CataloguePresetStore struct {
	Presets []CataloguePreset `json:"presets"`
}

// NewCataloguePresetStore returns an empty store.
func NewCataloguePresetStore() CataloguePresetStore {
	return CataloguePresetStore{Presets: []CataloguePreset{}}
}

// Add appends a preset to the store.
func (s *CataloguePresetStore) Add(p CataloguePreset) {
	s.Presets = append(s.Presets, p)
}

// Remove deletes the preset with the given ID, if present.
func (s *CataloguePresetStore) Remove(id string) {
	out := s.Presets[:0]
	for _, p := range s.Presets {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.Presets = out
}

// FindByID returns the preset with the given ID.
func (s CataloguePresetStore) FindByID(id string) (CataloguePreset, bool) {
	for _, p := range s.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return CataloguePreset{}, false
}

// FindByName returns the preset with the given name.
func (s CataloguePresetStore) FindByName(name string) (CataloguePreset, bool) {
	for _, p := range s.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return CataloguePreset{}, false
}

// Names lists the preset names in the store.
func (s CataloguePresetStore) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for _, p := range s.Presets {
		names = append(names, p.Name)
	}
	return names
}
