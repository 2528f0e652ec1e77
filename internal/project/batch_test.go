package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadBatchBundle_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	catalogue := model.DefaultCatalogue()

	require.NoError(t, SaveBatchBundle(path, catalogue, 10, []string{"ORD-1", "ORD-2"}))
	got, err := LoadBatchBundle(path)

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Len(t, got.Catalogue, len(catalogue))
	assert.Equal(t, 10.0, got.WastePercent)
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, got.OrderIDs)
}

func TestLoadBatchBundle_RejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"order_ids": []}`), 0o644))

	_, err := LoadBatchBundle(path)

	assert.Error(t, err)
}
