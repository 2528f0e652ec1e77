package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cratepack/internal/model"
)

func TestCatalogueListCmd_PrintsOneLinePerContainer(t *testing.T) {
	cmd := newCatalogueListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Equal(t, len(model.DefaultCatalogue()), strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "XXS")
	assert.Contains(t, out.String(), "ENV")
}

func TestCatalogueExportCmd_WritesJSONToStdoutByDefault(t *testing.T) {
	cmd := newCatalogueExportCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Contains(t, out.String(), `"container_type"`)
}

func TestCatalogueSaveCmd_RequiresName(t *testing.T) {
	cmd := newCatalogueSaveCmd()

	err := cmd.RunE(cmd, nil)

	assert.Error(t, err)
}

func TestCatalogueSaveCmd_SavesPresetToFile(t *testing.T) {
	presetsPath := filepath.Join(t.TempDir(), "presets.json")
	cmd := newCatalogueSaveCmd()
	require.NoError(t, cmd.Flags().Set("presets", presetsPath))
	require.NoError(t, cmd.Flags().Set("name", "standard"))
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	assert.FileExists(t, presetsPath)
	data, err := os.ReadFile(presetsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "standard")
}
