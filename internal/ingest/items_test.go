package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadItemCatalogue_ParsesHeaderedCSV(t *testing.T) {
	path := writeTempFile(t, "items.csv", "ID,Width,Height,Length,Weight,Fit ratio\nA,10,20,30,500,100\nB,5,5,5,100,90\n")

	result, err := ReadItemCatalogue(path)

	require.NoError(t, err)
	require.Contains(t, result.Items, "A")
	a := result.Items["A"]
	assert.Equal(t, 10.0, a.Width)
	assert.Equal(t, 20.0, a.Height)
	assert.Equal(t, 30.0, a.Length)
	assert.Equal(t, 500.0, a.WeightG)
	assert.Equal(t, 100.0, a.FitRatio)
}

func TestReadItemCatalogue_SkipsRowsMissingID(t *testing.T) {
	path := writeTempFile(t, "items.csv", "ID,Width,Height,Length,Weight,Fit ratio\n,10,20,30,500,100\n")

	result, err := ReadItemCatalogue(path)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.NotEmpty(t, result.Warnings)
}

func TestReadItemCatalogue_SniffsSemicolonDelimiter(t *testing.T) {
	path := writeTempFile(t, "items.csv", "ID;Width;Height;Length;Weight;Fit ratio\nA;10;20;30;500;100\n")

	result, err := ReadItemCatalogue(path)

	require.NoError(t, err)
	require.Contains(t, result.Items, "A")
}
