package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/piwi3910/cratepack/internal/project"
	"go.uber.org/zap/zaptest"
)

func TestLoadCatalogue_ReturnsBuiltInWhenPathEmpty(t *testing.T) {
	catalogue, err := loadCatalogue("")

	require.NoError(t, err)
	assert.Equal(t, model.DefaultCatalogue(), catalogue)
}

func TestLoadCatalogue_ReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "containers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"width":10,"height":10,"length":10,"weight":1,"max_weight":100,"description":"box","container_type":"X"}]`), 0o644))

	catalogue, err := loadCatalogue(path)

	require.NoError(t, err)
	require.Len(t, catalogue, 1)
	assert.Equal(t, "X", catalogue[0].ContainerType)
}

func TestPackOpts_ApplyProject_OverridesOnlySetFields(t *testing.T) {
	opts := packOpts{itemsPath: "items.csv", outputDir: "."}

	opts.applyProject(project.BatchProject{OrdersPath: "orders.csv", WastePercent: 7})

	assert.Equal(t, "items.csv", opts.itemsPath)
	assert.Equal(t, "orders.csv", opts.ordersPath)
	assert.Equal(t, 7.0, opts.wastePercent)
}

func TestPackAll_PacksEveryOrderConcurrently(t *testing.T) {
	logger := zaptest.NewLogger(t)
	catalogue := model.DefaultCatalogue()

	order1 := model.NewOrder("ORD-1", time.Now())
	order1.AddItem(model.NewItem("A", 10, 10, 10, 100, 100, ""))
	order2 := model.NewOrder("ORD-2", time.Now())
	order2.AddItem(model.NewItem("B", 10, 10, 10, 100, 100, ""))

	results, err := packAll(context.Background(), []*model.Order{order1, order2}, catalogue, logger)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "ORD-1", results[0].Order.ID)
	assert.Equal(t, "ORD-2", results[1].Order.ID)
	assert.Len(t, results[0].Order.Packed, 1)
}

func TestWriteOutputs_RejectsUnknownFormat(t *testing.T) {
	logger := zaptest.NewLogger(t)
	opts := packOpts{outputDir: t.TempDir(), formats: "bogus"}

	err := writeOutputs(opts, nil, logger)

	assert.Error(t, err)
}

func TestWriteOutputs_WritesCSV(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()
	opts := packOpts{outputDir: dir, formats: "csv"}

	order := model.NewOrder("ORD-1", time.Now())
	or := model.NewOrderResult(order)

	require.NoError(t, writeOutputs(opts, []*model.OrderResult{or}, logger))
	assert.FileExists(t, filepath.Join(dir, "placements.csv"))
}
