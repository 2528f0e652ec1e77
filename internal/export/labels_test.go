package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsPDF_WritesFile(t *testing.T) {
	orderResult := buildTestOrderResult()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	err := LabelsPDF(path, []*model.OrderResult{orderResult})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCollectLabelInfos(t *testing.T) {
	orderResult := buildTestOrderResult()
	labels := CollectLabelInfos([]*model.OrderResult{orderResult})

	require.Len(t, labels, 1)
	assert.Equal(t, "order-1", labels[0].OrderID)
	assert.Equal(t, "M", labels[0].ContainerType)
	assert.Equal(t, 2, labels[0].ItemCount)
}

func TestLabelsPDF_NoContainers(t *testing.T) {
	err := LabelsPDF(filepath.Join(t.TempDir(), "out.pdf"), nil)
	assert.Error(t, err)
}
