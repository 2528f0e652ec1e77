package export

import (
	"strings"
	"testing"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	orderResult := buildTestOrderResult()

	var buf strings.Builder
	err := WriteCSV(&buf, []*model.OrderResult{orderResult})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3) // header + 2 placements

	assert.Equal(t, "Order ID,Box ID,Box Type,Box Width,Box Height,Box Depth,Item Name,Item Width,Item Height,Item Depth,Item Position X,Item Position Y,Item Position Z", lines[0])
	assert.Contains(t, lines[1], "order-1")
	assert.Contains(t, lines[1], "Product_A")
	assert.Contains(t, lines[2], "Product_B")
}

func TestWriteCSV_EmptyInput(t *testing.T) {
	var buf strings.Builder
	err := WriteCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, len(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")))
}
