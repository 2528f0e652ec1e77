package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPackWatch_ReturnsErrorWhenOrdersDirMissing(t *testing.T) {
	opts := packOpts{
		ordersPath: "/no/such/directory/orders.csv",
		itemsPath:  "/no/such/directory/items.csv",
		outputDir:  t.TempDir(),
		formats:    "csv",
	}

	err := runPackWatch(context.Background(), opts)

	assert.Error(t, err)
}
