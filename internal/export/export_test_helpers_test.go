package export

import (
	"time"

	"github.com/piwi3910/cratepack/internal/model"
)

// buildTestOrderResult builds a small, realistic packed order for tests.
func buildTestOrderResult() *model.OrderResult {
	order := model.NewOrder("order-1", time.Unix(0, 0))
	container := model.NewContainer(100, 100, 100, 50, 50000, "M", "Medium parcel", "", 5, 80)
	cr := model.NewContainerResult(container)

	layer := model.NewLayer(0, container.Width, container.Height, container.Length)
	itemA := model.NewItem("Product_A", 50, 50, 50, 1000, 100, "A1")
	itemB := model.NewItem("Product_B", 25, 25, 25, 500, 100, "A2")
	layer.Placements = append(layer.Placements,
		model.Placement{Item: itemA, Orientation: model.RT1, X: 0, Y: 0, Z: 0},
		model.Placement{Item: itemB, Orientation: model.RT1, X: 50, Y: 0, Z: 0},
	)
	cr.Layers = append(cr.Layers, layer)

	order.Packed = []model.Item{itemA, itemB}

	orderResult := model.NewOrderResult(order)
	orderResult.ContainerResults = append(orderResult.ContainerResults, cr)
	return orderResult
}
