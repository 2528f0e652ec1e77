package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/piwi3910/cratepack/internal/model"
)

var outputColumns = []string{
	"Order ID", "Box ID", "Box Type", "Box Width", "Box Height", "Box Depth",
	"Item Name", "Item Width", "Item Height", "Item Depth",
	"Item Position X", "Item Position Y", "Item Position Z",
}

// WriteCSV writes one row per placed item across orderResults, in the
// exact column order the core's output contract specifies.
func WriteCSV(w io.Writer, orderResults []*model.OrderResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rowsFor(orderResults) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func rowsFor(orderResults []*model.OrderResult) [][]string {
	var rows [][]string
	for _, or := range orderResults {
		for _, cr := range or.ContainerResults {
			for _, p := range cr.AllPlacements() {
				w, h, l := p.RotatedDimensions()
				rows = append(rows, []string{
					or.Order.ID,
					cr.ID,
					cr.Container.ContainerType,
					fmt.Sprintf("%g", cr.Container.Width),
					fmt.Sprintf("%g", cr.Container.Height),
					fmt.Sprintf("%g", cr.Container.Length),
					p.Item.ID,
					fmt.Sprintf("%g", w),
					fmt.Sprintf("%g", h),
					fmt.Sprintf("%g", l),
					fmt.Sprintf("%g", p.X),
					fmt.Sprintf("%g", p.Y),
					fmt.Sprintf("%g", p.Z),
				})
			}
		}
	}
	return rows
}
