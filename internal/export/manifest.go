// Package export renders packing results to the formats a warehouse
// floor and a shipping desk consume: CSV/Excel placement rows, a PDF
// packing manifest, and QR-coded container labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cratepack/internal/model"
)

var placementColors = []struct{ R, G, B int }{
	{76, 175, 80},  // green
	{33, 150, 243}, // blue
	{255, 152, 0},  // orange
	{156, 39, 176}, // purple
	{0, 188, 212},  // cyan
	{244, 67, 54},  // red
	{255, 235, 59}, // yellow
	{121, 85, 72},  // brown
}

const (
	pageWidth    = 210.0 // A4 portrait, mm
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ManifestPDF writes one page per layer of every container result in
// orderResult, each showing a top-down sketch of that layer plus a
// placement table, followed by a summary page.
func ManifestPDF(path string, orderResult *model.OrderResult) error {
	if len(orderResult.ContainerResults) == 0 {
		return fmt.Errorf("no container results to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, cr := range orderResult.ContainerResults {
		for layerIdx, layer := range cr.Layers {
			pdf.AddPage()
			renderLayerPage(pdf, orderResult.Order.ID, cr, layer, layerIdx+1)
		}
	}

	pdf.AddPage()
	renderManifestSummary(pdf, orderResult)

	return pdf.OutputFileAndClose(path)
}

func renderLayerPage(pdf *fpdf.Fpdf, orderID string, cr *model.ContainerResult, layer *model.Layer, layerNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Order %s / Box %s (%s) - Layer %d", orderID, cr.ID, cr.Container.ContainerType, layerNum)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Base Y %.0f | Items %d | Box %.0fx%.0fx%.0f cm",
		layer.BaseY, len(layer.Placements), cr.Container.Width, cr.Container.Height, cr.Container.Length)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 20

	scaleX := drawWidth / cr.Container.Width
	scaleZ := drawHeight / cr.Container.Length
	scale := math.Min(scaleX, scaleZ)

	canvasW := cr.Container.Width * scale
	canvasL := cr.Container.Length * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(235, 235, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasL, "FD")

	for i, p := range layer.Placements {
		col := placementColors[i%len(placementColors)]
		w, _, l := p.RotatedDimensions()
		px := offsetX + p.X*scale
		pz := offsetY + p.Z*scale
		pw := w * scale
		pl := l * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, pz, pw, pl, "FD")

		if pw > 12 && pl > 6 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(0, 0, 0)
			label := p.Item.ID
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, pz+pl/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}
	pdf.SetTextColor(0, 0, 0)

	drawPlacementTable(pdf, layer, offsetY+canvasL+6)
}

func drawPlacementTable(pdf *fpdf.Fpdf, layer *model.Layer, startY float64) {
	if len(layer.Placements) == 0 {
		return
	}
	colWidths := []float64{35, 25, 45, 45}
	headers := []string{"Item", "Orientation", "Position (x,y,z)", "Dims (w,h,l)"}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	y := startY
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 8)
	for i, p := range layer.Placements {
		w, h, l := p.RotatedDimensions()
		row := []string{
			p.Item.ID,
			p.Orientation.String(),
			fmt.Sprintf("%.0f,%.0f,%.0f", p.X, p.Y, p.Z),
			fmt.Sprintf("%.0fx%.0fx%.0f", w, h, l),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x = marginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "L", true, 0, "")
			x += colWidths[j]
		}
		y += 6
	}
}

func renderManifestSummary(pdf *fpdf.Fpdf, orderResult *model.OrderResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Manifest Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	oversized, leftover := orderResult.AllRejected()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overview", "", 0, "L", false, 0, "")
	y += 9

	rows := []struct{ label, value string }{
		{"Order ID", orderResult.Order.ID},
		{"Containers Used", fmt.Sprintf("%d", len(orderResult.ContainerResults))},
		{"Items Packed", fmt.Sprintf("%d", len(orderResult.Order.Packed))},
		{"Oversized Items", fmt.Sprintf("%d", len(oversized))},
		{"Leftover Items", fmt.Sprintf("%d", len(leftover))},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, r.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, r.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by cratepack", "", 0, "C", false, 0, "")
}
