package model

import "math"

// VoidFillDensityGPerCM3 is the assumed mass of loose-fill packing
// material (paper, air pillows, peanuts) per cubic centimetre of
// unused container volume. A rough constant, not a precision figure.
const VoidFillDensityGPerCM3 = 0.02

// PackingMaterialEstimate is the derived void-fill requirement for one
// container result.
type PackingMaterialEstimate struct {
	ContainerResultID string
	UsedVolume        float64
	GrossVolume       float64
	VoidVolume        float64
	VoidFillGrams     float64
}

// EstimatePackingMaterial computes the void-fill estimate for a packed
// container result: unused volume times the density constant, with a
// waste factor the same way the reference purchase estimate applies one
// to sheet counts.
func EstimatePackingMaterial(cr *ContainerResult, wastePercent float64) PackingMaterialEstimate {
	var used float64
	for _, p := range cr.AllPlacements() {
		used += p.Item.Volume()
	}
	gross := cr.Container.GrossVolume()
	void := math.Max(0, gross-used)
	wasteFactor := 1.0 + wastePercent/100.0
	return PackingMaterialEstimate{
		ContainerResultID: cr.ID,
		UsedVolume:        used,
		GrossVolume:       gross,
		VoidVolume:        void,
		VoidFillGrams:     void * VoidFillDensityGPerCM3 * wasteFactor,
	}
}

// EstimatePackingMaterialForOrder returns a per-container breakdown for
// every container result in an order result, mirroring the reference's
// per-part edge-banding breakdown shape.
func EstimatePackingMaterialForOrder(or *OrderResult, wastePercent float64) []PackingMaterialEstimate {
	estimates := make([]PackingMaterialEstimate, 0, len(or.ContainerResults))
	for _, cr := range or.ContainerResults {
		estimates = append(estimates, EstimatePackingMaterial(cr, wastePercent))
	}
	return estimates
}
