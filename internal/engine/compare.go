package engine

import (
	"time"

	"github.com/piwi3910/cratepack/internal/model"
)

// ComparisonScenario names a catalogue to try packing the same item list
// against, so an operator can compare e.g. the standard catalogue
// against a holiday oversized one before committing to a batch run.
type ComparisonScenario struct {
	Name      string
	Catalogue []model.Container
}

// ComparisonResult holds the packed outcome and derived statistics for
// one scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	OrderResult    *model.OrderResult
	Err            error
	ContainerCount int
	OversizedCount int
	LeftoverCount  int
	FillRatio      float64 // used volume / sum of gross container volume, 0 on failure
}

// CompareScenarios packs an identical copy of items against every
// scenario's catalogue and reports comparable statistics side by side.
// Each scenario gets its own Order, since RunOrder mutates the order it
// is given.
func CompareScenarios(items []model.Item, scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		order := model.NewOrder("", time.Time{})
		order.AddItems(append([]model.Item(nil), items...))
		orderResult := model.NewOrderResult(order)

		err := RunOrder(orderResult, scenario.Catalogue)

		cr := ComparisonResult{Scenario: scenario, OrderResult: orderResult, Err: err}
		if err == nil {
			oversized, leftover := orderResult.AllRejected()
			cr.ContainerCount = len(orderResult.ContainerResults)
			cr.OversizedCount = len(oversized)
			cr.LeftoverCount = len(leftover)
			cr.FillRatio = fillRatio(orderResult)
		}
		results = append(results, cr)
	}

	return results
}

func fillRatio(or *model.OrderResult) float64 {
	var used, gross float64
	for _, cr := range or.ContainerResults {
		gross += cr.Container.GrossVolume()
		for _, p := range cr.AllPlacements() {
			used += p.Item.Volume()
		}
	}
	if gross == 0 {
		return 0
	}
	return used / gross
}

// BuildFillPercentageScenarios generates what-if scenarios that vary the
// max-fill percentage of every container in the base catalogue, so an
// operator can see the effect of packing containers more or less full
// before running a batch for real.
func BuildFillPercentageScenarios(base []model.Container) []ComparisonScenario {
	variants := []struct {
		name    string
		maxFill float64
	}{
		{"Current fill limits", 0},
		{"Looser fill (+10%)", 10},
		{"Tighter fill (-10%)", -10},
	}

	scenarios := make([]ComparisonScenario, 0, len(variants))
	for _, v := range variants {
		catalogue := make([]model.Container, len(base))
		for i, c := range base {
			if v.maxFill != 0 {
				c = model.NewContainer(c.Width, c.Height, c.Length, c.OwnWeightG, c.MaxWeightG,
					c.ContainerType, c.Description, c.Remark, c.MinFillPercentage, clampFill(c.MaxFillPercentage+v.maxFill))
			}
			catalogue[i] = c
		}
		scenarios = append(scenarios, ComparisonScenario{Name: v.name, Catalogue: catalogue})
	}
	return scenarios
}

func clampFill(pct float64) float64 {
	if pct < 1 {
		return 1
	}
	if pct > 100 {
		return 100
	}
	return pct
}
