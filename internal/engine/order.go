package engine

import "github.com/piwi3910/cratepack/internal/model"

// InitialContainerSelection walks catalogue (ascending by max contents
// volume) looking for the smallest container that accepts the order's
// pending items on volume, weight and dimension grounds. lastBox, when
// non-nil, restricts the walk to strictly larger containers, since this
// call is also used to escalate after a rolled-back attempt.
//
// Containers tagged "Undersized" or "Multi" in their description are
// skipped by the walk itself; the early return below hands back
// catalogue[0] whatever its description. The first two candidates that
// pass that filter are examined without the undersize short-circuit
// below applying to them; from the third candidate onward, once the
// order's total volume is less than the candidate's minimum accepted
// volume, the walk gives up early and returns the smallest catalogue
// entry rather than continuing to examine larger ones that would only
// be a worse volume-utilisation fit.
func InitialContainerSelection(catalogue []model.Container, order *model.Order, lastBox *model.Container) model.Container {
	v := order.TotalEffectiveVolume()
	g := order.TotalWeight()
	d := order.MaxDimensions()

	var fallback model.Container
	ignore := 2
	for _, b := range catalogue {
		if b.ExcludedFromAutoSelection() {
			continue
		}
		if lastBox != nil && b.MaxContentVolume() <= lastBox.MaxContentVolume() {
			continue
		}

		fallback = b

		if b.MaxContentVolume() > 1 && b.FitsWithin(v, g) && b.FitsWithDimensions(d) {
			return b
		}

		if ignore > 0 {
			ignore--
		} else if v < b.MinContentVolume() {
			return catalogue[0]
		}
	}
	return fallback
}

// RunOrder drives the escalation loop of section 4.5: select a
// container, attempt to pack every pending item into it, then commit,
// commit-with-permanent-leftover, or roll back and escalate to a
// strictly larger container. Returns ErrNoFittingContainer if the
// largest catalogue entry still leaves oversized items.
func RunOrder(orderResult *model.OrderResult, catalogue []model.Container) error {
	if len(catalogue) == 0 {
		return ErrNoFittingContainer
	}

	sorted := append([]model.Container(nil), catalogue...)
	model.SortCatalogueAscending(sorted)
	largest := sorted[len(sorted)-1]

	order := orderResult.Order
	order.SortPending()

	var lastBox *model.Container
	maxAttempts := len(sorted) + 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := InitialContainerSelection(sorted, order, lastBox)
		isLast := b == largest

		cr := model.NewContainerResult(b)
		PackOrder(cr, order)

		if isLast && len(cr.Oversized) > 0 {
			return ErrNoFittingContainer
		}

		if len(cr.Leftover) == 0 {
			order.SecurePacked()
			order.ResetRejected()
			orderResult.ContainerResults = append(orderResult.ContainerResults, cr)
			return nil
		}

		if isLast {
			order.SecurePacked()
			orderResult.ContainerResults = append(orderResult.ContainerResults, cr)
			return nil
		}

		order.ResetAll()
		chosen := b
		lastBox = &chosen
	}
	return ErrNoFittingContainer
}
