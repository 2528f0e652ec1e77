package engine

import "errors"

// Error kinds the core can surface. Only ErrNoFittingContainer and
// ErrInvalidPlacementCoordinates are terminal; everything else is
// recoverable bookkeeping recorded on a container or order result.
var (
	ErrItemOversized               = errors.New("item oversized for container")
	ErrNoLayerFits                 = errors.New("no layer fits item")
	ErrNoFittingContainer          = errors.New("no fitting container for order")
	ErrInvalidPlacementCoordinates = errors.New("invalid placement coordinates")
	ErrMissingItemDefinition       = errors.New("missing item definition")
)
