package pricing

import "errors"

var (
	errDualsDimensionMismatch = errors.New("pricing: duals length does not match number of clusters")
	errReducedCostInvariant   = errors.New("pricing: reduced-cost invariant violated")
	errDeadlineExceeded       = errors.New("pricing: deadline exceeded during branch and bound")
)
