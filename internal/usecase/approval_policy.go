package usecase

// The two review triggers are deliberately asymmetric: creation is gated by an
// absolute price ceiling, updates by growth relative to the pre-update price.
// An existing product can therefore be nudged to any absolute price without
// review as long as no single update raises it by more than half.

// reviewRequiredOnCreate reports whether a new product at the given price must
// enter the approval queue instead of taking the caller-requested status.
func reviewRequiredOnCreate(price, maxAutoApprovePrice float64) bool {
	return price > maxAutoApprovePrice
}

// reviewRequiredOnUpdate reports whether a price change must enter the
// approval queue. The bar is strictly more than 1.5x the current price.
func reviewRequiredOnUpdate(oldPrice, newPrice float64) bool {
	return newPrice > oldPrice+oldPrice/2
}
