package bonus

// Distribution is one basket-addition request: how many bonus units to attach
// to a specific discount line.
type Distribution struct {
	DiscountLineID string `json:"bonusDiscountLineItemId"`
	Quantity       int    `json:"quantity"`
}

// PlanDistribution splits a requested bonus quantity across the available
// discount lines, greedily in the given order, never exceeding a line's
// remaining capacity. A requested quantity below one defaults to one; a
// positive maxAllowed caps the request.
func PlanDistribution(requested, maxAllowed int, available []AvailableLine) []Distribution {
	if requested < 1 {
		requested = 1
	}
	if maxAllowed > 0 && requested > maxAllowed {
		requested = maxAllowed
	}
	remaining := requested
	var plan []Distribution
	for _, line := range available {
		if remaining <= 0 {
			break
		}
		if line.Available <= 0 {
			continue
		}
		take := line.Available
		if take > remaining {
			take = remaining
		}
		plan = append(plan, Distribution{DiscountLineID: line.DiscountLineID, Quantity: take})
		remaining -= take
	}
	return plan
}
