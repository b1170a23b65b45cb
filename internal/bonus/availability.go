package bonus

import (
	"github.com/noah-isme/storefront-bonus/internal/basket"
)

// CapacitySummary aggregates bonus capacity across every discount line of a
// product's qualifying promotions.
type CapacitySummary struct {
	AggregatedMaxBonusItems int  `json:"aggregatedMaxBonusItems"`
	AggregatedSelectedItems int  `json:"aggregatedSelectedItems"`
	HasRemainingCapacity    bool `json:"hasRemainingCapacity"`
}

// AvailableLine pairs a discount line with its remaining bonus capacity.
type AvailableLine struct {
	DiscountLineID string `json:"bonusDiscountLineItemId"`
	Available      int    `json:"available"`
}

// RemainingCapacity computes how many bonus units the discount line can still
// justify: its capacity minus the bonus units already in the basket, clamped at
// zero. Baskets holding more bonus units than the cap never yield a negative.
func RemainingCapacity(b *basket.Basket, discountLineID string) int {
	line, ok := b.DiscountLine(discountLineID)
	if !ok {
		return 0
	}
	remaining := line.MaxBonusItems - selectedQuantity(b, discountLineID)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CapacityForPromotions sums capacity and consumption across all discount lines
// of the given promotions.
func CapacityForPromotions(b *basket.Basket, promotionIDs []string) CapacitySummary {
	var summary CapacitySummary
	if b == nil || len(promotionIDs) == 0 {
		return summary
	}
	ids := make(map[string]struct{}, len(promotionIDs))
	for _, id := range promotionIDs {
		ids[id] = struct{}{}
	}
	for _, d := range b.BonusDiscountLineItems {
		if _, ok := ids[d.PromotionID]; !ok {
			continue
		}
		summary.AggregatedMaxBonusItems += d.MaxBonusItems
		summary.AggregatedSelectedItems += selectedQuantity(b, d.ID)
	}
	summary.HasRemainingCapacity = summary.AggregatedSelectedItems < summary.AggregatedMaxBonusItems
	return summary
}

// AvailableDiscountLines returns the promotion's discount lines that still have
// capacity, in basket order.
func AvailableDiscountLines(b *basket.Basket, promotionID string) []AvailableLine {
	if b == nil || promotionID == "" {
		return nil
	}
	var lines []AvailableLine
	for _, d := range b.BonusDiscountLineItems {
		if d.PromotionID != promotionID {
			continue
		}
		if remaining := RemainingCapacity(b, d.ID); remaining > 0 {
			lines = append(lines, AvailableLine{DiscountLineID: d.ID, Available: remaining})
		}
	}
	return lines
}

// BonusProductsInCart reports the bonus units physically present in the basket
// for the given discount lines, aggregated by product. It reads cart state
// only; capacity caps are not applied here.
func BonusProductsInCart(b *basket.Basket, discountLineIDs ...string) []Allocation {
	return aggregateByProduct(b, b.BonusLines(discountLineIDs...))
}

func selectedQuantity(b *basket.Basket, discountLineID string) int {
	var selected int
	for _, it := range b.BonusLines(discountLineID) {
		selected += it.EffectiveQuantity()
	}
	return selected
}
