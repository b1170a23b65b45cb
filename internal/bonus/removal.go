package bonus

import (
	"github.com/noah-isme/storefront-bonus/internal/basket"
)

// BonusItemsToRemove finds every basket line that must go when the shopper
// removes the given bonus line: all bonus units of the same product granted by
// the same promotion, across every discount line that promotion produced. A
// target whose discount line cannot be resolved scopes the removal to itself.
func BonusItemsToRemove(b *basket.Basket, target basket.ProductItem) []basket.ProductItem {
	if b == nil || !target.BonusProductLineItem {
		return nil
	}
	discountLine, ok := b.DiscountLine(target.BonusDiscountLineItemID)
	if !ok {
		return []basket.ProductItem{target}
	}
	var relatedIDs []string
	for _, d := range b.BonusDiscountLineItems {
		if d.PromotionID == discountLine.PromotionID {
			relatedIDs = append(relatedIDs, d.ID)
		}
	}
	var out []basket.ProductItem
	for _, it := range b.BonusLines(relatedIDs...) {
		if it.ProductID == target.ProductID {
			out = append(out, it)
		}
	}
	return out
}
