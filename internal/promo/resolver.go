package promo

import (
	"github.com/noah-isme/storefront-bonus/internal/basket"
)

// QualifiedPromotionIDs resolves which bonus promotions the product actually
// qualifies for in the given basket, not merely which ones it is tagged with.
//
// A candidate promotion from the lookup survives only when the basket carries a
// discount line for it and the product passes that line's qualification check:
// rule-based lines require the product (or its master product) to appear in the
// external rule qualifiers, list-based lines require a matching price
// adjustment on the product's purchased line. A purchased line with no price
// adjustments at all qualifies by default.
func QualifiedPromotionIDs(b *basket.Basket, productID string, lookup Lookup, rules RuleQualifiers) []string {
	if b == nil || productID == "" {
		return nil
	}
	candidates := lookup.CandidatePromotionIDs(productID)
	if len(candidates) == 0 {
		return nil
	}
	var qualified []string
	for _, promotionID := range candidates {
		line, ok := b.DiscountLineForPromotion(promotionID)
		if !ok {
			continue
		}
		switch line.Kind() {
		case basket.PromotionKindRuleBased:
			if rules.Qualifies(promotionID, productID) {
				qualified = append(qualified, promotionID)
				continue
			}
			if master := lookup[productID].MasterProductID; master != "" && rules.Qualifies(promotionID, master) {
				qualified = append(qualified, promotionID)
			}
		case basket.PromotionKindListBased:
			if listQualifies(b, productID, promotionID) {
				qualified = append(qualified, promotionID)
			}
		}
	}
	return qualified
}

// listQualifies checks the product's purchased line for a price adjustment
// recording the promotion. Lines with no adjustments qualify by default, which
// keeps baskets written before adjustment tracking working.
func listQualifies(b *basket.Basket, productID, promotionID string) bool {
	line, ok := b.LineForProduct(productID)
	if !ok {
		return false
	}
	if len(line.PriceAdjustments) == 0 {
		return true
	}
	for _, adj := range line.PriceAdjustments {
		if adj.PromotionID == promotionID {
			return true
		}
	}
	return false
}
