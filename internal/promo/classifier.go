package promo

import (
	"github.com/noah-isme/storefront-bonus/internal/basket"
)

// IsAutomatic reports whether the product's bonus promotions apply silently,
// without offering the shopper a choice. A promotion is automatic when the
// product carries promotion tags but none of them surface a discount line in
// the basket: the platform already added the bonus items itself. A product with
// no promotion tags at all is not automatic.
func IsAutomatic(b *basket.Basket, productID string, lookup Lookup, rules RuleQualifiers) bool {
	if b == nil || productID == "" {
		return false
	}
	candidates := lookup.CandidatePromotionIDs(productID)
	if len(candidates) == 0 {
		return false
	}
	for _, promotionID := range candidates {
		if _, ok := b.DiscountLineForPromotion(promotionID); ok {
			return false
		}
	}
	return true
}

// ShouldShowSelection reports whether the storefront should present the bonus
// product selection UI for the product: it must carry promotion tags, must not
// itself be listed as a bonus product, and its promotions must not be automatic.
func ShouldShowSelection(b *basket.Basket, productID string, lookup Lookup, rules RuleQualifiers) bool {
	if b == nil || productID == "" {
		return false
	}
	if len(lookup.CandidatePromotionIDs(productID)) == 0 {
		return false
	}
	if b.ListsBonusProduct(productID) {
		return false
	}
	return !IsAutomatic(b, productID, lookup, rules)
}
