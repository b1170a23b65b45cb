package promo

// ProductPromotion is one promotion tag attached to a product by the commerce
// platform, with the optional storefront callout message.
type ProductPromotion struct {
	PromotionID string `json:"promotionId"`
	CalloutMsg  string `json:"calloutMsg,omitempty"`
}

// ProductEntry is the promotion data fetched for a single product.
type ProductEntry struct {
	ProductPromotions []ProductPromotion `json:"productPromotions,omitempty"`
	MasterProductID   string             `json:"masterProductId,omitempty"`
}

// Lookup maps product ids to their fetched promotion data. A nil lookup
// behaves as empty.
type Lookup map[string]ProductEntry

// RuleQualifiers maps a rule-based promotion id to the set of product ids known
// to qualify for it. Resolution happens externally; an absent entry fails closed.
type RuleQualifiers map[string]map[string]struct{}

// NewRuleQualifiers builds a RuleQualifiers from plain id slices.
func NewRuleQualifiers(byPromotion map[string][]string) RuleQualifiers {
	if len(byPromotion) == 0 {
		return nil
	}
	out := make(RuleQualifiers, len(byPromotion))
	for promotionID, productIDs := range byPromotion {
		set := make(map[string]struct{}, len(productIDs))
		for _, id := range productIDs {
			if id != "" {
				set[id] = struct{}{}
			}
		}
		out[promotionID] = set
	}
	return out
}

// Qualifies reports whether the product is a known qualifier for the rule-based
// promotion.
func (r RuleQualifiers) Qualifies(promotionID, productID string) bool {
	if r == nil || promotionID == "" || productID == "" {
		return false
	}
	set, ok := r[promotionID]
	if !ok {
		return false
	}
	_, ok = set[productID]
	return ok
}

// CandidatePromotionIDs returns the promotion ids the lookup tags the product
// with, in lookup order.
func (l Lookup) CandidatePromotionIDs(productID string) []string {
	entry, ok := l[productID]
	if !ok {
		return nil
	}
	var ids []string
	for _, p := range entry.ProductPromotions {
		if p.PromotionID != "" {
			ids = append(ids, p.PromotionID)
		}
	}
	return ids
}

// CalloutFor returns the callout message attached to the promotion tag on the
// product, if any.
func (l Lookup) CalloutFor(productID, promotionID string) string {
	entry, ok := l[productID]
	if !ok {
		return ""
	}
	for _, p := range entry.ProductPromotions {
		if p.PromotionID == promotionID {
			return p.CalloutMsg
		}
	}
	return ""
}
