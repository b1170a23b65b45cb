package bonus

import (
	"sort"

	"github.com/noah-isme/storefront-bonus/internal/basket"
	"github.com/noah-isme/storefront-bonus/internal/promo"
)

// Allocation is one product's share of the bonus units assigned to a cart line.
type Allocation struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
}

// token is a unit-quantity slice of a bonus line, used for sequential
// allocation.
type token struct {
	productID string
}

// qualifier is a purchased line competing for the shared bonus pool.
type qualifier struct {
	line     basket.ProductItem
	position int
	pickup   bool
}

// AllocateForCartItem resolves how many of the bonus units present in the
// basket belong to the target purchased line. Several purchased lines may
// qualify for the same promotion and share one pool of bonus units; allocations
// are disjoint and deterministic: store-pickup lines fill before delivery
// lines, earlier cart positions before later ones, and each line's share is
// capped proportionally to its quantity.
func AllocateForCartItem(b *basket.Basket, target basket.ProductItem, lookup promo.Lookup, rules promo.RuleQualifiers) []Allocation {
	if b == nil {
		return nil
	}
	targetIDs := promo.QualifiedPromotionIDs(b, target.ProductID, lookup, rules)
	if len(targetIDs) == 0 {
		return nil
	}
	targetSet := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targetSet[id] = struct{}{}
	}

	qualifiers := collectQualifiers(b, targetSet, lookup, rules)
	if len(qualifiers) == 0 {
		return nil
	}

	var discountLineIDs []string
	var totalCapacity int
	for _, d := range b.BonusDiscountLineItems {
		if _, ok := targetSet[d.PromotionID]; ok {
			discountLineIDs = append(discountLineIDs, d.ID)
			totalCapacity += d.MaxBonusItems
		}
	}
	bonusLines := b.BonusLines(discountLineIDs...)
	if len(bonusLines) == 0 {
		return nil
	}

	// A lone qualifying line owns every bonus unit in the cart, even past the
	// nominal cap: cart state wins over recomputing capacity.
	if len(qualifiers) == 1 {
		if qualifiers[0].line.ItemID != target.ItemID {
			return nil
		}
		return aggregateByProduct(b, bonusLines)
	}

	var totalQuantity int
	for _, q := range qualifiers {
		totalQuantity += q.line.EffectiveQuantity()
	}
	if totalQuantity == 0 {
		return nil
	}

	pool := expandTokens(bonusLines)

	sort.SliceStable(qualifiers, func(i, j int) bool {
		if qualifiers[i].pickup != qualifiers[j].pickup {
			return qualifiers[i].pickup
		}
		return qualifiers[i].position < qualifiers[j].position
	})

	var assigned []token
	for _, q := range qualifiers {
		capacity := totalCapacity * q.line.EffectiveQuantity() / totalQuantity
		if capacity < 0 {
			capacity = 0
		}
		if capacity > len(pool) {
			capacity = len(pool)
		}
		take := pool[:capacity]
		pool = pool[capacity:]
		if q.line.ItemID == target.ItemID {
			assigned = take
		}
		if len(pool) == 0 {
			break
		}
	}
	return aggregateTokens(b, assigned)
}

// collectQualifiers gathers every purchased line whose own qualified promotions
// intersect the target's, keeping cart position and shipment tier.
func collectQualifiers(b *basket.Basket, targetSet map[string]struct{}, lookup promo.Lookup, rules promo.RuleQualifiers) []qualifier {
	var out []qualifier
	for i, it := range b.ProductItems {
		if it.BonusProductLineItem {
			continue
		}
		ids := promo.QualifiedPromotionIDs(b, it.ProductID, lookup, rules)
		matched := false
		for _, id := range ids {
			if _, ok := targetSet[id]; ok {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		out = append(out, qualifier{
			line:     it,
			position: i,
			pickup:   b.IsStorePickup(it.ShipmentID),
		})
	}
	return out
}

func expandTokens(lines []basket.ProductItem) []token {
	var pool []token
	for _, it := range lines {
		for n := 0; n < it.EffectiveQuantity(); n++ {
			pool = append(pool, token{productID: it.ProductID})
		}
	}
	return pool
}

func aggregateTokens(b *basket.Basket, tokens []token) []Allocation {
	if len(tokens) == 0 {
		return nil
	}
	index := make(map[string]int, len(tokens))
	var out []Allocation
	for _, tk := range tokens {
		if i, ok := index[tk.productID]; ok {
			out[i].Quantity++
			continue
		}
		index[tk.productID] = len(out)
		out = append(out, Allocation{ProductID: tk.productID, ProductName: bonusProductName(b, tk.productID), Quantity: 1})
	}
	return out
}

func aggregateByProduct(b *basket.Basket, lines []basket.ProductItem) []Allocation {
	if len(lines) == 0 {
		return nil
	}
	index := make(map[string]int, len(lines))
	var out []Allocation
	for _, it := range lines {
		qty := it.EffectiveQuantity()
		if i, ok := index[it.ProductID]; ok {
			out[i].Quantity += qty
			continue
		}
		index[it.ProductID] = len(out)
		out = append(out, Allocation{ProductID: it.ProductID, ProductName: bonusProductName(b, it.ProductID), Quantity: qty})
	}
	return out
}

// bonusProductName resolves a display name from any list-based discount line
// cataloguing the product.
func bonusProductName(b *basket.Basket, productID string) string {
	if b == nil {
		return ""
	}
	for _, d := range b.BonusDiscountLineItems {
		for _, bp := range d.BonusProducts {
			if bp.ProductID == productID && bp.ProductName != "" {
				return bp.ProductName
			}
		}
	}
	return ""
}
