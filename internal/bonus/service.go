package bonus

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/storefront-bonus/internal/basket"
	"github.com/noah-isme/storefront-bonus/internal/obs"
	"github.com/noah-isme/storefront-bonus/internal/promo"
)

// ErrNotFound indicates the requested basket line could not be located.
var ErrNotFound = errors.New("basket line not found")

// ErrInvalidInput is returned when the provided arguments are invalid.
var ErrInvalidInput = errors.New("invalid input")

// Eligibility summarises a product's bonus promotion standing for the
// storefront.
type Eligibility struct {
	ProductID     string          `json:"productId"`
	PromotionIDs  []string        `json:"promotionIds,omitempty"`
	CalloutMsg    string          `json:"calloutMsg,omitempty"`
	Capacity      CapacitySummary `json:"capacity"`
	Automatic     bool            `json:"automatic"`
	ShowSelection bool            `json:"showSelection"`
}

// Service fronts the pure bonus computations for callers that own the fetched
// promotion data. It holds no basket state; every method re-derives its result
// from the snapshot it is handed.
type Service struct {
	Lookup              promo.Lookup
	Rules               promo.RuleQualifiers
	Logger              zerolog.Logger
	DefaultSelectionQty int
}

// EligibilityFor reports the product's qualifying promotions, aggregate bonus
// capacity, and whether the selection UI applies.
func (s *Service) EligibilityFor(b *basket.Basket, productID string) (Eligibility, error) {
	if s == nil {
		return Eligibility{}, errors.New("bonus service not configured")
	}
	if productID == "" {
		return Eligibility{}, fmt.Errorf("product id required: %w", ErrInvalidInput)
	}
	ids := promo.QualifiedPromotionIDs(b, productID, s.Lookup, s.Rules)
	elig := Eligibility{
		ProductID:     productID,
		PromotionIDs:  ids,
		Capacity:      CapacityForPromotions(b, ids),
		Automatic:     promo.IsAutomatic(b, productID, s.Lookup, s.Rules),
		ShowSelection: promo.ShouldShowSelection(b, productID, s.Lookup, s.Rules),
	}
	for _, id := range ids {
		if msg := s.Lookup.CalloutFor(productID, id); msg != "" {
			elig.CalloutMsg = msg
			break
		}
	}
	s.Logger.Debug().
		Str("product_id", productID).
		Strs("promotion_ids", ids).
		Bool("show_selection", elig.ShowSelection).
		Msg("bonus eligibility resolved")
	return elig, nil
}

// AllocationFor resolves the bonus units belonging to the purchased line with
// the given item id.
func (s *Service) AllocationFor(b *basket.Basket, itemID string) ([]Allocation, error) {
	if s == nil {
		return nil, errors.New("bonus service not configured")
	}
	line, ok := b.Line(itemID)
	if !ok {
		countAllocation("not_found")
		return nil, fmt.Errorf("item %q: %w", itemID, ErrNotFound)
	}
	allocations := AllocateForCartItem(b, line, s.Lookup, s.Rules)
	var units int
	for _, a := range allocations {
		units += a.Quantity
	}
	if units > 0 {
		countAllocation("allocated")
		if obs.BonusUnitsAllocated != nil {
			obs.BonusUnitsAllocated.Add(float64(units))
		}
	} else {
		countAllocation("empty")
	}
	s.Logger.Debug().
		Str("item_id", itemID).
		Str("product_id", line.ProductID).
		Int("bonus_units", units).
		Msg("bonus allocation computed")
	return allocations, nil
}

// RemovalSetFor resolves every bonus line that must be removed together with
// the given bonus line.
func (s *Service) RemovalSetFor(b *basket.Basket, itemID string) ([]basket.ProductItem, error) {
	if s == nil {
		return nil, errors.New("bonus service not configured")
	}
	line, ok := b.Line(itemID)
	if !ok {
		return nil, fmt.Errorf("item %q: %w", itemID, ErrNotFound)
	}
	if !line.BonusProductLineItem {
		return nil, fmt.Errorf("item %q is not a bonus line: %w", itemID, ErrInvalidInput)
	}
	set := BonusItemsToRemove(b, line)
	if obs.RemovalSetSize != nil {
		obs.RemovalSetSize.Observe(float64(len(set)))
	}
	return set, nil
}

// PlanSelection distributes a requested bonus quantity across the promotion's
// discount lines with remaining capacity.
func (s *Service) PlanSelection(b *basket.Basket, promotionID string, requested int) ([]Distribution, error) {
	if s == nil {
		return nil, errors.New("bonus service not configured")
	}
	if promotionID == "" {
		return nil, fmt.Errorf("promotion id required: %w", ErrInvalidInput)
	}
	if requested < 1 {
		requested = s.DefaultSelectionQty
	}
	summary := CapacityForPromotions(b, []string{promotionID})
	maxAllowed := summary.AggregatedMaxBonusItems - summary.AggregatedSelectedItems
	if maxAllowed < 0 {
		maxAllowed = 0
	}
	plan := PlanDistribution(requested, maxAllowed, AvailableDiscountLines(b, promotionID))
	if len(plan) == 0 {
		countDistribution("exhausted")
	} else {
		countDistribution("planned")
	}
	s.Logger.Debug().
		Str("promotion_id", promotionID).
		Int("requested", requested).
		Int("buckets", len(plan)).
		Msg("bonus distribution planned")
	return plan, nil
}

func countAllocation(result string) {
	if obs.AllocationsTotal != nil {
		obs.AllocationsTotal.WithLabelValues(result).Inc()
	}
}

func countDistribution(result string) {
	if obs.DistributionPlansTotal != nil {
		obs.DistributionPlansTotal.WithLabelValues(result).Inc()
	}
}
