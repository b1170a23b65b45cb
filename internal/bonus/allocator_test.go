package bonus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/storefront-bonus/internal/basket"
	"github.com/noah-isme/storefront-bonus/internal/promo"
)

const promoID = "bonus-tie-promo"

// suitBasket builds a basket with purchased suit lines and bonus tie units
// granted by one list-based promotion.
func suitBasket(suits []basket.ProductItem, bonusQty, maxBonusItems int) *basket.Basket {
	b := &basket.Basket{
		ProductItems: suits,
		BonusDiscountLineItems: []basket.BonusDiscountLineItem{
			{
				ID:            "bdli-1",
				PromotionID:   promoID,
				MaxBonusItems: maxBonusItems,
				BonusProducts: []basket.BonusProduct{{ProductID: "tie", ProductName: "Silk Tie"}},
			},
		},
	}
	if bonusQty > 0 {
		b.ProductItems = append(b.ProductItems, basket.ProductItem{
			ItemID:                  "bonus-1",
			ProductID:               "tie",
			Quantity:                bonusQty,
			BonusProductLineItem:    true,
			BonusDiscountLineItemID: "bdli-1",
		})
	}
	return b
}

func suitLookup(productIDs ...string) promo.Lookup {
	lookup := promo.Lookup{}
	for _, id := range productIDs {
		lookup[id] = promo.ProductEntry{ProductPromotions: []promo.ProductPromotion{{PromotionID: promoID}}}
	}
	return lookup
}

func TestAllocateTwoEqualSuits(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1},
	}
	b := suitBasket(suits, 4, 4)
	lookup := suitLookup("suit-40", "suit-42")

	first := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Len(t, first, 1)
	require.Equal(t, "tie", first[0].ProductID)
	require.Equal(t, 2, first[0].Quantity)

	second := AllocateForCartItem(b, suits[1], lookup, nil)
	require.Len(t, second, 1)
	require.Equal(t, 2, second[0].Quantity)
}

func TestAllocateProportionalFloor(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 2},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1},
	}
	b := suitBasket(suits, 4, 4)
	lookup := suitLookup("suit-40", "suit-42")

	// capacity per line floors: 4/3*2 -> 2, 4/3*1 -> 1, one token unallocated
	first := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Len(t, first, 1)
	require.Equal(t, 2, first[0].Quantity)

	second := AllocateForCartItem(b, suits[1], lookup, nil)
	require.Len(t, second, 1)
	require.Equal(t, 1, second[0].Quantity)
}

func TestAllocateSingleQualifierShortcut(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1},
	}
	// three bonus units in cart even though the cap is one: cart state wins
	b := suitBasket(suits, 3, 1)
	lookup := suitLookup("suit-40")

	got := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Len(t, got, 1)
	require.Equal(t, "tie", got[0].ProductID)
	require.Equal(t, "Silk Tie", got[0].ProductName)
	require.Equal(t, 3, got[0].Quantity)
}

func TestAllocatePickupPriority(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-del", ProductID: "suit-40", Quantity: 1, ShipmentID: "home"},
		{ItemID: "suit-pick", ProductID: "suit-42", Quantity: 1, ShipmentID: "store"},
	}
	b := suitBasket(suits, 1, 3)
	b.Shipments = []basket.Shipment{
		{ShipmentID: "home", ShippingMethod: &basket.ShippingMethod{}},
		{ShipmentID: "store", ShippingMethod: &basket.ShippingMethod{StorePickupEnabled: true}, FromStoreID: "store-7"},
	}
	lookup := suitLookup("suit-40", "suit-42")

	// per-line capacity is one, but only one token exists; the pickup line
	// drains the pool first despite its later cart position
	pickup := AllocateForCartItem(b, suits[1], lookup, nil)
	require.Len(t, pickup, 1)
	require.Equal(t, 1, pickup[0].Quantity)

	delivery := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Empty(t, delivery)
}

func TestAllocatePositionTiebreak(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1},
	}
	b := suitBasket(suits, 1, 3)
	lookup := suitLookup("suit-40", "suit-42")

	first := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Len(t, first, 1)
	require.Equal(t, 1, first[0].Quantity)

	second := AllocateForCartItem(b, suits[1], lookup, nil)
	require.Empty(t, second)
}

func TestAllocateMalformedShipmentIsDelivery(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1, ShipmentID: "ghost"},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1, ShipmentID: "nomethod"},
	}
	b := suitBasket(suits, 1, 3)
	b.Shipments = []basket.Shipment{{ShipmentID: "nomethod"}}
	lookup := suitLookup("suit-40", "suit-42")

	// neither line resolves to pickup, so cart position decides
	first := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Len(t, first, 1)
	second := AllocateForCartItem(b, suits[1], lookup, nil)
	require.Empty(t, second)
}

func TestAllocateConservation(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 3},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 2},
		{ItemID: "suit-c", ProductID: "suit-44", Quantity: 1},
	}
	b := suitBasket(suits, 5, 7)
	lookup := suitLookup("suit-40", "suit-42", "suit-44")

	var allocated int
	for _, line := range suits {
		for _, a := range AllocateForCartItem(b, line, lookup, nil) {
			allocated += a.Quantity
		}
	}
	require.LessOrEqual(t, allocated, 5)
}

func TestAllocateIdempotent(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 2},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1},
	}
	b := suitBasket(suits, 4, 4)
	lookup := suitLookup("suit-40", "suit-42")

	first := AllocateForCartItem(b, suits[0], lookup, nil)
	second := AllocateForCartItem(b, suits[0], lookup, nil)
	require.Equal(t, first, second)
}

func TestAllocateNoQualifyingPromotions(t *testing.T) {
	suits := []basket.ProductItem{{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1}}
	b := suitBasket(suits, 2, 2)

	require.Empty(t, AllocateForCartItem(b, suits[0], promo.Lookup{}, nil))
	require.Empty(t, AllocateForCartItem(nil, suits[0], suitLookup("suit-40"), nil))
}

func TestAllocateNoBonusUnitsInCart(t *testing.T) {
	suits := []basket.ProductItem{
		{ItemID: "suit-a", ProductID: "suit-40", Quantity: 1},
		{ItemID: "suit-b", ProductID: "suit-42", Quantity: 1},
	}
	b := suitBasket(suits, 0, 4)
	lookup := suitLookup("suit-40", "suit-42")

	require.Empty(t, AllocateForCartItem(b, suits[0], lookup, nil))
}
