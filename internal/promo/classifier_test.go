package promo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/storefront-bonus/internal/basket"
)

func TestIsAutomatic(t *testing.T) {
	lookup := Lookup{"suit-40": {ProductPromotions: []ProductPromotion{{PromotionID: "p1"}}}}

	t.Run("no discount line means silently applied", func(t *testing.T) {
		b := &basket.Basket{
			ProductItems: []basket.ProductItem{{ItemID: "s1", ProductID: "suit-40", Quantity: 1}},
		}
		require.True(t, IsAutomatic(b, "suit-40", lookup, nil))
	})

	t.Run("discount line present means choice", func(t *testing.T) {
		b := &basket.Basket{
			ProductItems: []basket.ProductItem{{ItemID: "s1", ProductID: "suit-40", Quantity: 1}},
			BonusDiscountLineItems: []basket.BonusDiscountLineItem{
				{ID: "d1", PromotionID: "p1", MaxBonusItems: 1},
			},
		}
		require.False(t, IsAutomatic(b, "suit-40", lookup, nil))
	})

	t.Run("no promotion tags is not automatic", func(t *testing.T) {
		b := &basket.Basket{}
		require.False(t, IsAutomatic(b, "suit-40", Lookup{}, nil))
	})
}

func TestShouldShowSelection(t *testing.T) {
	lookup := Lookup{"suit-40": {ProductPromotions: []ProductPromotion{{PromotionID: "p1"}}}}
	b := &basket.Basket{
		ProductItems: []basket.ProductItem{{ItemID: "s1", ProductID: "suit-40", Quantity: 1}},
		BonusDiscountLineItems: []basket.BonusDiscountLineItem{
			{ID: "d1", PromotionID: "p1", MaxBonusItems: 1, BonusProducts: []basket.BonusProduct{{ProductID: "tie"}}},
		},
	}

	require.True(t, ShouldShowSelection(b, "suit-40", lookup, nil))

	t.Run("bonus products never get the selection UI", func(t *testing.T) {
		tieLookup := Lookup{"tie": {ProductPromotions: []ProductPromotion{{PromotionID: "p1"}}}}
		require.False(t, ShouldShowSelection(b, "tie", tieLookup, nil))
	})

	t.Run("untagged products never get the selection UI", func(t *testing.T) {
		require.False(t, ShouldShowSelection(b, "suit-40", Lookup{}, nil))
	})

	t.Run("automatic promotions never get the selection UI", func(t *testing.T) {
		auto := &basket.Basket{
			ProductItems: []basket.ProductItem{{ItemID: "s1", ProductID: "suit-40", Quantity: 1}},
		}
		require.False(t, ShouldShowSelection(auto, "suit-40", lookup, nil))
	})
}
