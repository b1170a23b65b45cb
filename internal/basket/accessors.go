package basket

// DiscountLine returns the bonus discount line with the given id.
func (b *Basket) DiscountLine(id string) (BonusDiscountLineItem, bool) {
	if b == nil || id == "" {
		return BonusDiscountLineItem{}, false
	}
	for _, d := range b.BonusDiscountLineItems {
		if d.ID == id {
			return d, true
		}
	}
	return BonusDiscountLineItem{}, false
}

// DiscountLineForPromotion returns the first discount line granted by the promotion.
func (b *Basket) DiscountLineForPromotion(promotionID string) (BonusDiscountLineItem, bool) {
	if b == nil || promotionID == "" {
		return BonusDiscountLineItem{}, false
	}
	for _, d := range b.BonusDiscountLineItems {
		if d.PromotionID == promotionID {
			return d, true
		}
	}
	return BonusDiscountLineItem{}, false
}

// DiscountLinesForPromotion returns every discount line granted by the
// promotion, preserving basket order.
func (b *Basket) DiscountLinesForPromotion(promotionID string) []BonusDiscountLineItem {
	if b == nil || promotionID == "" {
		return nil
	}
	var lines []BonusDiscountLineItem
	for _, d := range b.BonusDiscountLineItems {
		if d.PromotionID == promotionID {
			lines = append(lines, d)
		}
	}
	return lines
}

// Line returns the product line with the given item id.
func (b *Basket) Line(itemID string) (ProductItem, bool) {
	if b == nil || itemID == "" {
		return ProductItem{}, false
	}
	for _, it := range b.ProductItems {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return ProductItem{}, false
}

// LineForProduct returns the first purchased (non-bonus) line of the product.
func (b *Basket) LineForProduct(productID string) (ProductItem, bool) {
	if b == nil || productID == "" {
		return ProductItem{}, false
	}
	for _, it := range b.ProductItems {
		if !it.BonusProductLineItem && it.ProductID == productID {
			return it, true
		}
	}
	return ProductItem{}, false
}

// Shipment returns the shipment with the given id.
func (b *Basket) Shipment(id string) (Shipment, bool) {
	if b == nil || id == "" {
		return Shipment{}, false
	}
	for _, s := range b.Shipments {
		if s.ShipmentID == id {
			return s, true
		}
	}
	return Shipment{}, false
}

// IsStorePickup reports whether the shipment resolves to a store-pickup
// shipping method. Any missing or malformed resolution counts as delivery.
func (b *Basket) IsStorePickup(shipmentID string) bool {
	s, ok := b.Shipment(shipmentID)
	if !ok || s.ShippingMethod == nil {
		return false
	}
	return s.ShippingMethod.StorePickupEnabled
}

// BonusLines returns every bonus line referencing one of the given discount
// line ids, preserving basket order.
func (b *Basket) BonusLines(discountLineIDs ...string) []ProductItem {
	if b == nil || len(discountLineIDs) == 0 {
		return nil
	}
	ids := make(map[string]struct{}, len(discountLineIDs))
	for _, id := range discountLineIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	var lines []ProductItem
	for _, it := range b.ProductItems {
		if !it.BonusProductLineItem {
			continue
		}
		if _, ok := ids[it.BonusDiscountLineItemID]; ok {
			lines = append(lines, it)
		}
	}
	return lines
}

// EffectiveQuantity returns the line quantity, defaulting to one when unset.
func (it ProductItem) EffectiveQuantity() int {
	if it.Quantity <= 0 {
		return 1
	}
	return it.Quantity
}

// ListsBonusProduct reports whether any discount line's bonus catalog contains
// the product.
func (b *Basket) ListsBonusProduct(productID string) bool {
	if b == nil || productID == "" {
		return false
	}
	for _, d := range b.BonusDiscountLineItems {
		for _, bp := range d.BonusProducts {
			if bp.ProductID == productID {
				return true
			}
		}
	}
	return false
}
