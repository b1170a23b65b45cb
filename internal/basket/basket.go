package basket

// PromotionKind discriminates how a bonus promotion sources its eligible products.
type PromotionKind int

const (
	// PromotionKindListBased means the discount line ships a fixed bonus catalog.
	PromotionKindListBased PromotionKind = iota
	// PromotionKindRuleBased means eligible products are resolved externally by rule.
	PromotionKindRuleBased
)

// PriceAdjustment records a promotion applied to a purchased line.
type PriceAdjustment struct {
	PromotionID string `json:"promotionId"`
}

// ProductItem is one line of the basket, purchased or granted as a bonus.
type ProductItem struct {
	ItemID                  string            `json:"itemId" validate:"required"`
	ProductID               string            `json:"productId" validate:"required"`
	Quantity                int               `json:"quantity" validate:"min=0"`
	ShipmentID              string            `json:"shipmentId,omitempty"`
	BonusProductLineItem    bool              `json:"bonusProductLineItem,omitempty"`
	BonusDiscountLineItemID string            `json:"bonusDiscountLineItemId,omitempty"`
	PriceAdjustments        []PriceAdjustment `json:"priceAdjustments,omitempty"`
}

// BonusProduct is one entry of a list-based promotion's bonus catalog.
type BonusProduct struct {
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName,omitempty"`
}

// BonusDiscountLineItem records one grant instance of a bonus promotion.
type BonusDiscountLineItem struct {
	ID            string         `json:"id" validate:"required"`
	PromotionID   string         `json:"promotionId" validate:"required"`
	MaxBonusItems int            `json:"maxBonusItems" validate:"min=0"`
	BonusProducts []BonusProduct `json:"bonusProducts,omitempty" validate:"dive"`
}

// Kind reports whether the promotion is list-based or rule-based. An empty
// bonus catalog signals a rule-based promotion resolved externally.
func (d BonusDiscountLineItem) Kind() PromotionKind {
	if len(d.BonusProducts) == 0 {
		return PromotionKindRuleBased
	}
	return PromotionKindListBased
}

// ShippingMethod carries the storefront's custom shipping attributes.
type ShippingMethod struct {
	StorePickupEnabled bool `json:"c_storePickupEnabled"`
}

// Shipment is one delivery group of the basket.
type Shipment struct {
	ShipmentID     string          `json:"shipmentId" validate:"required"`
	ShippingMethod *ShippingMethod `json:"shippingMethod,omitempty"`
	FromStoreID    string          `json:"c_fromStoreId,omitempty"`
}

// Basket is a read-only snapshot of the shopper's cart. Line order is
// semantically meaningful: it is cart position.
type Basket struct {
	ProductItems           []ProductItem           `json:"productItems" validate:"dive"`
	BonusDiscountLineItems []BonusDiscountLineItem `json:"bonusDiscountLineItems,omitempty" validate:"dive"`
	Shipments              []Shipment              `json:"shipments,omitempty" validate:"dive"`
}
