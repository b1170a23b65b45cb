package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/storefront-bonus/internal/basket"
	"github.com/noah-isme/storefront-bonus/internal/promo"
)

// Snapshot bundles everything a bonus computation consumes: the basket, the
// fetched product-promotion lookup, and the externally resolved rule
// qualifiers. Its JSON shape mirrors the storefront's mock data.
type Snapshot struct {
	Basket         basket.Basket       `json:"basket"`
	Lookup         promo.Lookup        `json:"productPromotions,omitempty"`
	RuleQualifiers map[string][]string `json:"ruleQualifyingProducts,omitempty"`
}

var validate = validator.New()

// Load reads, validates, and normalizes a snapshot fixture file.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a snapshot from raw JSON.
func Parse(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.normalize()
	if err := validate.Struct(&snap); err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}
	return &snap, nil
}

// Rules converts the plain qualifier lists into the resolver's set form.
func (s *Snapshot) Rules() promo.RuleQualifiers {
	if s == nil {
		return nil
	}
	return promo.NewRuleQualifiers(s.RuleQualifiers)
}

// normalize fills the gaps mock data tends to leave: lines without an item id
// get a generated one, quantities default to a single unit.
func (s *Snapshot) normalize() {
	for i := range s.Basket.ProductItems {
		it := &s.Basket.ProductItems[i]
		if it.ItemID == "" {
			it.ItemID = uuid.NewString()
		}
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
	}
}
