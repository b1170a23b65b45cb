package main

import (
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/storefront-bonus/internal/bonus"
	"github.com/noah-isme/storefront-bonus/internal/config"
	"github.com/noah-isme/storefront-bonus/internal/fixture"
	"github.com/noah-isme/storefront-bonus/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)
	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, prometheus.NewRegistry())

	if len(os.Args) < 2 {
		logger.Fatal().Msg("usage: bonusplan <snapshot.json>")
	}
	snap, err := fixture.Load(os.Args[1])
	if err != nil {
		logger.Fatal().Err(err).Str("path", os.Args[1]).Msg("load snapshot")
	}

	svc := &bonus.Service{
		Lookup:              snap.Lookup,
		Rules:               snap.Rules(),
		Logger:              logger,
		DefaultSelectionQty: cfg.DefaultSelectionQty,
	}
	b := &snap.Basket

	for _, it := range b.ProductItems {
		if it.BonusProductLineItem {
			logger.Info().
				Str("item_id", it.ItemID).
				Str("product_id", it.ProductID).
				Int("quantity", it.EffectiveQuantity()).
				Str("discount_line_id", it.BonusDiscountLineItemID).
				Msg("bonus line")
			continue
		}
		elig, err := svc.EligibilityFor(b, it.ProductID)
		if err != nil {
			logger.Error().Err(err).Str("product_id", it.ProductID).Msg("eligibility")
			continue
		}
		allocations, err := svc.AllocationFor(b, it.ItemID)
		if err != nil {
			logger.Error().Err(err).Str("item_id", it.ItemID).Msg("allocation")
			continue
		}
		evt := logger.Info().
			Str("item_id", it.ItemID).
			Str("product_id", it.ProductID).
			Int("quantity", it.EffectiveQuantity()).
			Strs("promotion_ids", elig.PromotionIDs).
			Bool("show_selection", elig.ShowSelection).
			Bool("automatic", elig.Automatic).
			Int("max_bonus_items", elig.Capacity.AggregatedMaxBonusItems).
			Int("selected_bonus_items", elig.Capacity.AggregatedSelectedItems)
		for _, a := range allocations {
			evt = evt.Int("allocated_"+a.ProductID, a.Quantity)
		}
		evt.Msg("cart line")
	}

	seen := make(map[string]struct{})
	for _, d := range b.BonusDiscountLineItems {
		if _, ok := seen[d.PromotionID]; ok {
			continue
		}
		seen[d.PromotionID] = struct{}{}
		plan, err := svc.PlanSelection(b, d.PromotionID, 0)
		if err != nil {
			logger.Error().Err(err).Str("promotion_id", d.PromotionID).Msg("distribution plan")
			continue
		}
		evt := logger.Info().Str("promotion_id", d.PromotionID).Int("buckets", len(plan))
		for _, p := range plan {
			evt = evt.Int("plan_"+p.DiscountLineID, p.Quantity)
		}
		evt.Msg("distribution plan")
	}
}
