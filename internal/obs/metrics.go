package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// AllocationsTotal counts bonus allocation computations by outcome.
	AllocationsTotal *prometheus.CounterVec
	// BonusUnitsAllocated counts bonus units handed out by the allocator.
	BonusUnitsAllocated prometheus.Counter
	// DistributionPlansTotal counts distribution plans by outcome.
	DistributionPlansTotal *prometheus.CounterVec
	// RemovalSetSize records how many basket lines a removal resolves to.
	RemovalSetSize prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		AllocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_allocations_total",
			Help:      "Count of bonus allocation computations by outcome.",
		}, []string{"result"})
		BonusUnitsAllocated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_units_allocated_total",
			Help:      "Total bonus units assigned to cart lines.",
		})
		DistributionPlansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_distribution_plans_total",
			Help:      "Count of bonus distribution plans by outcome.",
		}, []string{"result"})
		RemovalSetSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bonus_removal_set_size",
			Help:      "Number of basket lines resolved per bonus removal.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		})

		mustRegisterCollector(reg, AllocationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				AllocationsTotal = v
			}
		})
		mustRegisterCollector(reg, BonusUnitsAllocated, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				BonusUnitsAllocated = v
			}
		})
		mustRegisterCollector(reg, DistributionPlansTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DistributionPlansTotal = v
			}
		})
		mustRegisterCollector(reg, RemovalSetSize, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				RemovalSetSize = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
