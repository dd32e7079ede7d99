package stats

import (
	"math"

	"github.com/alexanderramin/atelier/internal/domain"
)

type PricingSummary struct {
	Total             int
	ByKind            map[domain.PricingKind]int
	MinHourlyRate     float64
	MaxHourlyRate     float64
	AverageHourlyRate float64
}

type CanvasStats struct {
	TotalItems     int
	ItemsByBucket  map[domain.CanvasBucket]int
	FilledBuckets  int
	CompletionRate int
	Pricing        PricingSummary
}

// Canvas counts items per bucket and summarizes the pricing catalog. The
// completion rate is the share of the nine buckets holding at least one item.
func Canvas(items []domain.CanvasItem, pricing []domain.PricingEntry) CanvasStats {
	s := CanvasStats{
		TotalItems:    len(items),
		ItemsByBucket: make(map[domain.CanvasBucket]int, len(domain.CanvasBuckets)),
	}
	for _, b := range domain.CanvasBuckets {
		s.ItemsByBucket[b] = 0
	}
	for i := range items {
		s.ItemsByBucket[items[i].Bucket]++
	}
	for _, b := range domain.CanvasBuckets {
		if s.ItemsByBucket[b] > 0 {
			s.FilledBuckets++
		}
	}
	s.CompletionRate = Rate(s.FilledBuckets, len(domain.CanvasBuckets))
	s.Pricing = summarizePricing(pricing)
	return s
}

func summarizePricing(entries []domain.PricingEntry) PricingSummary {
	p := PricingSummary{Total: len(entries), ByKind: map[domain.PricingKind]int{}}

	var sum float64
	var n int
	for i := range entries {
		p.ByKind[entries[i].Kind]++
		rate := entries[i].EffectiveHourlyRate()
		if rate <= 0 {
			continue
		}
		if n == 0 || rate < p.MinHourlyRate {
			p.MinHourlyRate = rate
		}
		if rate > p.MaxHourlyRate {
			p.MaxHourlyRate = rate
		}
		sum += rate
		n++
	}
	if n > 0 {
		p.AverageHourlyRate = math.Round(sum/float64(n)*100) / 100
	}
	return p
}
