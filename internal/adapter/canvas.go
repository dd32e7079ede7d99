package adapter

import (
	"time"

	"github.com/alexanderramin/atelier/internal/codes"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
)

const defaultCurrency = "EUR"

var CanvasItems = New("canvas", canvasItemView, canvasItemRecord)

var Pricing = New("pricing", pricingView, pricingRecord)

func canvasItemView(n *Normalizer, r *record.CanvasItem) domain.CanvasItem {
	return domain.CanvasItem{
		ID:          n.ID("canvas", r.ID),
		Bucket:      codes.ParseCanvasBucket(domain.StrFromPtrs(r.Bucket, r.Section)),
		Name:        domain.StrFromPtrs(r.Name, r.Title),
		Description: domain.StrFromPtrs(r.Description, r.Content),
		Priority:    codes.ParsePriority(domain.StrFromPtrs(r.Priority)),
		CreatedAt:   domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:   domain.StrFromPtrs(r.UpdatedAt),
		View:        domain.NewView(),
	}
}

func canvasItemRecord(v *domain.CanvasItem, now time.Time) record.CanvasItem {
	created, updated := stamps(v.CreatedAt, now)
	return record.CanvasItem{
		ID:          v.ID,
		Bucket:      domain.Ptr(codes.CanvasBucketCode(v.Bucket)),
		Name:        domain.Ptr(v.Name),
		Description: domain.PtrIfNonEmpty(v.Description),
		Priority:    domain.Ptr(codes.PriorityCode(v.Priority)),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

// pricingKind prefers an explicit kind and otherwise infers it from which
// amount fields are present.
func pricingKind(r *record.PricingEntry) domain.PricingKind {
	if k := domain.StrFromPtrs(r.Kind, r.Type); k != "" {
		return codes.ParsePricingKind(k)
	}
	switch {
	case r.MinPrice != nil || r.MaxPrice != nil:
		return domain.PricingCustom
	case r.BillingPeriod != nil || r.Period != nil:
		return domain.PricingSubscription
	case r.HourlyRate != nil || r.Rate != nil:
		return domain.PricingHourly
	case r.Price != nil || r.Amount != nil:
		return domain.PricingPackage
	}
	return codes.ParsePricingKind("")
}

func pricingView(n *Normalizer, r *record.PricingEntry) domain.PricingEntry {
	p := domain.PricingEntry{
		ID:            n.ID("pricing", r.ID),
		Kind:          pricingKind(r),
		Name:          domain.StrFromPtrs(r.Name, r.Title),
		Description:   domain.StrFromPtrs(r.Description),
		Currency:      domain.CoalesceStr(domain.StrFromPtrs(r.Currency), defaultCurrency),
		HourlyRate:    domain.Float64FromPtrWithDefault(0, r.HourlyRate, r.Rate),
		Price:         domain.Float64FromPtrWithDefault(0, r.Price, r.Amount),
		Hours:         domain.Float64FromPtrWithDefault(0, r.Hours),
		BillingPeriod: domain.StrFromPtrs(r.BillingPeriod, r.Period),
		MinPrice:      domain.Float64FromPtrWithDefault(0, r.MinPrice),
		MaxPrice:      domain.Float64FromPtrWithDefault(0, r.MaxPrice),
		Deliverables:  domain.StringsOrEmpty(r.Deliverables, r.Includes),
		CreatedAt:     domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:     domain.StrFromPtrs(r.UpdatedAt),
		View:          domain.NewView(),
	}
	if p.Kind == domain.PricingSubscription && p.BillingPeriod == "" {
		p.BillingPeriod = "monthly"
	}
	return p
}

// pricingRecord writes only the amount fields that apply to the entry kind.
func pricingRecord(v *domain.PricingEntry, now time.Time) record.PricingEntry {
	created, updated := stamps(v.CreatedAt, now)
	r := record.PricingEntry{
		ID:           v.ID,
		Kind:         domain.Ptr(codes.PricingKindCode(v.Kind)),
		Name:         domain.Ptr(v.Name),
		Description:  domain.PtrIfNonEmpty(v.Description),
		Currency:     domain.Ptr(domain.CoalesceStr(v.Currency, defaultCurrency)),
		Deliverables: optStrings(v.Deliverables),
		CreatedAt:    created,
		UpdatedAt:    updated,
	}
	switch v.Kind {
	case domain.PricingHourly:
		r.HourlyRate = domain.Ptr(v.HourlyRate)
	case domain.PricingPackage:
		r.Price = domain.Ptr(v.Price)
		r.Hours = optFloat(v.Hours)
	case domain.PricingSubscription:
		r.Price = domain.Ptr(v.Price)
		r.BillingPeriod = domain.PtrIfNonEmpty(v.BillingPeriod)
	case domain.PricingCustom:
		r.MinPrice = domain.Ptr(v.MinPrice)
		r.MaxPrice = domain.Ptr(v.MaxPrice)
	}
	return r
}
