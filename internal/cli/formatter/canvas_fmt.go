package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/service"
)

// FormatCanvas renders the nine canvas blocks in reading order and the
// pricing catalog below them.
func FormatCanvas(ov *service.CanvasOverview) string {
	var b strings.Builder
	b.WriteString(FormatPlanHeading(ov.Plan) + "\n\n")

	for _, bucket := range domain.CanvasBuckets {
		items, _ := ov.Buckets.Lookup(string(bucket))
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(BucketLabel(bucket)), Dim(fmt.Sprintf("(%d)", len(items))))
		if len(items) == 0 {
			b.WriteString("  " + Dim("empty") + "\n")
			continue
		}
		for _, it := range items {
			line := fmt.Sprintf("  • %s %s", it.Name, Dim(it.ID))
			if it.Priority == domain.PriorityHigh || it.Priority == domain.PriorityUrgent {
				line += "  " + PriorityBadge(it.Priority)
			}
			b.WriteString(line + "\n")
		}
	}
	fmt.Fprintf(&b, "\nCanvas %d/%d blocks filled (%d%%)\n",
		ov.Stats.FilledBuckets, len(domain.CanvasBuckets), ov.Stats.CompletionRate)

	if len(ov.Pricing) > 0 {
		b.WriteString("\n" + Header("Pricing") + "\n")
		b.WriteString(FormatPricing(ov.Pricing))
		p := ov.Stats.Pricing
		if p.AverageHourlyRate > 0 {
			b.WriteString(Dim(fmt.Sprintf("Hourly value %s to %s, average %s",
				FormatMoney(p.MinHourlyRate, ""), FormatMoney(p.MaxHourlyRate, ""), FormatMoney(p.AverageHourlyRate, ""))) + "\n")
		}
	}
	return RenderBox("Business model canvas", b.String())
}

// FormatPricing renders the pricing catalog as a table.
func FormatPricing(entries []domain.PricingEntry) string {
	t := Table{
		Headers:    []string{"ID", "NAME", "KIND", "AMOUNT", "PER HOUR"},
		RightAlign: []bool{false, false, false, true, true},
	}
	for i := range entries {
		e := &entries[i]
		perHour := Dim("--")
		if r := e.EffectiveHourlyRate(); r > 0 {
			perHour = FormatMoney(r, e.Currency)
		}
		t.Rows = append(t.Rows, []string{
			Dim(e.ID),
			Bold(e.Name),
			strings.ToLower(string(e.Kind)),
			pricingAmount(e),
			perHour,
		})
	}
	return t.Render()
}

func pricingAmount(e *domain.PricingEntry) string {
	switch e.Kind {
	case domain.PricingHourly:
		return FormatMoney(e.HourlyRate, e.Currency) + "/h"
	case domain.PricingPackage:
		s := FormatMoney(e.Price, e.Currency)
		if e.Hours > 0 {
			s += " (" + FormatHours(e.Hours) + ")"
		}
		return s
	case domain.PricingSubscription:
		return FormatMoney(e.Price, e.Currency) + " " + e.BillingPeriod
	case domain.PricingCustom:
		return FormatMoney(e.MinPrice, "") + "-" + FormatMoney(e.MaxPrice, e.Currency)
	}
	return Dim("--")
}
