package domain

type CanvasItem struct {
	ID          string
	Bucket      CanvasBucket
	Name        string
	Description string
	Priority    Priority
	CreatedAt   string
	UpdatedAt   string
	View
}

// PricingEntry is a service catalog entry. Which amount fields apply depends
// on Kind: HourlyRate for HOURLY, Price for PACKAGE, Price and BillingPeriod
// for SUBSCRIPTION, MinPrice and MaxPrice for CUSTOM.
type PricingEntry struct {
	ID            string
	Kind          PricingKind
	Name          string
	Description   string
	Currency      string
	HourlyRate    float64
	Price         float64
	Hours         float64
	BillingPeriod string
	MinPrice      float64
	MaxPrice      float64
	Deliverables  []string
	CreatedAt     string
	UpdatedAt     string
	View
}

// EffectiveHourlyRate returns the hourly value implied by the entry, or 0
// when the kind carries no hourly information.
func (p *PricingEntry) EffectiveHourlyRate() float64 {
	switch p.Kind {
	case PricingHourly:
		return p.HourlyRate
	case PricingPackage:
		if p.Hours > 0 {
			return p.Price / p.Hours
		}
	}
	return 0
}

// Validate checks kind-specific amount fields.
func (p *PricingEntry) Validate() bool {
	p.ValidationErrors = map[string]string{}
	if p.Name == "" {
		p.ValidationErrors["name"] = "name is required"
	}
	switch p.Kind {
	case PricingHourly:
		if p.HourlyRate <= 0 {
			p.ValidationErrors["hourlyRate"] = "hourly rate must be positive"
		}
	case PricingPackage, PricingSubscription:
		if p.Price <= 0 {
			p.ValidationErrors["price"] = "price must be positive"
		}
	case PricingCustom:
		if p.MinPrice > p.MaxPrice {
			p.ValidationErrors["maxPrice"] = "max price must be >= min price"
		}
	}
	return !p.HasErrors()
}
