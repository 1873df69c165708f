package entities

// TimeComponent is one line of the time estimate.
type TimeComponent struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// PriceBreakdown is the Pricing Engine output. It is populated on the record
// only once the quote is calculated.
type PriceBreakdown struct {
	EstimatedTimeMins   int             `json:"estimated_time_mins,omitempty"`
	MinimumTimeMins     int             `json:"minimum_time_mins,omitempty"`
	IsRange             bool            `json:"is_range,omitempty"`
	QuoteNote           string          `json:"quote_notes,omitempty"`
	TimeComponents      []TimeComponent `json:"time_components,omitempty"`
	CalculatedHours     float64         `json:"calculated_hours,omitempty"`
	BaseHourlyRate      float64         `json:"base_hourly_rate,omitempty"`
	BasePrice           float64         `json:"base_price,omitempty"`
	WeekendSurcharge    float64         `json:"weekend_surcharge,omitempty"`
	AfterHoursSurcharge float64         `json:"after_hours_surcharge,omitempty"`
	MandurahSurcharge   float64         `json:"mandurah_surcharge,omitempty"`
	Subtotal            float64         `json:"subtotal,omitempty"`
	DiscountPercent     float64         `json:"discount_percent,omitempty"`
	DiscountApplied     float64         `json:"discount_applied,omitempty"`
	PricePerSession     float64         `json:"price_per_session,omitempty"`
	GSTApplied          float64         `json:"gst_applied,omitempty"`
	TotalPrice          float64         `json:"total_price,omitempty"`
}

// Fields flattens the breakdown into record-store field names.
func (p PriceBreakdown) Fields() map[string]any {
	return map[string]any{
		"estimated_time_mins":   p.EstimatedTimeMins,
		"minimum_time_mins":     p.MinimumTimeMins,
		"is_range":              p.IsRange,
		"quote_notes":           p.QuoteNote,
		"time_components":       p.TimeComponents,
		"calculated_hours":      p.CalculatedHours,
		"base_hourly_rate":      p.BaseHourlyRate,
		"base_price":            p.BasePrice,
		"weekend_surcharge":     p.WeekendSurcharge,
		"after_hours_surcharge": p.AfterHoursSurcharge,
		"mandurah_surcharge":    p.MandurahSurcharge,
		"subtotal":              p.Subtotal,
		"discount_percent":      p.DiscountPercent,
		"discount_applied":      p.DiscountApplied,
		"price_per_session":     p.PricePerSession,
		"gst_applied":           p.GSTApplied,
		"total_price":           p.TotalPrice,
	}
}
