package quoting

import (
	"fmt"

	"vacate_quote/internal/domain/entities"
)

// PricingTable holds every constant the Pricing Engine uses. Money is in
// cents and time in minutes.
type PricingTable struct {
	HourlyRateCents int64

	SeasonalDiscountPercent        int64
	PropertyManagerDiscountPercent int64
	GSTPercent                     int64

	WeekendSurchargeCents    int64
	AfterHoursSurchargeCents int64
	MandurahSurchargeCents   int64

	BedroomMinutes    int
	BathroomMinutes   int
	WindowMinutes     int
	BlindMinutes      int
	OvenMinutes       int
	UpholsteryMinutes int
	FurnishedMinutes  int

	// ExtraMinutes maps a boolean service attribute to its minute weight.
	ExtraMinutes map[string]int
	// CarpetMinutes maps a carpet count attribute to its per-unit weight.
	CarpetMinutes map[string]int
}

// DefaultPricingTable is the canonical table. Every value is overridable
// through configuration.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		HourlyRateCents:                7500,
		SeasonalDiscountPercent:        10,
		PropertyManagerDiscountPercent: 5,
		GSTPercent:                     10,
		WeekendSurchargeCents:          8000,
		AfterHoursSurchargeCents:       6000,
		MandurahSurchargeCents:         5000,
		BedroomMinutes:                 40,
		BathroomMinutes:                30,
		WindowMinutes:                  10,
		BlindMinutes:                   10,
		OvenMinutes:                    30,
		UpholsteryMinutes:              45,
		FurnishedMinutes:               60,
		ExtraMinutes: map[string]int{
			"wall_cleaning":       30,
			"balcony_cleaning":    20,
			"deep_cleaning":       60,
			"fridge_cleaning":     30,
			"range_hood_cleaning": 20,
			"garage_cleaning":     40,
		},
		CarpetMinutes: map[string]int{
			"carpet_bedroom_count":  30,
			"carpet_mainroom_count": 45,
			"carpet_study_count":    25,
			"carpet_halway_count":   20,
			"carpet_stairs_count":   35,
			"carpet_other_count":    30,
		},
	}
}

// extraOrder and carpetOrder fix the order of time components.
var (
	extraOrder  = []string{"wall_cleaning", "balcony_cleaning", "deep_cleaning", "fridge_cleaning", "range_hood_cleaning", "garage_cleaning"}
	carpetOrder = []string{"carpet_bedroom_count", "carpet_mainroom_count", "carpet_study_count", "carpet_halway_count", "carpet_stairs_count", "carpet_other_count"}
)

// EstimateMinutes builds the point time estimate, itemized.
func EstimateMinutes(attrs entities.QuoteAttributes, t PricingTable) (int, []entities.TimeComponent) {
	var (
		total int
		parts []entities.TimeComponent
	)
	add := func(label string, mins int) {
		if mins <= 0 {
			return
		}
		total += mins
		parts = append(parts, entities.TimeComponent{Label: label, Minutes: mins})
	}

	add("Bedrooms", entities.IntValue(attrs.Bedrooms)*t.BedroomMinutes)
	add("Bathrooms", entities.IntValue(attrs.Bathrooms)*t.BathroomMinutes)

	for _, name := range extraOrder {
		attr, _ := Lookup(name)
		if v, ok := attr.Get(&attrs); ok && v.Bool {
			add(titleLabel(attr.Label), t.ExtraMinutes[name])
		}
	}

	if entities.BoolValue(attrs.WindowCleaning) {
		windows := entities.IntValue(attrs.WindowCount)
		add("Window cleaning", windows*t.WindowMinutes)
		if entities.BoolValue(attrs.BlindCleaning) {
			add("Blind cleaning", windows*t.BlindMinutes)
		}
	}
	if entities.BoolValue(attrs.OvenCleaning) {
		add("Oven cleaning", t.OvenMinutes)
	}
	if entities.BoolValue(attrs.UpholsteryCleaning) {
		add("Upholstery cleaning", t.UpholsteryMinutes)
	}
	if entities.StringValue(attrs.Furnished) == entities.FurnishedLabel {
		add("Furnished property", t.FurnishedMinutes)
	}

	for _, name := range carpetOrder {
		attr, _ := Lookup(name)
		if v, ok := attr.Get(&attrs); ok {
			add(titleLabel(attr.Label), v.Int*t.CarpetMinutes[name])
		}
	}
	return total, parts
}

// Price computes the full breakdown. Every monetary step is rounded half-up
// to the cent before it feeds the next one.
func Price(attrs entities.QuoteAttributes, t PricingTable) entities.PriceBreakdown {
	base, parts := EstimateMinutes(attrs, t)

	low, high := base, base
	var b entities.PriceBreakdown
	if attrs.SpecialRequestMinutesMin != nil && attrs.SpecialRequestMinutesMax != nil {
		lo, hi := *attrs.SpecialRequestMinutesMin, *attrs.SpecialRequestMinutesMax
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi > 0 {
			low += lo
			high += hi
			b.IsRange = true
			b.MinimumTimeMins = low
			b.QuoteNote = fmt.Sprintf("Includes %d–%d min for special request", lo, hi)
			parts = append(parts, entities.TimeComponent{Label: "Special requests", Minutes: hi})
		}
	}
	b.EstimatedTimeMins = high
	b.TimeComponents = parts

	hoursCenti := halfUpDiv(int64(high)*100, 60)
	basePrice := halfUpDiv(hoursCenti*t.HourlyRateCents, 100)

	var weekend, afterHours, mandurah int64
	if entities.BoolValue(attrs.WeekendCleaning) {
		weekend = t.WeekendSurchargeCents
	}
	if entities.BoolValue(attrs.AfterHoursCleaning) {
		afterHours = t.AfterHoursSurchargeCents
	}
	if entities.BoolValue(attrs.MandurahProperty) {
		mandurah = t.MandurahSurchargeCents
	}
	subtotal := basePrice + weekend + afterHours + mandurah

	discountPct := t.SeasonalDiscountPercent
	if entities.BoolValue(attrs.IsPropertyManager) {
		discountPct += t.PropertyManagerDiscountPercent
	}
	discount := halfUpDiv(subtotal*discountPct, 100)
	perSession := subtotal - discount
	gst := halfUpDiv(perSession*t.GSTPercent, 100)

	b.CalculatedHours = dollars(hoursCenti)
	b.BaseHourlyRate = dollars(t.HourlyRateCents)
	b.BasePrice = dollars(basePrice)
	b.WeekendSurcharge = dollars(weekend)
	b.AfterHoursSurcharge = dollars(afterHours)
	b.MandurahSurcharge = dollars(mandurah)
	b.Subtotal = dollars(subtotal)
	b.DiscountPercent = float64(discountPct)
	b.DiscountApplied = dollars(discount)
	b.PricePerSession = dollars(perSession)
	b.GSTApplied = dollars(gst)
	b.TotalPrice = dollars(perSession + gst)
	return b
}

// halfUpDiv divides non-negative a by positive b rounding half away from zero.
func halfUpDiv(a, b int64) int64 {
	if a < 0 {
		return -halfUpDiv(-a, b)
	}
	return (2*a + b) / (2 * b)
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

func titleLabel(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
