package quoting

import (
	"fmt"
	"strings"

	"vacate_quote/internal/domain/entities"
)

// MaxMinutesPerCleaner caps how long one cleaner is rostered on a job.
const MaxMinutesPerCleaner = 300

var summaryServices = []struct {
	name  string
	label string
}{
	{"oven_cleaning", "Oven Cleaning"},
	{"window_cleaning", "Window Cleaning"},
	{"blind_cleaning", "Blind Cleaning"},
	{"wall_cleaning", "Wall Cleaning"},
	{"deep_cleaning", "Deep Cleaning"},
	{"fridge_cleaning", "Fridge Cleaning"},
	{"range_hood_cleaning", "Range Hood Cleaning"},
	{"balcony_cleaning", "Balcony Cleaning"},
	{"garage_cleaning", "Garage Cleaning"},
	{"upholstery_cleaning", "Upholstery Cleaning"},
	{"after_hours_cleaning", "After-Hours Cleaning"},
	{"weekend_cleaning", "Weekend Cleaning"},
}

// Crew splits the estimate across cleaners: one cleaner per started five
// hours, and the whole hours each of them works, rounded up.
func Crew(estimatedMins int) (cleaners, hoursEach int) {
	cleaners = (estimatedMins + MaxMinutesPerCleaner - 1) / MaxMinutesPerCleaner
	if cleaners < 1 {
		cleaners = 1
	}
	perCleaner := (estimatedMins + cleaners - 1) / cleaners
	hoursEach = (perCleaner + 59) / 60
	return cleaners, hoursEach
}

// SelectedServices lists the extras on the job, carpet and the special
// request included, in display order.
func SelectedServices(attrs entities.QuoteAttributes) []string {
	var services []string
	for _, s := range summaryServices {
		attr, _ := Lookup(s.name)
		if v, ok := attr.Get(&attrs); ok && v.Bool {
			services = append(services, s.label)
		}
	}
	if attrs.CarpetCleaning {
		services = append(services, "Carpet Steam Cleaning")
	}
	if req := strings.TrimSpace(entities.StringValue(attrs.SpecialRequests)); req != "" {
		services = append(services, "Special Request: "+req)
	}
	return services
}

// QuoteSummary renders the priced quote as the chat reply.
func QuoteSummary(attrs entities.QuoteAttributes, p entities.PriceBreakdown, t PricingTable) string {
	var b strings.Builder

	switch {
	case p.TotalPrice >= 800:
		b.WriteString("Here's what we're looking at for this job:\n\n")
	case p.TotalPrice <= 300:
		b.WriteString("Nice and easy, here's your quote:\n\n")
	case p.EstimatedTimeMins >= 360:
		b.WriteString("This one will take a little longer, here's your quote:\n\n")
	default:
		b.WriteString("All sorted, here's your quote:\n\n")
	}

	cleaners, hours := Crew(p.EstimatedTimeMins)
	fmt.Fprintf(&b, "Total Price (incl. GST): $%.2f\n", p.TotalPrice)
	fmt.Fprintf(&b, "Estimated Time: ~%d hour(s) per cleaner with %d cleaner(s)\n", hours, cleaners)

	if p.DiscountApplied > 0 {
		line := fmt.Sprintf("%d%% Vacate Clean Special", t.SeasonalDiscountPercent)
		if entities.BoolValue(attrs.IsPropertyManager) && t.PropertyManagerDiscountPercent > 0 {
			line += fmt.Sprintf(" + %d%% Property Manager Bonus", t.PropertyManagerDiscountPercent)
		}
		fmt.Fprintf(&b, "Discount Applied: $%.2f (%s)\n", p.DiscountApplied, line)
	}

	if services := SelectedServices(attrs); len(services) > 0 {
		b.WriteString("\nCleaning Included:\n- ")
		b.WriteString(strings.Join(services, "\n- "))
	}

	if p.QuoteNote != "" {
		b.WriteString("\n\nNote: ")
		b.WriteString(p.QuoteNote)
	}

	b.WriteString("\n\nThis quote is valid for 7 days.\n")
	b.WriteString("Would you like me to send this to your email as a PDF, or would you like to make any changes?")
	return strings.TrimSpace(b.String())
}

// NextActions is the fixed menu offered once a quote is priced.
func NextActions(bookingURL string) []entities.NextAction {
	return []entities.NextAction{
		{Action: entities.ActionProceedToBooking, Label: "Proceed to Booking", URL: bookingURL},
		{Action: entities.ActionDownloadPDF, Label: "Download PDF Quote"},
		{Action: entities.ActionEmailPDF, Label: "Email Me the Quote"},
		{Action: entities.ActionAskQuestions, Label: "Ask More Questions"},
	}
}
