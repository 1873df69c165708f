package quoting

import (
	"strings"

	"vacate_quote/internal/domain/entities"
)

// IsFilled reports whether a required attribute has been answered.
//
// An explicit false or 0 is an answer ("no oven clean", "no carpeted study");
// only nil and blank text count as missing. special_requests is always filled
// because having none is a complete answer.
func IsFilled(attrs entities.QuoteAttributes, name string) bool {
	attr, ok := Lookup(name)
	if !ok {
		return false
	}
	if attr.Name == "special_requests" {
		return true
	}
	v, present := attr.Get(&attrs)
	if !present {
		return false
	}
	if attr.Kind == KindText || attr.Kind == KindEnum {
		return strings.TrimSpace(v.Text) != ""
	}
	return true
}

// MissingFields lists the required attributes still unanswered, in schema order.
func MissingFields(attrs entities.QuoteAttributes) []string {
	var missing []string
	for _, name := range requiredFields {
		if !IsFilled(attrs, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsComplete reports whether every required attribute is filled.
func IsComplete(attrs entities.QuoteAttributes) bool {
	filled := 0
	for _, name := range requiredFields {
		if IsFilled(attrs, name) {
			filled++
		}
	}
	return filled == len(requiredFields)
}

// MissingLabels returns human-readable names for the first n missing fields,
// used to steer the follow-up question.
func MissingLabels(attrs entities.QuoteAttributes, n int) []string {
	var labels []string
	for _, name := range MissingFields(attrs) {
		if n > 0 && len(labels) == n {
			break
		}
		attr, _ := Lookup(name)
		labels = append(labels, attr.Label)
	}
	return labels
}
