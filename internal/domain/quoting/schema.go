// Package quoting is the pure core of the quoting assistant: the attribute
// schema, the record merger, the completion gate, the pricing engine and the
// stage guards. Nothing in this package performs I/O.
package quoting

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"vacate_quote/internal/domain/entities"
)

// Kind is the coercion applied to a raw attribute value.
type Kind int

const (
	KindInteger Kind = iota + 1
	KindBoolean
	KindEnum
	KindText
)

// Group decides when an attribute may still change.
type Group int

const (
	// GroupRequired attributes feed pricing and freeze once the quote is priced.
	GroupRequired Group = iota + 1
	// GroupOptional attributes feed pricing but do not gate completion.
	GroupOptional
	// GroupContact attributes stay editable until a terminal stage.
	GroupContact
)

const (
	maxCount          = 100
	maxRequestMinutes = 600
)

// FurnishedClarification is asked when the furnished answer cannot be mapped.
const FurnishedClarification = "Are there any beds, couches, wardrobes, or full cabinets still in the home?"

// Attribute describes one field of the closed schema.
type Attribute struct {
	Name         string
	Label        string
	Kind         Kind
	Group        Group
	Accumulative bool
	Max          int

	intRef  func(*entities.QuoteAttributes) **int
	boolRef func(*entities.QuoteAttributes) **bool
	strRef  func(*entities.QuoteAttributes) **string
}

func intAttr(name, label string, group Group, max int, ref func(*entities.QuoteAttributes) **int) Attribute {
	return Attribute{Name: name, Label: label, Kind: KindInteger, Group: group, Max: max, intRef: ref}
}

func boolAttr(name, label string, ref func(*entities.QuoteAttributes) **bool) Attribute {
	return Attribute{Name: name, Label: label, Kind: KindBoolean, Group: GroupRequired, boolRef: ref}
}

func textAttr(name, label string, group Group, ref func(*entities.QuoteAttributes) **string) Attribute {
	return Attribute{Name: name, Label: label, Kind: KindText, Group: group, strRef: ref}
}

var schema = []Attribute{
	textAttr("suburb", "suburb", GroupRequired, func(a *entities.QuoteAttributes) **string { return &a.Suburb }),
	intAttr("bedrooms_v2", "number of bedrooms", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.Bedrooms }),
	intAttr("bathrooms_v2", "number of bathrooms", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.Bathrooms }),
	{Name: "furnished", Label: "whether the property is furnished", Kind: KindEnum, Group: GroupRequired,
		strRef: func(a *entities.QuoteAttributes) **string { return &a.Furnished }},

	boolAttr("oven_cleaning", "oven cleaning", func(a *entities.QuoteAttributes) **bool { return &a.OvenCleaning }),
	boolAttr("window_cleaning", "window cleaning", func(a *entities.QuoteAttributes) **bool { return &a.WindowCleaning }),
	intAttr("window_count", "number of windows", GroupOptional, maxCount, func(a *entities.QuoteAttributes) **int { return &a.WindowCount }),
	boolAttr("blind_cleaning", "blind cleaning", func(a *entities.QuoteAttributes) **bool { return &a.BlindCleaning }),

	intAttr("carpet_bedroom_count", "carpeted bedrooms", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetBedroomCount }),
	intAttr("carpet_mainroom_count", "carpeted living areas", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetMainroomCount }),
	intAttr("carpet_study_count", "carpeted studies", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetStudyCount }),
	intAttr("carpet_halway_count", "carpeted hallways", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetHallwayCount }),
	intAttr("carpet_stairs_count", "carpeted stairs", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetStairsCount }),
	intAttr("carpet_other_count", "other carpeted areas", GroupRequired, maxCount, func(a *entities.QuoteAttributes) **int { return &a.CarpetOtherCount }),

	boolAttr("deep_cleaning", "deep cleaning", func(a *entities.QuoteAttributes) **bool { return &a.DeepCleaning }),
	boolAttr("fridge_cleaning", "fridge cleaning", func(a *entities.QuoteAttributes) **bool { return &a.FridgeCleaning }),
	boolAttr("range_hood_cleaning", "range hood cleaning", func(a *entities.QuoteAttributes) **bool { return &a.RangeHoodCleaning }),
	boolAttr("wall_cleaning", "wall cleaning", func(a *entities.QuoteAttributes) **bool { return &a.WallCleaning }),
	boolAttr("balcony_cleaning", "balcony cleaning", func(a *entities.QuoteAttributes) **bool { return &a.BalconyCleaning }),
	boolAttr("garage_cleaning", "garage cleaning", func(a *entities.QuoteAttributes) **bool { return &a.GarageCleaning }),
	boolAttr("upholstery_cleaning", "upholstery cleaning", func(a *entities.QuoteAttributes) **bool { return &a.UpholsteryCleaning }),
	boolAttr("after_hours_cleaning", "after-hours cleaning", func(a *entities.QuoteAttributes) **bool { return &a.AfterHoursCleaning }),
	boolAttr("weekend_cleaning", "weekend cleaning", func(a *entities.QuoteAttributes) **bool { return &a.WeekendCleaning }),
	boolAttr("mandurah_property", "whether the property is in Mandurah", func(a *entities.QuoteAttributes) **bool { return &a.MandurahProperty }),
	boolAttr("is_property_manager", "whether you're a property manager", func(a *entities.QuoteAttributes) **bool { return &a.IsPropertyManager }),

	{Name: "special_requests", Label: "special requests", Kind: KindText, Group: GroupRequired, Accumulative: true,
		strRef: func(a *entities.QuoteAttributes) **string { return &a.SpecialRequests }},
	{Name: "special_request_minutes_min", Label: "minimum extra minutes for special requests", Kind: KindInteger, Group: GroupRequired,
		Accumulative: true, Max: maxRequestMinutes, intRef: func(a *entities.QuoteAttributes) **int { return &a.SpecialRequestMinutesMin }},
	{Name: "special_request_minutes_max", Label: "maximum extra minutes for special requests", Kind: KindInteger, Group: GroupRequired,
		Accumulative: true, Max: maxRequestMinutes, intRef: func(a *entities.QuoteAttributes) **int { return &a.SpecialRequestMinutesMax }},

	textAttr("customer_name", "name", GroupContact, func(a *entities.QuoteAttributes) **string { return &a.CustomerName }),
	textAttr("customer_email", "email", GroupContact, func(a *entities.QuoteAttributes) **string { return &a.CustomerEmail }),
	textAttr("customer_phone", "phone number", GroupContact, func(a *entities.QuoteAttributes) **string { return &a.CustomerPhone }),
	textAttr("property_address", "property address", GroupContact, func(a *entities.QuoteAttributes) **string { return &a.PropertyAddress }),
	textAttr("real_estate_name", "real estate agency", GroupContact, func(a *entities.QuoteAttributes) **string { return &a.RealEstateName }),
	intAttr("number_of_sessions", "number of sessions", GroupContact, maxCount, func(a *entities.QuoteAttributes) **int { return &a.NumberOfSessions }),
}

var schemaIndex = func() map[string]Attribute {
	idx := make(map[string]Attribute, len(schema))
	for _, a := range schema {
		idx[a.Name] = a
	}
	return idx
}()

var requiredFields = func() []string {
	var names []string
	for _, a := range schema {
		if a.Group == GroupRequired {
			names = append(names, a.Name)
		}
	}
	return names
}()

// Lookup resolves a field name case-insensitively.
func Lookup(name string) (Attribute, bool) {
	a, ok := schemaIndex[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// RequiredFields returns the fixed list of attributes the completion gate checks.
func RequiredFields() []string {
	out := make([]string, len(requiredFields))
	copy(out, requiredFields)
	return out
}

// Value is a coerced attribute value.
type Value struct {
	Kind Kind
	Int  int
	Bool bool
	Text string
}

// IsEmpty reports whether the value is "", 0 or false.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindInteger:
		return v.Int == 0
	case KindBoolean:
		return !v.Bool
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// Interface returns the plain Go value, suitable for the record store.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindBoolean:
		return v.Bool
	default:
		return v.Text
	}
}

// Assignment is a validated (field, value) pair.
type Assignment struct {
	Name  string
	Value Value
}

// Proposal is the result of coercing one oracle answer.
type Proposal struct {
	Assignments    []Assignment
	Dropped        []string
	Clarifications []string
}

// Coerce validates one raw pair. Unknown names are rejected with ok=false.
// For the furnished enum an ambiguous answer also yields ok=false together
// with a clarifying question.
func Coerce(name string, raw any) (a Assignment, clarification string, ok bool) {
	attr, known := Lookup(name)
	if !known {
		return Assignment{}, "", false
	}

	v := Value{Kind: attr.Kind}
	switch attr.Kind {
	case KindInteger:
		v.Int = clamp(CoerceInt(raw), attr.Max)
	case KindBoolean:
		v.Bool = CoerceBool(raw)
	case KindEnum:
		label, ambiguous := NormalizeFurnished(rawString(raw))
		if label == "" {
			if ambiguous {
				return Assignment{}, FurnishedClarification, false
			}
			return Assignment{}, "", false
		}
		v.Text = label
	case KindText:
		v.Text = strings.TrimSpace(rawString(raw))
		if attr.Name == "special_requests" && isNoRequest(v.Text) {
			v.Text = ""
		}
	}
	return Assignment{Name: attr.Name, Value: v}, "", true
}

// CoerceAll coerces a whole oracle answer, keeping order and dropping noise.
func CoerceAll(pairs []entities.ExtractedAttribute) Proposal {
	var p Proposal
	for _, pair := range pairs {
		a, clarification, ok := Coerce(pair.Property, pair.Value)
		if !ok {
			p.Dropped = append(p.Dropped, pair.Property)
			if clarification != "" {
				p.Clarifications = append(p.Clarifications, clarification)
			}
			continue
		}
		p.Assignments = append(p.Assignments, a)
	}
	return p
}

var truthyTokens = map[string]bool{"yes": true, "true": true, "1": true, "on": true, "checked": true, "t": true, "y": true}

// CoerceBool maps truthy tokens to true and everything else to false.
func CoerceBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case string:
		return truthyTokens[strings.ToLower(strings.TrimSpace(v))]
	}
	return false
}

// CoerceInt parses raw best-effort. Anything unparseable becomes 0 and
// negatives are floored at 0.
func CoerceInt(raw any) int {
	var f float64
	switch v := raw.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// NormalizeFurnished maps loosely-worded input onto the canonical labels.
// It returns ambiguous=true when the customer answered but the answer needs a
// follow-up question.
func NormalizeFurnished(raw string) (label string, ambiguous bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return "", false
	case strings.Contains(s, "unfurnished"), strings.Contains(s, "not furnished"), strings.Contains(s, "empty"),
		strings.Contains(s, "appliance"), s == "no", s == "false":
		return entities.UnfurnishedLabel, false
	case strings.Contains(s, "semi"), strings.Contains(s, "partial"), strings.Contains(s, "partly"), strings.Contains(s, "half"):
		return "", true
	case strings.Contains(s, "furnished"), s == "yes", s == "true":
		return entities.FurnishedLabel, false
	}
	return "", true
}

func clamp(v, max int) int {
	if max > 0 && v > max {
		return max
	}
	return v
}

func rawString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	}
	return ""
}

func isNoRequest(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "no", "none", "nope", "nil", "false", "n/a", "na", "no special requests", "nothing":
		return true
	}
	return false
}

// Get returns the stored value of the attribute, ok=false when unanswered.
func (attr Attribute) Get(a *entities.QuoteAttributes) (Value, bool) {
	v := Value{Kind: attr.Kind}
	switch {
	case attr.intRef != nil:
		p := *attr.intRef(a)
		if p == nil {
			return v, false
		}
		v.Int = *p
	case attr.boolRef != nil:
		p := *attr.boolRef(a)
		if p == nil {
			return v, false
		}
		v.Bool = *p
	case attr.strRef != nil:
		p := *attr.strRef(a)
		if p == nil {
			return v, false
		}
		v.Text = *p
	}
	return v, true
}

// Set stores v on the attribute. Existing pointers are replaced, never written
// through, so copies of a QuoteAttributes stay independent.
func (attr Attribute) Set(a *entities.QuoteAttributes, v Value) {
	switch {
	case attr.intRef != nil:
		n := v.Int
		*attr.intRef(a) = &n
	case attr.boolRef != nil:
		b := v.Bool
		*attr.boolRef(a) = &b
	case attr.strRef != nil:
		s := v.Text
		*attr.strRef(a) = &s
	}
}
