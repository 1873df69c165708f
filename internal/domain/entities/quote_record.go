package entities

import "time"

const (
	FurnishedLabel   = "Furnished"
	UnfurnishedLabel = "Unfurnished"
)

// QuoteAttributes holds every job attribute collected during the conversation.
//
// A nil pointer means "not answered yet"; an answered false or 0 is stored as a
// non-nil pointer. JSON names double as record-store field names.
type QuoteAttributes struct {
	// Property details
	Suburb    *string `json:"suburb,omitempty"`
	Bedrooms  *int    `json:"bedrooms_v2,omitempty"`
	Bathrooms *int    `json:"bathrooms_v2,omitempty"`
	Furnished *string `json:"furnished,omitempty"`

	// Service flags
	OvenCleaning       *bool `json:"oven_cleaning,omitempty"`
	WindowCleaning     *bool `json:"window_cleaning,omitempty"`
	WindowCount        *int  `json:"window_count,omitempty"`
	BlindCleaning      *bool `json:"blind_cleaning,omitempty"`
	GarageCleaning     *bool `json:"garage_cleaning,omitempty"`
	BalconyCleaning    *bool `json:"balcony_cleaning,omitempty"`
	UpholsteryCleaning *bool `json:"upholstery_cleaning,omitempty"`
	DeepCleaning       *bool `json:"deep_cleaning,omitempty"`
	FridgeCleaning     *bool `json:"fridge_cleaning,omitempty"`
	RangeHoodCleaning  *bool `json:"range_hood_cleaning,omitempty"`
	WallCleaning       *bool `json:"wall_cleaning,omitempty"`
	AfterHoursCleaning *bool `json:"after_hours_cleaning,omitempty"`
	WeekendCleaning    *bool `json:"weekend_cleaning,omitempty"`
	MandurahProperty   *bool `json:"mandurah_property,omitempty"`
	IsPropertyManager  *bool `json:"is_property_manager,omitempty"`

	// Carpet areas. The hallway field name matches the record store column.
	CarpetBedroomCount  *int `json:"carpet_bedroom_count,omitempty"`
	CarpetMainroomCount *int `json:"carpet_mainroom_count,omitempty"`
	CarpetStudyCount    *int `json:"carpet_study_count,omitempty"`
	CarpetHallwayCount  *int `json:"carpet_halway_count,omitempty"`
	CarpetStairsCount   *int `json:"carpet_stairs_count,omitempty"`
	CarpetOtherCount    *int `json:"carpet_other_count,omitempty"`
	CarpetCleaning      bool `json:"carpet_cleaning"`

	// Special requests accumulate across turns.
	SpecialRequests          *string `json:"special_requests,omitempty"`
	SpecialRequestMinutesMin *int    `json:"special_request_minutes_min,omitempty"`
	SpecialRequestMinutesMax *int    `json:"special_request_minutes_max,omitempty"`

	// Contact details, editable at any non-terminal stage.
	CustomerName     *string `json:"customer_name,omitempty"`
	CustomerEmail    *string `json:"customer_email,omitempty"`
	CustomerPhone    *string `json:"customer_phone,omitempty"`
	PropertyAddress  *string `json:"property_address,omitempty"`
	RealEstateName   *string `json:"real_estate_name,omitempty"`
	NumberOfSessions *int    `json:"number_of_sessions,omitempty"`
}

// QuoteRecord is the canonical per-session aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id, sorted by created_at
//   - GSI2 (quote_id-index): quote_id
type QuoteRecord struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	QuoteID     string     `json:"quote_id"`
	Source      string     `json:"source,omitempty"`
	Stage       QuoteStage `json:"quote_stage"`
	ResumeStage QuoteStage `json:"resume_stage,omitempty"`

	QuoteAttributes
	PriceBreakdown

	PDFLink        string     `json:"pdf_link,omitempty"`
	BookingURL     string     `json:"booking_url,omitempty"`
	ReferralReason string     `json:"referral_reason,omitempty"`
	Transcript     Transcript `json:"message_log,omitempty"`
	DiagnosticLog  string     `json:"gpt_error_log,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveStage is the stage whose rules govern the next turn. While a
// warning is pending the conversation keeps following the stage it was in
// when the warning was issued.
func (r QuoteRecord) EffectiveStage() QuoteStage {
	if r.Stage != StageAbuseWarning {
		return r.Stage
	}
	if r.ResumeStage != "" {
		return r.ResumeStage
	}
	return StageGatheringInfo
}

// HasContactDetails reports whether name, email and phone are all present.
func (a QuoteAttributes) HasContactDetails() bool {
	return nonBlank(a.CustomerName) && nonBlank(a.CustomerEmail) && nonBlank(a.CustomerPhone)
}

// CarpetCounts returns the six carpet area counts, treating unanswered as 0.
func (a QuoteAttributes) CarpetCounts() [6]int {
	return [6]int{
		IntValue(a.CarpetBedroomCount),
		IntValue(a.CarpetMainroomCount),
		IntValue(a.CarpetStudyCount),
		IntValue(a.CarpetHallwayCount),
		IntValue(a.CarpetStairsCount),
		IntValue(a.CarpetOtherCount),
	}
}

func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func BoolValue(p *bool) bool {
	return p != nil && *p
}

func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nonBlank(p *string) bool {
	return p != nil && *p != ""
}
