package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vacate_quote/internal/domain/entities"
)

// completeAttributes answers every required field: 3 bed, 2 bath,
// unfurnished, no extras, no carpet, no special requests.
func completeAttributes() entities.QuoteAttributes {
	no := func() *bool { return ptr(false) }
	zero := func() *int { return ptr(0) }
	return entities.QuoteAttributes{
		Suburb:                   ptr("Fremantle"),
		Bedrooms:                 ptr(4),
		Bathrooms:                ptr(2),
		Furnished:                ptr(entities.UnfurnishedLabel),
		OvenCleaning:             no(),
		WindowCleaning:           no(),
		BlindCleaning:            no(),
		GarageCleaning:           no(),
		BalconyCleaning:          no(),
		UpholsteryCleaning:       no(),
		DeepCleaning:             no(),
		FridgeCleaning:           no(),
		RangeHoodCleaning:        no(),
		WallCleaning:             no(),
		AfterHoursCleaning:       no(),
		WeekendCleaning:          no(),
		MandurahProperty:         no(),
		IsPropertyManager:        no(),
		CarpetBedroomCount:       zero(),
		CarpetMainroomCount:      zero(),
		CarpetStudyCount:         zero(),
		CarpetHallwayCount:       zero(),
		CarpetStairsCount:        zero(),
		CarpetOtherCount:         zero(),
		SpecialRequestMinutesMin: zero(),
		SpecialRequestMinutesMax: zero(),
	}
}

func TestIsComplete(t *testing.T) {
	t.Run("all required fields answered", func(t *testing.T) {
		attrs := completeAttributes()
		assert.True(t, IsComplete(attrs))
		assert.Empty(t, MissingFields(attrs))
	})

	t.Run("special_requests counts as filled when absent", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.SpecialRequests = nil
		assert.True(t, IsFilled(attrs, "special_requests"))
		assert.True(t, IsComplete(attrs))
	})

	t.Run("window_count is not required", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.WindowCount = nil
		assert.True(t, IsComplete(attrs))
	})

	for _, name := range RequiredFields() {
		if name == "special_requests" {
			continue
		}
		t.Run("missing "+name, func(t *testing.T) {
			attrs := completeAttributes()
			attr, _ := Lookup(name)
			clearAttribute(attr, &attrs)
			assert.False(t, IsComplete(attrs))
			assert.Equal(t, []string{name}, MissingFields(attrs))
		})
	}

	t.Run("blank text is missing", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.Suburb = ptr("  ")
		assert.False(t, IsComplete(attrs))
	})
}

func TestMissingLabels(t *testing.T) {
	labels := MissingLabels(entities.QuoteAttributes{}, 3)
	assert.Equal(t, []string{"suburb", "number of bedrooms", "number of bathrooms"}, labels)
}

func clearAttribute(attr Attribute, a *entities.QuoteAttributes) {
	switch {
	case attr.intRef != nil:
		*attr.intRef(a) = nil
	case attr.boolRef != nil:
		*attr.boolRef(a) = nil
	case attr.strRef != nil:
		*attr.strRef(a) = nil
	}
}
