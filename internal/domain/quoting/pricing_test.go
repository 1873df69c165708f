package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacate_quote/internal/domain/entities"
)

func TestPrice_FourBedTwoBath(t *testing.T) {
	p := Price(completeAttributes(), DefaultPricingTable())

	assert.Equal(t, 220, p.EstimatedTimeMins)
	assert.False(t, p.IsRange)
	assert.Equal(t, 3.67, p.CalculatedHours)
	assert.Equal(t, 75.0, p.BaseHourlyRate)
	assert.Equal(t, 275.25, p.BasePrice)
	assert.Equal(t, 275.25, p.Subtotal)
	assert.Equal(t, 10.0, p.DiscountPercent)
	assert.Equal(t, 27.53, p.DiscountApplied)
	assert.Equal(t, 247.72, p.PricePerSession)
	assert.Equal(t, 24.77, p.GSTApplied)
	assert.Equal(t, 272.49, p.TotalPrice)
}

func TestPrice_ThreeBedTwoBath(t *testing.T) {
	attrs := completeAttributes()
	attrs.Bedrooms = ptr(3)

	p := Price(attrs, DefaultPricingTable())

	assert.Equal(t, 180, p.EstimatedTimeMins)
	assert.Equal(t, 3.0, p.CalculatedHours)
	assert.Equal(t, 225.0, p.BasePrice)
	assert.Equal(t, 22.5, p.DiscountApplied)
	assert.Equal(t, 202.5, p.PricePerSession)
	assert.Equal(t, 20.25, p.GSTApplied)
	assert.Equal(t, 222.75, p.TotalPrice)
}

func TestPrice_IsDeterministic(t *testing.T) {
	attrs := completeAttributes()
	attrs.WeekendCleaning = ptr(true)
	attrs.CarpetBedroomCount = ptr(2)
	table := DefaultPricingTable()
	assert.Equal(t, Price(attrs, table), Price(attrs, table))
}

func TestEstimateMinutes(t *testing.T) {
	table := DefaultPricingTable()

	t.Run("extras use their minute weights", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.WallCleaning = ptr(true)
		attrs.GarageCleaning = ptr(true)
		attrs.OvenCleaning = ptr(true)
		attrs.UpholsteryCleaning = ptr(true)
		attrs.Furnished = ptr(entities.FurnishedLabel)

		mins, parts := EstimateMinutes(attrs, table)
		assert.Equal(t, 220+30+40+30+45+60, mins)
		assert.Equal(t, entities.TimeComponent{Label: "Wall cleaning", Minutes: 30}, parts[2])
	})

	t.Run("windows and blinds", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.WindowCleaning = ptr(true)
		attrs.BlindCleaning = ptr(true)
		attrs.WindowCount = ptr(8)

		mins, _ := EstimateMinutes(attrs, table)
		assert.Equal(t, 220+80+80, mins)
	})

	t.Run("window count ignored without window cleaning", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.WindowCount = ptr(8)
		attrs.BlindCleaning = ptr(true)

		mins, _ := EstimateMinutes(attrs, table)
		assert.Equal(t, 220, mins)
	})

	t.Run("carpet areas have distinct weights", func(t *testing.T) {
		attrs := completeAttributes()
		attrs.CarpetBedroomCount = ptr(2)
		attrs.CarpetMainroomCount = ptr(1)
		attrs.CarpetStudyCount = ptr(1)
		attrs.CarpetHallwayCount = ptr(1)
		attrs.CarpetStairsCount = ptr(1)
		attrs.CarpetOtherCount = ptr(1)

		mins, _ := EstimateMinutes(attrs, table)
		assert.Equal(t, 220+60+45+25+20+35+30, mins)
	})
}

func TestPrice_SpecialRequestRange(t *testing.T) {
	attrs := completeAttributes()
	attrs.SpecialRequestMinutesMin = ptr(30)
	attrs.SpecialRequestMinutesMax = ptr(60)

	p := Price(attrs, DefaultPricingTable())

	assert.True(t, p.IsRange)
	assert.Equal(t, 250, p.MinimumTimeMins)
	assert.Equal(t, 280, p.EstimatedTimeMins)
	assert.Equal(t, "Includes 30–60 min for special request", p.QuoteNote)
	// 280/60 = 4.666.. -> 4.67h, priced on the high end.
	assert.Equal(t, 4.67, p.CalculatedHours)
	assert.Equal(t, 350.25, p.BasePrice)
}

func TestPrice_SwappedRangeBounds(t *testing.T) {
	attrs := completeAttributes()
	attrs.SpecialRequestMinutesMin = ptr(60)
	attrs.SpecialRequestMinutesMax = ptr(30)

	p := Price(attrs, DefaultPricingTable())
	assert.Equal(t, 250, p.MinimumTimeMins)
	assert.Equal(t, 280, p.EstimatedTimeMins)
}

func TestPrice_SurchargesAndPropertyManager(t *testing.T) {
	attrs := completeAttributes()
	attrs.WeekendCleaning = ptr(true)
	attrs.AfterHoursCleaning = ptr(true)
	attrs.MandurahProperty = ptr(true)
	attrs.IsPropertyManager = ptr(true)

	p := Price(attrs, DefaultPricingTable())

	require.Equal(t, 275.25, p.BasePrice)
	assert.Equal(t, 80.0, p.WeekendSurcharge)
	assert.Equal(t, 60.0, p.AfterHoursSurcharge)
	assert.Equal(t, 50.0, p.MandurahSurcharge)
	assert.Equal(t, 465.25, p.Subtotal)
	assert.Equal(t, 15.0, p.DiscountPercent)
	// 465.25 * 15% = 69.7875 -> 69.79
	assert.Equal(t, 69.79, p.DiscountApplied)
	assert.Equal(t, 395.46, p.PricePerSession)
	// 39.546 -> 39.55
	assert.Equal(t, 39.55, p.GSTApplied)
	assert.Equal(t, 435.01, p.TotalPrice)
}

func TestHalfUpDiv(t *testing.T) {
	assert.Equal(t, int64(367), halfUpDiv(22000, 60))
	assert.Equal(t, int64(3), halfUpDiv(25, 10))
	assert.Equal(t, int64(2), halfUpDiv(24, 10))
	assert.Equal(t, int64(-3), halfUpDiv(-25, 10))
	assert.Equal(t, int64(0), halfUpDiv(0, 7))
}
