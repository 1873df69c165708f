package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacate_quote/internal/domain/entities"
)

func assign(t *testing.T, name string, raw any) Assignment {
	t.Helper()
	a, _, ok := Coerce(name, raw)
	require.True(t, ok, "coerce %s", name)
	return a
}

func ptr[T any](v T) *T { return &v }

func TestMerge_Overwrite(t *testing.T) {
	existing := entities.QuoteAttributes{Suburb: ptr("Perth"), Bedrooms: ptr(2)}

	res := Merge(existing, []Assignment{assign(t, "bedrooms_v2", 3)}, entities.StageGatheringInfo)

	assert.Equal(t, 3, *res.Attributes.Bedrooms)
	assert.Equal(t, 2, *existing.Bedrooms, "input must not be mutated")
	assert.Equal(t, []entities.FieldUpdate{{Property: "bedrooms_v2", Value: 3}}, res.Changed)
}

func TestMerge_AccumulatesMinutes(t *testing.T) {
	attrs := entities.QuoteAttributes{}
	attrs = Merge(attrs, []Assignment{assign(t, "special_request_minutes_min", 10)}, entities.StageGatheringInfo).Attributes
	attrs = Merge(attrs, []Assignment{assign(t, "special_request_minutes_min", 15)}, entities.StageGatheringInfo).Attributes

	assert.Equal(t, 25, *attrs.SpecialRequestMinutesMin)
}

func TestMerge_AccumulatesSpecialRequests(t *testing.T) {
	attrs := entities.QuoteAttributes{}
	attrs = Merge(attrs, []Assignment{assign(t, "special_requests", "clean the shed")}, entities.StageGatheringInfo).Attributes
	attrs = Merge(attrs, []Assignment{assign(t, "special_requests", "remove cobwebs")}, entities.StageGatheringInfo).Attributes
	res := Merge(attrs, []Assignment{assign(t, "special_requests", "Clean the shed")}, entities.StageGatheringInfo)

	assert.Equal(t, "clean the shed; remove cobwebs", *res.Attributes.SpecialRequests)
	assert.Empty(t, res.Changed)
}

func TestDropRepeatedRequest(t *testing.T) {
	shed := entities.QuoteAttributes{
		SpecialRequests:          ptr("clean the shed"),
		SpecialRequestMinutesMin: ptr(15),
		SpecialRequestMinutesMax: ptr(30),
	}
	repeat := []Assignment{
		assign(t, "special_requests", "Clean the shed"),
		assign(t, "special_request_minutes_min", 15),
		assign(t, "special_request_minutes_max", 30),
		assign(t, "suburb", "Perth"),
	}

	t.Run("repeated request keeps its minutes once", func(t *testing.T) {
		kept, dropped := DropRepeatedRequest(shed, repeat)
		assert.Equal(t, []string{"special_request_minutes_min", "special_request_minutes_max"}, dropped)

		res := Merge(shed, kept, entities.StageGatheringInfo)
		assert.Equal(t, 15, *res.Attributes.SpecialRequestMinutesMin)
		assert.Equal(t, 30, *res.Attributes.SpecialRequestMinutesMax)
		assert.Equal(t, "Perth", *res.Attributes.Suburb)
	})

	t.Run("minutes without request text", func(t *testing.T) {
		kept, dropped := DropRepeatedRequest(shed, repeat[1:])
		assert.Len(t, dropped, 2)
		assert.Len(t, kept, 1)
	})

	t.Run("new request adds time", func(t *testing.T) {
		next := []Assignment{
			assign(t, "special_requests", "wipe the skirting boards"),
			assign(t, "special_request_minutes_min", 10),
			assign(t, "special_request_minutes_max", 20),
		}
		kept, dropped := DropRepeatedRequest(shed, next)
		assert.Empty(t, dropped)

		res := Merge(shed, kept, entities.StageGatheringInfo)
		assert.Equal(t, 25, *res.Attributes.SpecialRequestMinutesMin)
		assert.Equal(t, 50, *res.Attributes.SpecialRequestMinutesMax)
	})

	t.Run("nothing recorded yet", func(t *testing.T) {
		kept, dropped := DropRepeatedRequest(entities.QuoteAttributes{}, repeat)
		assert.Empty(t, dropped)
		assert.Equal(t, repeat, kept)
	})
}

func TestMerge_EmptyProposalIsIdentity(t *testing.T) {
	existing := entities.QuoteAttributes{
		Suburb:             ptr("Perth"),
		CarpetBedroomCount: ptr(2),
		CarpetCleaning:     true,
		SpecialRequests:    ptr("fridge"),
	}
	for _, stage := range []entities.QuoteStage{entities.StageGatheringInfo, entities.StageQuoteCalculated, entities.StageChatBanned} {
		res := Merge(existing, nil, stage)
		assert.Equal(t, existing, res.Attributes)
		assert.Empty(t, res.Changed)
	}
}

func TestMerge_DerivesCarpetCleaning(t *testing.T) {
	res := Merge(entities.QuoteAttributes{}, []Assignment{assign(t, "carpet_study_count", 1)}, entities.StageGatheringInfo)
	assert.True(t, res.Attributes.CarpetCleaning)
	assert.Contains(t, res.Changed, entities.FieldUpdate{Property: "carpet_cleaning", Value: true})

	res = Merge(res.Attributes, []Assignment{assign(t, "carpet_study_count", 0)}, entities.StageGatheringInfo)
	assert.False(t, res.Attributes.CarpetCleaning)

	for _, counts := range [][6]int{{}, {0, 0, 0, 0, 0, 1}, {3, 1, 0, 0, 0, 0}} {
		attrs := entities.QuoteAttributes{}
		names := []string{"carpet_bedroom_count", "carpet_mainroom_count", "carpet_study_count", "carpet_halway_count", "carpet_stairs_count", "carpet_other_count"}
		var as []Assignment
		want := false
		for i, n := range counts {
			as = append(as, assign(t, names[i], n))
			want = want || n > 0
		}
		assert.Equal(t, want, Merge(attrs, as, entities.StageGatheringInfo).Attributes.CarpetCleaning)
	}
}

func TestMerge_SuppressesEmptyPastGathering(t *testing.T) {
	existing := entities.QuoteAttributes{CustomerName: ptr("Ana"), CustomerPhone: ptr("0400 000 000")}

	res := Merge(existing, []Assignment{
		assign(t, "customer_name", ""),
		assign(t, "customer_phone", "0411 111 111"),
	}, entities.StageGatheringPersonalInfo)

	assert.Equal(t, "Ana", *res.Attributes.CustomerName)
	assert.Equal(t, "0411 111 111", *res.Attributes.CustomerPhone)
	assert.Equal(t, []string{"customer_name"}, res.Suppressed)
}

func TestMerge_AllowsExplicitFalseWhileGathering(t *testing.T) {
	res := Merge(entities.QuoteAttributes{OvenCleaning: ptr(true)}, []Assignment{assign(t, "oven_cleaning", "no")}, entities.StageGatheringInfo)
	require.NotNil(t, res.Attributes.OvenCleaning)
	assert.False(t, *res.Attributes.OvenCleaning)
}

func TestMerge_FreezesRequiredFieldsOncePriced(t *testing.T) {
	existing := entities.QuoteAttributes{Bedrooms: ptr(3)}
	for _, stage := range []entities.QuoteStage{
		entities.StageQuoteCalculated,
		entities.StageGatheringPersonalInfo,
		entities.StagePersonalInfoReceived,
	} {
		t.Run(string(stage), func(t *testing.T) {
			res := Merge(existing, []Assignment{
				assign(t, "bedrooms_v2", 5),
				assign(t, "customer_email", "ana@example.com"),
			}, stage)
			assert.Equal(t, 3, *res.Attributes.Bedrooms)
			assert.Equal(t, "ana@example.com", *res.Attributes.CustomerEmail)
			assert.Equal(t, []string{"bedrooms_v2"}, res.Suppressed)
		})
	}
}

func TestMerge_TerminalStageLocksEverything(t *testing.T) {
	res := Merge(entities.QuoteAttributes{}, []Assignment{assign(t, "customer_name", "Ana")}, entities.StageChatBanned)
	assert.Nil(t, res.Attributes.CustomerName)
	assert.Empty(t, res.Changed)
}
