package quoting

import (
	"strings"

	"vacate_quote/internal/domain/entities"
)

// MergeResult is the outcome of merging one proposal into a record.
type MergeResult struct {
	Attributes entities.QuoteAttributes
	Changed    []entities.FieldUpdate
	Suppressed []string
}

// Merge folds assignments into existing under the rules of stage, which must
// be the effective stage of the record. existing is not modified.
//
// Accumulative fields are summed or appended. Required fields are frozen once
// the quote is priced. Past Gathering Info an empty, zero or false proposal is
// ignored so a bad extraction cannot blank a committed answer. carpet_cleaning
// is recomputed last.
func Merge(existing entities.QuoteAttributes, assignments []Assignment, stage entities.QuoteStage) MergeResult {
	res := MergeResult{Attributes: existing}
	merged := &res.Attributes

	for _, as := range assignments {
		attr, ok := Lookup(as.Name)
		if !ok {
			res.Suppressed = append(res.Suppressed, as.Name)
			continue
		}
		if locked(attr, stage) {
			res.Suppressed = append(res.Suppressed, attr.Name)
			continue
		}
		if stage != entities.StageGatheringInfo && as.Value.IsEmpty() {
			res.Suppressed = append(res.Suppressed, attr.Name)
			continue
		}

		current, present := attr.Get(merged)
		next := as.Value
		if attr.Accumulative && present {
			next = accumulate(attr, current, next)
		}
		if present && current == next {
			continue
		}
		attr.Set(merged, next)
		res.Changed = upsertChange(res.Changed, attr.Name, next.Interface())
	}

	carpet := false
	for _, n := range merged.CarpetCounts() {
		if n > 0 {
			carpet = true
			break
		}
	}
	if carpet != merged.CarpetCleaning {
		merged.CarpetCleaning = carpet
		res.Changed = upsertChange(res.Changed, "carpet_cleaning", carpet)
	}
	return res
}

// DropRepeatedRequest removes special-request minutes that do not come with a
// new request. Minutes belong to a request, so once one is recorded a
// proposal whose text is absent or already recorded cannot add time. The
// names of removed assignments are returned.
func DropRepeatedRequest(existing entities.QuoteAttributes, assignments []Assignment) ([]Assignment, []string) {
	have := strings.ToLower(strings.TrimSpace(entities.StringValue(existing.SpecialRequests)))
	if have == "" {
		return assignments, nil
	}
	for _, as := range assignments {
		if as.Name != "special_requests" {
			continue
		}
		add := strings.ToLower(strings.TrimSpace(as.Value.Text))
		if add != "" && !strings.Contains(have, add) {
			return assignments, nil
		}
	}

	kept := make([]Assignment, 0, len(assignments))
	var dropped []string
	for _, as := range assignments {
		if as.Name == "special_request_minutes_min" || as.Name == "special_request_minutes_max" {
			dropped = append(dropped, as.Name)
			continue
		}
		kept = append(kept, as)
	}
	return kept, dropped
}

// Editable reports whether attr may still change at stage.
func Editable(attr Attribute, stage entities.QuoteStage) bool {
	return !locked(attr, stage)
}

func locked(attr Attribute, stage entities.QuoteStage) bool {
	if stage.IsTerminal() {
		return true
	}
	if attr.Group == GroupContact {
		return false
	}
	return stage.IsPriced()
}

func accumulate(attr Attribute, current, proposed Value) Value {
	switch attr.Kind {
	case KindInteger:
		current.Int = clamp(current.Int+proposed.Int, attr.Max)
		return current
	default:
		add := strings.TrimSpace(proposed.Text)
		have := strings.TrimSpace(current.Text)
		switch {
		case add == "":
			return current
		case have == "":
			current.Text = add
		case strings.Contains(strings.ToLower(have), strings.ToLower(add)):
			// already recorded
		default:
			current.Text = have + "; " + add
		}
		return current
	}
}

func upsertChange(changes []entities.FieldUpdate, name string, value any) []entities.FieldUpdate {
	for i := range changes {
		if changes[i].Property == name {
			changes[i].Value = value
			return changes
		}
	}
	return append(changes, entities.FieldUpdate{Property: name, Value: value})
}
