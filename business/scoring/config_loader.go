package scoring

import (
	"context"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
)

// Loader resolves the lookup tables from the config repository, falling back to defaults.
type Loader struct {
	repo     ConfigRepository
	defaults Tables
}

func NewLoader(repo ConfigRepository, defaults Tables) *Loader {
	return &Loader{repo: repo, defaults: defaults}
}

// Load starts from the defaults and overrides them key by key with the stored rows.
// Any repository error, or merged tables that fail validation, yields the defaults.
func (l *Loader) Load(ctx context.Context) Tables {
	if l.repo == nil {
		return l.defaults
	}

	entries, err := l.repo.ListEntries(ctx)
	if err != nil {
		logger.Warn("failed to load scoring config, using defaults", "error", err)
		return l.defaults
	}
	if len(entries) == 0 {
		return l.defaults
	}

	merged := Merge(l.defaults, entries)
	if err := merged.Validate(); err != nil {
		logger.Warn("stored scoring config is invalid, using defaults", "error", err)
		return l.defaults
	}

	return merged
}

// Merge returns a copy of base with entries applied on top.
func Merge(base Tables, entries []domain.ScoringConfigEntry) Tables {
	out := Tables{
		CarbonGradeToScore: copyTable(base.CarbonGradeToScore),
		WaterGradeToScore:  copyTable(base.WaterGradeToScore),
		ActionWeightDelta:  copyTable(base.ActionWeightDelta),
	}

	for _, e := range entries {
		switch e.Kind {
		case domain.ScoringKindCarbonGrade:
			out.CarbonGradeToScore[e.Key] = e.Value
		case domain.ScoringKindWaterGrade:
			out.WaterGradeToScore[e.Key] = e.Value
		case domain.ScoringKindActionDelta:
			out.ActionWeightDelta[e.Key] = e.Value
		default:
			logger.Warn("unknown scoring config kind", "kind", e.Kind, "key", e.Key)
		}
	}

	return out
}

// Entries flattens tables into rows, the inverse of Merge over empty tables.
func (t Tables) Entries() []domain.ScoringConfigEntry {
	out := make([]domain.ScoringConfigEntry, 0,
		len(t.CarbonGradeToScore)+len(t.WaterGradeToScore)+len(t.ActionWeightDelta))
	for k, v := range t.CarbonGradeToScore {
		out = append(out, domain.ScoringConfigEntry{Kind: domain.ScoringKindCarbonGrade, Key: k, Value: v})
	}
	for k, v := range t.WaterGradeToScore {
		out = append(out, domain.ScoringConfigEntry{Kind: domain.ScoringKindWaterGrade, Key: k, Value: v})
	}
	for k, v := range t.ActionWeightDelta {
		out = append(out, domain.ScoringConfigEntry{Kind: domain.ScoringKindActionDelta, Key: k, Value: v})
	}
	return out
}

func copyTable(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
