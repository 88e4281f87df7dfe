package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
)

// AdminService reads and updates the stored lookup table overrides.
type AdminService struct {
	repo   ConfigRepository
	loader *Loader
}

func NewAdminService(repo ConfigRepository, loader *Loader) *AdminService {
	return &AdminService{repo: repo, loader: loader}
}

// EffectiveTables returns the tables scoring currently runs with.
func (s *AdminService) EffectiveTables(ctx context.Context) (Tables, error) {
	if err := ctx.Err(); err != nil {
		return Tables{}, fmt.Errorf("context error: %w", err)
	}
	return s.loader.Load(ctx), nil
}

// UpsertEntries stores overrides after checking the merged result still validates.
func (s *AdminService) UpsertEntries(ctx context.Context, entries []domain.ScoringConfigEntry) (Tables, error) {
	if err := ctx.Err(); err != nil {
		return Tables{}, fmt.Errorf("context error: %w", err)
	}
	if len(entries) == 0 {
		return Tables{}, fmt.Errorf("%w: at least one entry is required", domain.ErrValidation)
	}

	for _, e := range entries {
		switch e.Kind {
		case domain.ScoringKindCarbonGrade, domain.ScoringKindWaterGrade, domain.ScoringKindActionDelta:
		default:
			return Tables{}, fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, e.Kind)
		}
		if e.Key == "" {
			return Tables{}, fmt.Errorf("%w: key is required", domain.ErrValidation)
		}
	}

	current, err := s.repo.ListEntries(ctx)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to list scoring config: %w", err)
	}

	merged := Merge(Merge(s.loader.defaults, current), entries)
	if err := merged.Validate(); err != nil {
		return Tables{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.repo.UpsertEntries(ctx, entries); err != nil {
		return Tables{}, fmt.Errorf("failed to save scoring config: %w", err)
	}

	logger.Info("scoring config updated", "entries", len(entries))

	return merged, nil
}

// SortedEntries flattens tables into rows ordered by kind then key.
func SortedEntries(t Tables) []domain.ScoringConfigEntry {
	out := t.Entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Key < out[j].Key
	})
	return out
}
