package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

// A canceled context must short-circuit before the DB handle is touched,
// so these repositories are built without one.
func TestRepositoriesHonourCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	products := NewProductRepository(nil)
	profiles := NewUserProfileRepository(nil)
	events := NewPreferenceEventRepository(nil)
	scoringCfg := NewScoringConfigRepository(nil)

	calls := map[string]func() error{
		"products.FindByID": func() error { _, err := products.FindByID(ctx, 1); return err },
		"products.FindAll":  func() error { _, err := products.FindAll(ctx); return err },
		"products.FindByCategory": func() error {
			_, err := products.FindByCategory(ctx, "Shirts")
			return err
		},
		"products.Create":      func() error { return products.Create(ctx, &domain.Product{}) },
		"products.Update":      func() error { return products.Update(ctx, &domain.Product{ID: 1}) },
		"products.Delete":      func() error { return products.Delete(ctx, 1) },
		"profiles.GetProfile":  func() error { _, _, err := profiles.GetProfile(ctx, 1); return err },
		"profiles.SaveProfile": func() error { return profiles.SaveProfile(ctx, domain.NewUserProfile(1)) },
		"events.SaveEvent":     func() error { return events.SaveEvent(ctx, domain.PreferenceEvent{}) },
		"events.ListByUser":    func() error { _, err := events.ListByUser(ctx, 1, 10); return err },
		"scoring.ListEntries":  func() error { _, err := scoringCfg.ListEntries(ctx); return err },
		"scoring.UpsertEntries": func() error {
			return scoringCfg.UpsertEntries(ctx, []domain.ScoringConfigEntry{
				{Kind: domain.ScoringKindCarbonGrade, Key: "A", Value: 4},
			})
		},
		"scoring.UpsertEntries empty": func() error { return scoringCfg.UpsertEntries(ctx, nil) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		})
	}
}
