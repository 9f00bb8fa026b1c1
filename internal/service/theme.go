package service

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// Preference keys. The marker name is shared with already-deployed clients.
const (
	prefTheme          = "theme"
	prefDarkMigration  = "forceDarkUpdateV1"
	markerValueApplied = "true"
)

type ThemeService struct {
	prefs repository.Preferences
}

func NewThemeService(prefs repository.Preferences) *ThemeService {
	return &ThemeService{prefs: prefs}
}

// Init runs the one-time dark default migration for the visitor and returns
// the effective theme. The migration overwrites any stored theme exactly once.
func (s *ThemeService) Init(ctx context.Context, visitorID string) (models.Theme, error) {
	_, migrated, err := s.prefs.Get(ctx, visitorID, prefDarkMigration)
	if err != nil {
		return models.DefaultTheme, fmt.Errorf("read migration marker: %w", err)
	}
	if !migrated {
		if err := s.prefs.Set(ctx, visitorID, prefTheme, string(models.ThemeDark)); err != nil {
			return models.DefaultTheme, fmt.Errorf("force dark theme: %w", err)
		}
		if err := s.prefs.Set(ctx, visitorID, prefDarkMigration, markerValueApplied); err != nil {
			return models.DefaultTheme, fmt.Errorf("set migration marker: %w", err)
		}
	}
	return s.Current(ctx, visitorID)
}

// Current reads the stored theme; missing or unknown values mean dark.
func (s *ThemeService) Current(ctx context.Context, visitorID string) (models.Theme, error) {
	v, ok, err := s.prefs.Get(ctx, visitorID, prefTheme)
	if err != nil {
		return models.DefaultTheme, fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return models.DefaultTheme, nil
	}
	theme, valid := models.ParseTheme(v)
	if !valid {
		return models.DefaultTheme, nil
	}
	return theme, nil
}

func (s *ThemeService) Set(ctx context.Context, visitorID string, theme models.Theme) error {
	if _, ok := models.ParseTheme(string(theme)); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.prefs.Set(ctx, visitorID, prefTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Toggle flips the applied theme and persists it. The migration runs first
// so a later page load cannot overwrite the visitor's choice.
func (s *ThemeService) Toggle(ctx context.Context, visitorID string) (models.Theme, error) {
	cur, err := s.Init(ctx, visitorID)
	if err != nil {
		return cur, err
	}
	next := cur.Other()
	if err := s.Set(ctx, visitorID, next); err != nil {
		return cur, err
	}
	return next, nil
}
