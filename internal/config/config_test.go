package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSeasonTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.yaml")
	data := `
primary_weight: 0.4
bumps:
  - name: valentines
    month: 2
    day: 14
    window_days: 3
    weight: 0.25
season_months: [6, 7]
season_weight: 0.1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp yaml: %v", err)
	}

	table, err := loadSeasonTable(path)
	if err != nil {
		t.Fatalf("loadSeasonTable failed: %v", err)
	}

	if table.PrimaryWeight != 0.4 {
		t.Errorf("expected primary_weight=0.4, got %f", table.PrimaryWeight)
	}
	if len(table.Bumps) != 1 || table.Bumps[0].Name != "valentines" || table.Bumps[0].WindowDays != 3 {
		t.Errorf("unexpected bumps: %+v", table.Bumps)
	}
	if len(table.SeasonMonths) != 2 || table.SeasonMonths[0] != time.June {
		t.Errorf("unexpected season months: %v", table.SeasonMonths)
	}
}

func TestLoadSeasonTableMissingFile(t *testing.T) {
	if _, err := loadSeasonTable("/nonexistent/season.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SEASON_TABLE_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected default TTL 10m, got %s", cfg.CacheTTL)
	}
	if cfg.SeasonTable.PrimaryWeight == 0 {
		t.Error("expected built-in season table")
	}
}
