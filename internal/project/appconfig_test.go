package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultScribeWidth = 0.2
	cfg.DefaultSpacingMode = model.SpacingHalf
	cfg.DefaultNotch = true
	cfg.RecentPlans = []string{"/tmp/a.wdplan.json", "/tmp/b.wdplan.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultScribeWidth != 0.2 {
		t.Errorf("expected DefaultScribeWidth=0.2, got %f", loaded.DefaultScribeWidth)
	}
	if loaded.DefaultSpacingMode != model.SpacingHalf {
		t.Errorf("expected half spacing mode, got %s", loaded.DefaultSpacingMode)
	}
	if !loaded.DefaultNotch {
		t.Error("expected DefaultNotch=true")
	}
	if len(loaded.RecentPlans) != 2 {
		t.Errorf("expected 2 recent plans, got %d", len(loaded.RecentPlans))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultScribeWidth != defaults.DefaultScribeWidth {
		t.Errorf("expected default scribe width %f, got %f", defaults.DefaultScribeWidth, cfg.DefaultScribeWidth)
	}
	if cfg.DefaultBoundaryTest != model.BoundaryCorners {
		t.Errorf("expected corners boundary test, got %s", cfg.DefaultBoundaryTest)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigNilRecentPlans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_scribe_width": 0.1}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentPlans == nil {
		t.Error("RecentPlans must never be nil after load")
	}
}

func TestAddRecentPlan(t *testing.T) {
	cfg := model.DefaultAppConfig()

	AddRecentPlan(&cfg, "/tmp/a.wdplan.json", 3)
	AddRecentPlan(&cfg, "/tmp/b.wdplan.json", 3)
	AddRecentPlan(&cfg, "/tmp/a.wdplan.json", 3)

	if len(cfg.RecentPlans) != 2 {
		t.Fatalf("expected 2 recent plans, got %d", len(cfg.RecentPlans))
	}
	if cfg.RecentPlans[0] != "/tmp/a.wdplan.json" {
		t.Errorf("most recent plan should be first, got %s", cfg.RecentPlans[0])
	}

	AddRecentPlan(&cfg, "/tmp/c.wdplan.json", 3)
	AddRecentPlan(&cfg, "/tmp/d.wdplan.json", 3)
	if len(cfg.RecentPlans) != 3 {
		t.Errorf("recent list must be capped at 3, got %d", len(cfg.RecentPlans))
	}
}
