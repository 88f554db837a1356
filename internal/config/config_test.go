package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/joho/godotenv"

	"rwsch/internal/forecast"
	"rwsch/internal/schedule"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)
	t.Setenv("RWSCH_STRATEGY_ORDER", "")
	t.Setenv("RWSCH_SEED", "")
	t.Setenv("RWSCH_SAMPLES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogDir != filepath.Join(dir, "logs") {
		t.Errorf("Unexpected log dir %q", cfg.LogDir)
	}
	if !reflect.DeepEqual(cfg.StrategyOrder, schedule.DefaultTiers) {
		t.Errorf("Expected default tier order, got %v", cfg.StrategyOrder)
	}
	if cfg.Seed != 0 || cfg.Samples != 1 {
		t.Errorf("Unexpected seed/samples: %d/%d", cfg.Seed, cfg.Samples)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("RWSCH_STRATEGY_ORDER", "past,high")
	t.Setenv("RWSCH_SEED", "77")
	t.Setenv("RWSCH_SAMPLES", "25")
	t.Setenv("ENABLE_MERMAID_CHARTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []schedule.Tier{schedule.PastActivity, schedule.HighActivity}
	if !reflect.DeepEqual(cfg.StrategyOrder, want) {
		t.Errorf("Expected %v, got %v", want, cfg.StrategyOrder)
	}
	if cfg.Seed != 77 || cfg.Samples != 25 || !cfg.EnableMermaidCharts {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if got := cfg.Selector().Strategies(); len(got) != 2 || got[0] != schedule.PastActivity {
		t.Errorf("Selector does not follow the configured order: %v", got)
	}
}

func TestLoad_RejectsUnknownTier(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("RWSCH_STRATEGY_ORDER", "high,sometimes")

	if _, err := Load(); err == nil {
		t.Errorf("Expected error for unknown tier")
	}
}

func TestLoad_RejectsMalformedSeed(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("RWSCH_STRATEGY_ORDER", "")

	for _, raw := range []string{"12a", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("RWSCH_SEED", raw)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for RWSCH_SEED=%q", raw)
			}
		})
	}
}

func TestLoad_ClampsSamples(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("RWSCH_STRATEGY_ORDER", "")
	t.Setenv("RWSCH_SEED", "")

	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-5", 1},
		{"250", 250},
		{"999999999", forecast.MaxSamples},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("RWSCH_SAMPLES", tt.raw)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Samples != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, cfg.Samples)
			}
		})
	}
}

func TestGodotenvQuoting(t *testing.T) {
	content := `RWSCH_STRATEGY_ORDER='high, "past"'`
	tmpfile, err := os.CreateTemp("", ".env.test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(tmpfile.Name())
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `high, "past"`
	if env["RWSCH_STRATEGY_ORDER"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["RWSCH_STRATEGY_ORDER"])
	}
}
