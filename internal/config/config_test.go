package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 20271 {
		t.Fatalf("port bawaan = %d", cfg.Server.Port)
	}
	if cfg.Pipeline.RegionThreshold != 0.01 {
		t.Fatalf("ambang daerah bawaan = %v", cfg.Pipeline.RegionThreshold)
	}
	if cfg.Pipeline.DefaultGanttDays != 30 {
		t.Fatalf("durasi gantt bawaan = %d", cfg.Pipeline.DefaultGanttDays)
	}
	if cfg.Data.DefaultDataset != "data_inovasi.xlsx" {
		t.Fatalf("dataset bawaan = %q", cfg.Data.DefaultDataset)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("INOVASI_GEMINI_API_KEY", "kunci-uji")
	t.Setenv("INOVASI_DEFAULT_DATASET", "lain.xlsx")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.AI.APIKey != "kunci-uji" {
		t.Fatalf("APIKey = %q", cfg.AI.APIKey)
	}
	if cfg.Data.DefaultDataset != "lain.xlsx" {
		t.Fatalf("DefaultDataset = %q", cfg.Data.DefaultDataset)
	}
}

func TestApplyEnvOverridesFallbackKey(t *testing.T) {
	t.Setenv("INOVASI_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "kunci-global")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.AI.APIKey != "kunci-global" {
		t.Fatalf("APIKey = %q, harusnya jatuh ke GEMINI_API_KEY", cfg.AI.APIKey)
	}
}

func TestResolveDataPathAbsolute(t *testing.T) {
	cfg := DefaultConfig()

	abs := filepath.Join(t.TempDir(), "data.xlsx")
	if got := ResolveDataPath(cfg, abs); got != abs {
		t.Fatalf("jalur absolut berubah: %q", got)
	}
}
