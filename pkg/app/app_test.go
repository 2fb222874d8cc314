package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name       string
		in         Config
		wantConfig string
		keepSeed   bool
	}{
		{"empty", Config{}, DefaultConfigPath, false},
		{"custom path", Config{ConfigPath: "my.yaml"}, "my.yaml", false},
		{"fixed seed", Config{Seed: 42}, DefaultConfigPath, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.withDefaults()
			if got.ConfigPath != tt.wantConfig {
				t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, tt.wantConfig)
			}
			if got.Seed == 0 {
				t.Error("seed should never be 0 after defaults")
			}
			if tt.keepSeed && got.Seed != tt.in.Seed {
				t.Errorf("Seed = %d, want %d", got.Seed, tt.in.Seed)
			}
		})
	}
}

func TestTickDelta(t *testing.T) {
	tests := []struct {
		tps  int
		want float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / float64(ebiten.DefaultTPS)},
	}
	for _, tt := range tests {
		if got := TickDelta(tt.tps); got != tt.want {
			t.Errorf("TickDelta(%d) = %v, want %v", tt.tps, got, tt.want)
		}
	}
}
