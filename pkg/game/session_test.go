package game

import (
	"math"
	"testing"

	"github.com/decker502/shmup/pkg/config"
)

func newTestSession() *Session {
	return NewSession(config.DefaultGameConfig().Difficulty)
}

func TestNewSession(t *testing.T) {
	s := newTestSession()
	if s.Score != 0 || s.Difficulty != 1 || s.GameOver {
		t.Errorf("unexpected initial session %+v", s)
	}
	if s.SpawnProbability != 0.1 {
		t.Errorf("SpawnProbability = %f, want 0.1", s.SpawnProbability)
	}
}

func TestAddScoreDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		points     int
		wantScore  int
		wantLevel  int
		wantChange bool
	}{
		{"below first step", 0, 999, 999, 1, false},
		{"exactly one step", 950, 50, 1000, 2, true},
		{"jump across several steps", 500, 2600, 3100, 4, true},
		{"negative clamps to zero", 10, -50, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			s.AddScore(tt.start)
			changed := s.AddScore(tt.points)
			if s.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.Difficulty != tt.wantLevel {
				t.Errorf("Difficulty = %d, want %d", s.Difficulty, tt.wantLevel)
			}
			if changed != tt.wantChange {
				t.Errorf("AddScore changed = %v, want %v", changed, tt.wantChange)
			}
		})
	}
}

func TestSpawnProbabilityIsCapped(t *testing.T) {
	s := newTestSession()
	s.GrowSpawnProbability()
	if math.Abs(s.SpawnProbability-0.101) > 1e-9 {
		t.Errorf("after one tick = %f, want 0.101", s.SpawnProbability)
	}

	s.AddScore(5000)
	for i := 0; i < 10000; i++ {
		s.GrowSpawnProbability()
	}
	if s.SpawnProbability != 0.5 {
		t.Errorf("SpawnProbability = %f, want cap 0.5", s.SpawnProbability)
	}
}

func TestTargetMobCount(t *testing.T) {
	tests := []struct {
		name          string
		extraPerLevel int
		score         int
		want          int
	}{
		{"default stays constant at level 1", 0, 0, 8},
		{"default stays constant at level 4", 0, 3000, 8},
		{"default stays constant at high level", 0, 100000, 8},
		{"extra mobs per level", 1, 3000, 11},
		{"extra mobs capped", 1, 100000, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig().Difficulty
			cfg.ExtraMobsPerLevel = tt.extraPerLevel
			s := NewSession(cfg)
			s.AddScore(tt.score)
			if got := s.TargetMobCount(8); got != tt.want {
				t.Errorf("TargetMobCount(8) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMobSpeedBonus(t *testing.T) {
	s := newTestSession()
	s.AddScore(3000)
	if got := s.MobSpeedBonus(); got != float64(s.Difficulty)*0.5 {
		t.Errorf("MobSpeedBonus = %f", got)
	}
}

func TestScrollBackgroundWraps(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 601; i++ {
		s.ScrollBackground(1, 600)
	}
	if s.BackgroundY != 1 {
		t.Errorf("BackgroundY = %f, want 1", s.BackgroundY)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession()
	s.AddScore(2500)
	s.GameOver = true
	s.PlayerID = 7
	s.Reset()
	if s.Score != 0 || s.Difficulty != 1 || s.GameOver || s.PlayerID != 0 {
		t.Errorf("Reset left state behind: %+v", s)
	}
}
