package systems

import (
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/types"
)

func TestBulletLeavesTop(t *testing.T) {
	tests := []struct {
		name        string
		bottom      float64
		wantRemoved bool
	}{
		{"well inside", 300, false},
		{"bottom reaches 0", 10, false},
		{"bottom above 0", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			sys := NewProjectileSystem(env.em, env.cfg)
			id, err := entities.NewBullet(env.em, env.cfg, 100, tt.bottom)
			if err != nil {
				t.Fatalf("NewBullet failed: %v", err)
			}

			sys.Update(1.0 / 60)

			if got := !env.em.Exists(id); got != tt.wantRemoved {
				t.Errorf("removed = %v, want %v", got, tt.wantRemoved)
			}
		})
	}
}

func TestBulletMovesUp(t *testing.T) {
	env := newTestEnv(t)
	sys := NewProjectileSystem(env.em, env.cfg)
	id, _ := entities.NewBullet(env.em, env.cfg, 100, 300)
	pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)
	before := pos.Y

	sys.Update(1.0 / 60)

	if pos.Y != before-10 {
		t.Errorf("y = %v, want %v", pos.Y, before-10)
	}
}

func TestPowerupFallsAndLeavesBottom(t *testing.T) {
	tests := []struct {
		name        string
		centerY     float64
		wantRemoved bool
	}{
		{"inside", 300, false},
		{"top reaches bottom edge", 600 + 15 - 2, false},
		{"top past bottom edge", 600 + 15 - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			sys := NewProjectileSystem(env.em, env.cfg)
			id, err := entities.NewPowerup(env.em, env.cfg, types.PowerupShield, 100, tt.centerY)
			if err != nil {
				t.Fatalf("NewPowerup failed: %v", err)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)

			sys.Update(1.0 / 60)

			if pos.Y != tt.centerY+2 {
				t.Errorf("y = %v, want %v", pos.Y, tt.centerY+2)
			}
			if got := !env.em.Exists(id); got != tt.wantRemoved {
				t.Errorf("removed = %v, want %v", got, tt.wantRemoved)
			}
		})
	}
}
