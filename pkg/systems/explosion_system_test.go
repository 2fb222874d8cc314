package systems

import (
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/types"
)

func TestExplosionPlaysAllFrames(t *testing.T) {
	env := newTestEnv(t)
	sys := NewExplosionSystem(env.em, env.cfg)
	id, err := entities.NewExplosion(env.em, env.cfg, types.ExplosionLarge, 100, 100)
	if err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}
	exp, _ := ecs.GetComponent[*components.ExplosionComponent](env.em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, id)
	frames := env.cfg.Explosion.Frames

	// 0.1s 一帧，每次都超过 50ms 的帧间隔
	for want := 1; want < len(frames); want++ {
		sys.Update(0.1)
		if exp.Frame != want {
			t.Fatalf("frame = %d, want %d", exp.Frame, want)
		}
		if sprite.ImageID != frames[want] {
			t.Fatalf("image = %s, want %s", sprite.ImageID, frames[want])
		}
		if !env.em.Exists(id) {
			t.Fatalf("explosion removed at frame %d", want)
		}
	}

	sys.Update(0.1)
	if env.em.Exists(id) {
		t.Error("explosion should be removed after its last frame")
	}
}

func TestExplosionWaitsForFrameTime(t *testing.T) {
	env := newTestEnv(t)
	sys := NewExplosionSystem(env.em, env.cfg)
	id, _ := entities.NewExplosion(env.em, env.cfg, types.ExplosionSmall, 100, 100)
	exp, _ := ecs.GetComponent[*components.ExplosionComponent](env.em, id)

	sys.Update(0.02)
	sys.Update(0.02)
	if exp.Frame != 0 {
		t.Errorf("frame advanced after 40ms: %d", exp.Frame)
	}
	sys.Update(0.02)
	if exp.Frame != 1 {
		t.Errorf("frame = %d after 60ms, want 1", exp.Frame)
	}
}
