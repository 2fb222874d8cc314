package systems

import (
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/ecs"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{365, 5},
		{-8, 352},
		{-368, 352},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMobRotationCadence(t *testing.T) {
	env := newTestEnv(t)
	mobs := NewMobSystem(env.em, env.cfg, env.session, env.rng)
	id := env.spawnMobAt(t, 240, 300)
	mob, _ := ecs.GetComponent[*components.MobComponent](env.em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, id)
	mob.RotationSpeed = -8

	// 0.03s 一帧：第 2 帧累计 0.06s 超过 0.05s 的节拍
	mobs.Update(0.03)
	if mob.Rotation != 0 {
		t.Fatalf("rotation after 30ms = %v, want 0", mob.Rotation)
	}
	mobs.Update(0.03)
	if mob.Rotation != 352 {
		t.Fatalf("rotation after 60ms = %v, want 352", mob.Rotation)
	}
	if sprite.Angle != mob.Rotation {
		t.Errorf("sprite angle = %v, want %v", sprite.Angle, mob.Rotation)
	}
	// 节拍计时器已重置
	mobs.Update(0.03)
	if mob.Rotation != 352 {
		t.Errorf("rotation advanced early: %v", mob.Rotation)
	}
}

func TestMobMovementIncludesDifficultyBonus(t *testing.T) {
	env := newTestEnv(t)
	mobs := NewMobSystem(env.em, env.cfg, env.session, env.rng)
	id := env.spawnMobAt(t, 240, 300)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](env.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)
	vel.VX, vel.VY = 1, 2

	env.session.AddScore(2500) // 难度 3，加成 1.5
	mobs.Update(1.0 / 60)

	if pos.X != 240+1+1.5 || pos.Y != 300+2+1.5 {
		t.Errorf("position = (%v, %v), want (242.5, 303.5)", pos.X, pos.Y)
	}
}

func TestMobRespawnWhenLeavingScreen(t *testing.T) {
	tests := []struct {
		name string
		// place 根据碰撞尺寸返回越界后的中心
		place func(c *components.CollisionComponent) (float64, float64)
	}{
		{"below bottom", func(c *components.CollisionComponent) (float64, float64) {
			return 240, 600 + 10 + c.Height/2 + 5
		}},
		{"past left", func(c *components.CollisionComponent) (float64, float64) {
			return -25 + c.Width/2 - 5, 300
		}},
		{"past right", func(c *components.CollisionComponent) (float64, float64) {
			return 480 + 20 - c.Width/2 + 5, 300
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			mobs := NewMobSystem(env.em, env.cfg, env.session, env.rng)
			id := env.spawnMobAt(t, 0, 0)
			pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](env.em, id)
			coll, _ := ecs.GetComponent[*components.CollisionComponent](env.em, id)
			pos.X, pos.Y = tt.place(coll)

			mobs.Update(1.0 / 60)

			left, top := coll.Left(pos.X), coll.Top(pos.Y)
			if left < 0 || left >= 480-coll.Width {
				t.Errorf("left = %v, want in [0, %v)", left, 480-coll.Width)
			}
			if top < -150 || top >= -100 {
				t.Errorf("top = %v, want in [-150, -100)", top)
			}
			if vel.VY < 1 || vel.VY >= 8 {
				t.Errorf("speedY = %v, want in [1, 8)", vel.VY)
			}
			if !env.em.Exists(id) {
				t.Error("respawned mob should keep its entity")
			}
		})
	}
}

func TestMobInsideScreenNotRespawned(t *testing.T) {
	env := newTestEnv(t)
	mobs := NewMobSystem(env.em, env.cfg, env.session, env.rng)
	id := env.spawnMobAt(t, 240, 300)
	pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)

	for i := 0; i < 10; i++ {
		mobs.Update(1.0 / 60)
	}
	if pos.X != 240 || pos.Y != 300 {
		t.Errorf("stationary mob moved to (%v, %v)", pos.X, pos.Y)
	}
}
