package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
)

// MobSystem 负责陨石的旋转、移动和越界重生
type MobSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	session       *game.Session
	rng           *rand.Rand
}

// NewMobSystem 创建陨石系统
func NewMobSystem(em *ecs.EntityManager, cfg *config.GameConfig, session *game.Session, rng *rand.Rand) *MobSystem {
	return &MobSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		rng:           rng,
	}
}

// Update 更新所有陨石
func (s *MobSystem) Update(deltaTime float64) {
	bonus := s.session.MobSpeedBonus()

	mobs := ecs.GetEntitiesWith3[
		*components.MobComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range mobs {
		mob, _ := ecs.GetComponent[*components.MobComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		s.rotate(id, mob, deltaTime)

		pos.X += vel.VX + bonus
		pos.Y += vel.VY + bonus

		if coll, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			if s.outOfBounds(coll, pos) {
				s.Respawn(coll, pos, vel)
			}
		}
	}
}

// rotate 每个旋转节拍转过 RotationSpeed 度，角度保持在 [0, 360)
func (s *MobSystem) rotate(id ecs.EntityID, mob *components.MobComponent, deltaTime float64) {
	if !mob.RotationTimer.Tick(deltaTime) {
		return
	}
	mob.RotationTimer.Reset()
	mob.Rotation = NormalizeAngle(mob.Rotation + mob.RotationSpeed)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Angle = mob.Rotation
	}
}

// NormalizeAngle 将角度折算到 [0, 360)
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (s *MobSystem) outOfBounds(coll *components.CollisionComponent, pos *components.PositionComponent) bool {
	w := s.config.Mob.WrapMargin
	screenW := float64(s.config.Screen.Width)
	screenH := float64(s.config.Screen.Height)

	return coll.Top(pos.Y) > screenH+w.Bottom ||
		coll.Left(pos.X) < -w.Left ||
		coll.Right(pos.X) > screenW+w.Right
}

// Respawn 将陨石移回屏幕上方的出生带，并重新选择下落速度
// 水平速度和旋转保持不变
func (s *MobSystem) Respawn(coll *components.CollisionComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	pos.X, pos.Y = entities.RandomMobPlacement(s.config, s.rng, coll.Width, coll.Height)
	vel.VY = entities.RandRange(s.rng, s.config.Mob.SpeedY)
}
