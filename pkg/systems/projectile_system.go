package systems

import (
	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
)

// ProjectileSystem 移动子弹和道具，并删除离开屏幕的实体
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewProjectileSystem 创建投射物系统
func NewProjectileSystem(em *ecs.EntityManager, cfg *config.GameConfig) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 子弹底边越过屏幕顶部时删除，道具顶边越过屏幕底部时删除
func (s *ProjectileSystem) Update(deltaTime float64) {
	screenH := float64(s.config.Screen.Height)

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](s.entityManager)
	for _, id := range bullets {
		pos, coll, ok := s.advance(id)
		if ok && coll.Bottom(pos.Y) < 0 {
			s.entityManager.DestroyEntity(id)
		}
	}

	powerups := ecs.GetEntitiesWith1[*components.PowerupComponent](s.entityManager)
	for _, id := range powerups {
		pos, coll, ok := s.advance(id)
		if ok && coll.Top(pos.Y) > screenH {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// advance 按速度移动一帧
func (s *ProjectileSystem) advance(id ecs.EntityID) (*components.PositionComponent, *components.CollisionComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	coll, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	pos.X += vel.VX
	pos.Y += vel.VY
	return pos, coll, true
}
