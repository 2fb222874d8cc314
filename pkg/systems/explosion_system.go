package systems

import (
	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
)

// ExplosionSystem 推进爆炸动画帧，播放完最后一帧后删除实体
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(em *ecs.EntityManager, cfg *config.GameConfig) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 更新所有爆炸
func (s *ExplosionSystem) Update(deltaTime float64) {
	explosions := ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager)

	for _, id := range explosions {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		if !exp.FrameTimer.Tick(deltaTime) {
			continue
		}
		exp.FrameTimer.Reset()
		exp.Frame++

		if exp.Frame >= exp.FrameCount {
			s.entityManager.DestroyEntity(id)
			continue
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.ImageID = s.config.Explosion.Frames[exp.Frame]
		}
	}
}
