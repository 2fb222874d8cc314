package entities

import (
	"fmt"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/types"
)

// NewExplosion 创建爆炸动画实体，中心位于 (x, y)
// 每 FrameTime 秒切换一帧，最后一帧播放完后由 ExplosionSystem 删除
func NewExplosion(em *ecs.EntityManager, cfg *config.GameConfig, size types.ExplosionSize, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if len(cfg.Explosion.Frames) == 0 {
		return 0, fmt.Errorf("no explosion frames configured")
	}

	edge := cfg.ExplosionSize(size)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{
		ImageID: cfg.Explosion.Frames[0],
		Width:   edge,
		Height:  edge,
	})
	em.AddComponent(id, &components.ExplosionComponent{
		Size:       size,
		FrameCount: len(cfg.Explosion.Frames),
		FrameTimer: components.NewTimer("explosion_frame", cfg.Explosion.FrameTime),
	})

	return id, nil
}
