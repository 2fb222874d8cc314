package entities

import (
	"fmt"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/types"
)

// NewBullet 创建子弹实体
// 子弹底边位于 bottomY，水平中心位于 x，以恒定速度向上飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - x: 子弹中心 X
//   - bottomY: 子弹底边 Y
func NewBullet(em *ecs.EntityManager, cfg *config.GameConfig, x, bottomY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	b := cfg.Bullet
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: bottomY - b.Height/2})
	em.AddComponent(id, &components.VelocityComponent{VY: b.Speed})
	em.AddComponent(id, &components.SpriteComponent{
		ImageID: b.Sprite,
		Width:   b.Width,
		Height:  b.Height,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Shape:  components.ShapeBox,
		Width:  b.Width,
		Height: b.Height,
	})
	em.AddComponent(id, &components.BulletComponent{})

	return id, nil
}

// NewPowerup 创建道具实体，中心位于 (x, y)，缓慢下落
func NewPowerup(em *ecs.EntityManager, cfg *config.GameConfig, powerupType types.PowerupType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	p := cfg.Powerup
	sprite, ok := p.Sprites[powerupType.String()]
	if !ok {
		return 0, fmt.Errorf("no sprite configured for powerup %q", powerupType)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VY: p.Speed})
	em.AddComponent(id, &components.SpriteComponent{
		ImageID: sprite,
		Width:   p.Width,
		Height:  p.Height,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Shape:  components.ShapeBox,
		Width:  p.Width,
		Height: p.Height,
	})
	em.AddComponent(id, &components.PowerupComponent{Type: powerupType})

	return id, nil
}
