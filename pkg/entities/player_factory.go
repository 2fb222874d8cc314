package entities

import (
	"fmt"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
)

// PlayerSpawnPosition 返回飞船出生点（中心坐标）
// 水平居中，底边距屏幕底部 BottomMargin
func PlayerSpawnPosition(cfg *config.GameConfig) (float64, float64) {
	x := float64(cfg.Screen.Width) / 2
	y := float64(cfg.Screen.Height) - cfg.Player.BottomMargin - cfg.Player.Height/2
	return x, y
}

// PlayerHiddenPosition 返回隐身时的停放位置（屏幕下方）
func PlayerHiddenPosition(cfg *config.GameConfig) (float64, float64) {
	return float64(cfg.Screen.Width) / 2, float64(cfg.Screen.Height) + cfg.Player.HideOffset
}

// NewPlayer 创建飞船实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 飞船实体ID
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	p := cfg.Player
	x, y := PlayerSpawnPosition(cfg)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		ImageID: p.Sprite,
		Width:   p.Width,
		Height:  p.Height,
	})
	// 与道具按矩形判定，与陨石按圆形外壳判定
	em.AddComponent(id, &components.CollisionComponent{
		Shape:      components.ShapeBox,
		Width:      p.Width,
		Height:     p.Height,
		HullRadius: p.Radius,
	})
	em.AddComponent(id, &components.ShieldComponent{Current: p.Shield, Max: p.Shield})
	em.AddComponent(id, &components.PlayerComponent{
		Lives:      p.Lives,
		Power:      1,
		Speed:      p.Speed,
		ShootTimer: components.NewTimer("shoot", p.ShootDelay),
		PowerTimer: components.NewTimer("power", p.PowerTime),
		HideTimer:  components.NewTimer("hide", p.HideTime),
	})

	return id, nil
}
