package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
)

// MobRadius 陨石碰撞半径 int(width * factor / 2)
func MobRadius(width, factor float64) int {
	return int(width * factor / 2)
}

// RandomMobPlacement 在屏幕上方的出生带内随机选取陨石中心
// 左边缘 x ∈ [0, W - width)，上边缘 y ∈ [SpawnY.Min, SpawnY.Max)
func RandomMobPlacement(cfg *config.GameConfig, rng *rand.Rand, width, height float64) (float64, float64) {
	left := float64(RandIntRange(rng, 0, cfg.Screen.Width-int(width)))
	top := RandRange(rng, cfg.Mob.SpawnY)
	return left + width/2, top + height/2
}

// NewMob 创建陨石实体
// 外观、位置、速度和旋转速度都随机生成
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - rng: 随机数源
//
// 返回:
//   - ecs.EntityID: 陨石实体ID
//   - error: 参数无效时返回错误
func NewMob(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil || rng == nil {
		return 0, fmt.Errorf("game config and rng cannot be nil")
	}
	if len(cfg.Mob.Variants) == 0 {
		return 0, fmt.Errorf("no mob variants configured")
	}

	m := cfg.Mob
	variantIdx := rng.Intn(len(m.Variants))
	variant := m.Variants[variantIdx]
	radius := MobRadius(variant.Width, m.RadiusFactor)
	x, y := RandomMobPlacement(cfg, rng, variant.Width, variant.Height)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{
		VX: RandRange(rng, m.SpeedX),
		VY: RandRange(rng, m.SpeedY),
	})
	em.AddComponent(id, &components.SpriteComponent{
		ImageID: variant.Sprite,
		Width:   variant.Width,
		Height:  variant.Height,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Shape:  components.ShapeCircle,
		Width:  variant.Width,
		Height: variant.Height,
		Radius: float64(radius),
	})
	em.AddComponent(id, &components.MobComponent{
		Radius:        radius,
		Variant:       variantIdx,
		RotationSpeed: RandRange(rng, m.RotationSpeed),
		RotationTimer: components.NewTimer("rotation", m.RotationInterval),
	})

	return id, nil
}
