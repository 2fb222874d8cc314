package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
)

// Updater 每帧更新一次的系统
type Updater interface {
	Update(deltaTime float64)
}

// World 一局游戏的无头模拟
// 持有实体管理器和全部逻辑系统，不依赖图形上下文
type World struct {
	EntityManager *ecs.EntityManager

	config  *config.GameConfig
	session *game.Session
	rng     *rand.Rand

	Player     *PlayerSystem
	Mobs       *MobSystem
	Projectile *ProjectileSystem
	Explosions *ExplosionSystem
	Collision  *CollisionSystem
	Difficulty *DifficultySystem
}

// NewWorld 创建模拟世界
//
// 参数:
//   - cfg: 游戏配置
//   - session: 本局状态，由调用方持有
//   - input: 输入来源
//   - sound: 音效播放，可为 nil
//   - rng: 随机数源，相同种子产生相同的对局
func NewWorld(cfg *config.GameConfig, session *game.Session, input InputProvider, sound game.SoundPlayer, rng *rand.Rand) (*World, error) {
	if cfg == nil || session == nil {
		return nil, fmt.Errorf("game config and session cannot be nil")
	}
	if input == nil {
		return nil, fmt.Errorf("input provider cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("rng cannot be nil")
	}
	if sound == nil {
		sound = game.NopSoundPlayer{}
	}

	em := ecs.NewEntityManager()
	player := NewPlayerSystem(em, cfg, session, input, sound)

	return &World{
		EntityManager: em,
		config:        cfg,
		session:       session,
		rng:           rng,
		Player:        player,
		Mobs:          NewMobSystem(em, cfg, session, rng),
		Projectile:    NewProjectileSystem(em, cfg),
		Explosions:    NewExplosionSystem(em, cfg),
		Collision:     NewCollisionSystem(em, cfg, session, player, sound, rng),
		Difficulty:    NewDifficultySystem(em, cfg, session, rng),
	}, nil
}

// Session 返回本局状态
func (w *World) Session() *game.Session {
	return w.session
}

// Start 重置本局状态，生成飞船和初始陨石
func (w *World) Start() error {
	w.session.Reset()

	playerID, err := entities.NewPlayer(w.EntityManager, w.config)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	w.session.PlayerID = playerID

	for i := 0; i < w.config.Session.InitialMobs; i++ {
		if _, err := entities.NewMob(w.EntityManager, w.config, w.rng); err != nil {
			return fmt.Errorf("failed to create mob: %w", err)
		}
	}

	log.Printf("[World] Started with %d mobs", w.config.Session.InitialMobs)
	return nil
}

// Step 推进一帧
// 顺序：实体更新 → 清理 → 碰撞解析 → 清理 → 难度 → 结束判定 → 背景滚动
func (w *World) Step(deltaTime float64) {
	if w.session.GameOver {
		return
	}

	for _, system := range []Updater{w.Player, w.Mobs, w.Projectile, w.Explosions} {
		system.Update(deltaTime)
	}
	w.EntityManager.RemoveMarkedEntities()

	w.Collision.Update(deltaTime)
	w.EntityManager.RemoveMarkedEntities()

	w.Difficulty.Update(deltaTime)

	if w.playerOutOfLives() && !w.EntityManager.Exists(w.session.DeathExplosionID) {
		w.session.GameOver = true
		log.Printf("[World] Game over, final score %d", w.session.Score)
	}

	w.session.ScrollBackground(w.config.Screen.BackgroundScrollSpeed, float64(w.config.Screen.Height))
}

func (w *World) playerOutOfLives() bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](w.EntityManager, w.session.PlayerID)
	return !ok || player.Lives <= 0
}

// MobCount 返回场上陨石数量
func (w *World) MobCount() int {
	return len(ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager))
}

// PlayerState 返回飞船组件和护盾，飞船不存在时 ok 为 false
func (w *World) PlayerState() (*components.PlayerComponent, *components.ShieldComponent, bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](w.EntityManager, w.session.PlayerID)
	if !ok {
		return nil, nil, false
	}
	shield, ok := ecs.GetComponent[*components.ShieldComponent](w.EntityManager, w.session.PlayerID)
	if !ok {
		return nil, nil, false
	}
	return player, shield, true
}
