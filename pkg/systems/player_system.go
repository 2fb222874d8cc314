package systems

import (
	"log"
	"math"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
)

// PlayerSystem 处理飞船的移动、射击、火力衰减和隐身恢复
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	session       *game.Session
	input         InputProvider
	sound         game.SoundPlayer
}

// NewPlayerSystem 创建飞船系统
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, session *game.Session, input InputProvider, sound game.SoundPlayer) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		input:         input,
		sound:         sound,
	}
}

// playerParts 获取飞船的常用组件
func (s *PlayerSystem) playerParts(id ecs.EntityID) (*components.PlayerComponent, *components.PositionComponent, bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return player, pos, true
}

// Update 更新飞船
// 顺序：火力衰减 → 隐身恢复 → 读取输入（开火先于移动）
func (s *PlayerSystem) Update(deltaTime float64) {
	id := s.session.PlayerID
	player, pos, ok := s.playerParts(id)
	if !ok || !s.entityManager.Exists(id) {
		return
	}

	// 火力每 PowerTime 秒下降一级，最低为 1
	player.PowerTimer.Tick(deltaTime)
	if player.Power >= 2 && player.PowerTimer.IsReady {
		player.Power--
		player.PowerTimer.Reset()
		log.Printf("[PlayerSystem] Power decayed to %d", player.Power)
	}

	player.ShootTimer.Tick(deltaTime)

	if player.Hidden {
		// 生命耗尽后保持隐身，等待结束判定
		if !player.HideTimer.Tick(deltaTime) || player.Lives <= 0 {
			return
		}
		s.unhide(id, player, pos)
	}

	in := s.input.Poll()

	if in.Fire {
		s.Shoot(id)
	}

	vx := 0.0
	if in.Left {
		vx -= player.Speed
	}
	if in.Right {
		vx += player.Speed
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX = vx
	}

	// 水平移动并限制在屏幕内
	halfW := s.config.Player.Width / 2
	pos.X = math.Max(halfW, math.Min(float64(s.config.Screen.Width)-halfW, pos.X+vx))
}

// Shoot 尝试开火
// 距上次开火超过 ShootDelay 才会发射；火力 1 从机头发射一发，
// 火力 >= 2 从机身左右两侧中线各发射一发
//
// 返回是否成功开火
func (s *PlayerSystem) Shoot(id ecs.EntityID) bool {
	player, pos, ok := s.playerParts(id)
	if !ok || player.Hidden || !player.ShootTimer.IsReady {
		return false
	}
	player.ShootTimer.Reset()

	p := s.config.Player
	if player.Power == 1 {
		top := pos.Y - p.Height/2
		if _, err := entities.NewBullet(s.entityManager, s.config, pos.X, top); err != nil {
			log.Printf("[PlayerSystem] Failed to create bullet: %v", err)
			return false
		}
	} else {
		left := pos.X - p.Width/2
		right := pos.X + p.Width/2
		for _, x := range []float64{left, right} {
			if _, err := entities.NewBullet(s.entityManager, s.config, x, pos.Y); err != nil {
				log.Printf("[PlayerSystem] Failed to create bullet: %v", err)
				return false
			}
		}
	}

	s.sound.PlaySound(game.SoundShoot)
	return true
}

// PowerUp 火力 +1，并重新开始衰减计时
func (s *PlayerSystem) PowerUp(id ecs.EntityID) {
	player, _, ok := s.playerParts(id)
	if !ok {
		return
	}
	player.Power++
	player.PowerTimer.Reset()
	log.Printf("[PlayerSystem] Power up: %d", player.Power)
}

// Hide 隐藏飞船：移到屏幕下方，HideTime 秒后在出生点重新出现
func (s *PlayerSystem) Hide(id ecs.EntityID) {
	player, pos, ok := s.playerParts(id)
	if !ok {
		return
	}
	player.Hidden = true
	player.HideTimer.Reset()
	pos.X, pos.Y = entities.PlayerHiddenPosition(s.config)
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX, vel.VY = 0, 0
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Hidden = true
	}
}

// LoseLife 护盾耗尽：隐藏飞船、扣一条命、护盾回满
func (s *PlayerSystem) LoseLife(id ecs.EntityID) {
	player, _, ok := s.playerParts(id)
	if !ok {
		return
	}
	s.Hide(id)
	player.Lives--
	if shield, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, id); ok {
		shield.Refill()
	}
	log.Printf("[PlayerSystem] Life lost, %d remaining", player.Lives)
}

func (s *PlayerSystem) unhide(id ecs.EntityID, player *components.PlayerComponent, pos *components.PositionComponent) {
	player.Hidden = false
	pos.X, pos.Y = entities.PlayerSpawnPosition(s.config)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Hidden = false
	}
}
