package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/types"
)

// PowerupEffects 按配置中的效果表执行道具效果
type PowerupEffects struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	players       *PlayerSystem
	sound         game.SoundPlayer
	rng           *rand.Rand
}

// NewPowerupEffects 创建道具效果执行器
func NewPowerupEffects(em *ecs.EntityManager, cfg *config.GameConfig, players *PlayerSystem, sound game.SoundPlayer, rng *rand.Rand) *PowerupEffects {
	return &PowerupEffects{
		entityManager: em,
		config:        cfg,
		players:       players,
		sound:         sound,
		rng:           rng,
	}
}

// Apply 对飞船执行道具效果
// 返回实际执行的效果名称
func (p *PowerupEffects) Apply(playerID ecs.EntityID, powerupType types.PowerupType) string {
	effect := p.config.PowerupEffectFor(powerupType)

	switch effect.Effect {
	case config.EffectHeal:
		shield, ok := ecs.GetComponent[*components.ShieldComponent](p.entityManager, playerID)
		if !ok {
			return config.EffectNone
		}
		amount := entities.RandIntRange(p.rng, effect.Min, effect.Max)
		shield.Heal(amount)
		log.Printf("[PowerupEffects] Shield +%d -> %d", amount, shield.Current)

	case config.EffectGun:
		p.players.PowerUp(playerID)

	default:
		log.Printf("[PowerupEffects] Powerup %s has no effect", powerupType)
		return config.EffectNone
	}

	if effect.Sound != "" {
		p.sound.PlaySound(effect.Sound)
	}
	return effect.Effect
}
