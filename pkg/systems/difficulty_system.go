package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
)

// DifficultySystem 提高补充概率，并在陨石不足时按概率补充
type DifficultySystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	session       *game.Session
	rng           *rand.Rand
}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem(em *ecs.EntityManager, cfg *config.GameConfig, session *game.Session, rng *rand.Rand) *DifficultySystem {
	return &DifficultySystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		rng:           rng,
	}
}

// Update 每帧最多补充一个陨石
func (s *DifficultySystem) Update(deltaTime float64) {
	s.session.GrowSpawnProbability()

	live := len(ecs.GetEntitiesWith1[*components.MobComponent](s.entityManager))
	if live >= s.session.TargetMobCount(s.config.Session.InitialMobs) {
		return
	}
	if !entities.Chance(s.rng, s.session.SpawnProbability) {
		return
	}
	if _, err := entities.NewMob(s.entityManager, s.config, s.rng); err != nil {
		log.Printf("[DifficultySystem] Failed to create mob: %v", err)
	}
}
