package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
)

// scriptedInput 每帧返回固定的输入
type scriptedInput struct {
	state InputState
}

func (s *scriptedInput) Poll() InputState { return s.state }

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSound) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// testEnv 一组共享实体管理器和状态的系统
type testEnv struct {
	em      *ecs.EntityManager
	cfg     *config.GameConfig
	session *game.Session
	input   *scriptedInput
	sound   *recordingSound
	rng     *rand.Rand
	player  *PlayerSystem
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.DefaultGameConfig()
	env := &testEnv{
		em:      ecs.NewEntityManager(),
		cfg:     cfg,
		session: game.NewSession(cfg.Difficulty),
		input:   &scriptedInput{},
		sound:   &recordingSound{},
		rng:     rand.New(rand.NewSource(42)),
	}
	env.player = NewPlayerSystem(env.em, env.cfg, env.session, env.input, env.sound)
	return env
}

func (e *testEnv) spawnPlayer(t *testing.T) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(e.em, e.cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	e.session.PlayerID = id
	return id
}

// spawnMobAt 创建一个位于 (x, y) 的陨石，速度抵消难度加成，使其保持静止
func (e *testEnv) spawnMobAt(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewMob(e.em, e.cfg, e.rng)
	if err != nil {
		t.Fatalf("NewMob failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](e.em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](e.em, id)
	pos.X, pos.Y = x, y
	bonus := e.session.MobSpeedBonus()
	vel.VX, vel.VY = -bonus, -bonus
	return id
}

func (e *testEnv) playerParts(t *testing.T, id ecs.EntityID) (*components.PlayerComponent, *components.PositionComponent, *components.ShieldComponent) {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](e.em, id)
	if !ok {
		t.Fatal("player component missing")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](e.em, id)
	shield, _ := ecs.GetComponent[*components.ShieldComponent](e.em, id)
	return player, pos, shield
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
