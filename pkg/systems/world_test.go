package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/game"
)

const tickDelta = 1.0 / 60

func newTestWorld(t *testing.T, cfg *config.GameConfig, input InputProvider) *World {
	t.Helper()
	session := game.NewSession(cfg.Difficulty)
	w, err := NewWorld(cfg, session, input, nil, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return w
}

// freezeMob 将陨石固定在 (x, y)，速度抵消难度加成
func freezeMob(w *World, id ecs.EntityID, x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.EntityManager, id)
	pos.X, pos.Y = x, y
	bonus := w.Session().MobSpeedBonus()
	vel.VX, vel.VY = -bonus, -bonus
}

func TestNewWorldRejectsMissingDeps(t *testing.T) {
	cfg := config.DefaultGameConfig()
	session := game.NewSession(cfg.Difficulty)
	rng := rand.New(rand.NewSource(1))
	input := &scriptedInput{}

	tests := []struct {
		name    string
		cfg     *config.GameConfig
		session *game.Session
		input   InputProvider
		rng     *rand.Rand
	}{
		{"nil config", nil, session, input, rng},
		{"nil session", cfg, nil, input, rng},
		{"nil input", cfg, session, nil, rng},
		{"nil rng", cfg, session, input, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWorld(tt.cfg, tt.session, tt.input, nil, tt.rng); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWorldStart(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{})

	if got := w.MobCount(); got != 8 {
		t.Errorf("mobs = %d, want 8", got)
	}
	player, shield, ok := w.PlayerState()
	if !ok {
		t.Fatal("player not created")
	}
	if player.Lives != 3 || shield.Current != 100 || player.Power != 1 {
		t.Errorf("player = lives %d shield %d power %d, want 3/100/1", player.Lives, shield.Current, player.Power)
	}
	if w.Session().Score != 0 || w.Session().Difficulty != 1 {
		t.Errorf("session not reset: %+v", w.Session())
	}
}

func TestWorldFiringKeepsMobCount(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{state: InputState{Fire: true}})

	// 一颗陨石停在飞船正上方，保证有子弹命中
	target := ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager)[0]
	freezeMob(w, target, 240, 300)

	prevScore := 0
	for i := 0; i < 600; i++ {
		w.Step(tickDelta)

		if got := w.MobCount(); got != 8 {
			t.Fatalf("tick %d: mobs = %d, want 8", i, got)
		}
		if w.Session().Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, w.Session().Score)
		}
		prevScore = w.Session().Score
	}

	if w.EntityManager.Exists(target) {
		t.Error("target mob should have been shot down")
	}
	if prevScore == 0 {
		t.Error("score should have increased")
	}
}

func TestWorldBulletCadence(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{state: InputState{Fire: true}})
	// 清空陨石，只观察子弹
	for _, id := range ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager) {
		freezeMob(w, id, 50, -200)
	}

	for i := 0; i < 60; i++ {
		w.Step(0.1)
	}

	// 0.1s 一帧，每 3 帧开火一次；子弹约 55 帧后飞出屏幕
	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](w.EntityManager)
	if len(bullets) == 0 || len(bullets) > 20 {
		t.Errorf("bullets = %d, want between 1 and 20", len(bullets))
	}
}

func TestWorldShieldDepletionLosesExactlyOneLife(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{})
	player, shield, _ := w.PlayerState()
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.Session().PlayerID)

	mobID := ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager)[0]
	mob, _ := ecs.GetComponent[*components.MobComponent](w.EntityManager, mobID)
	freezeMob(w, mobID, pos.X, pos.Y)
	shield.Current = 2 * mob.Radius

	w.Step(tickDelta)

	if player.Lives != 2 {
		t.Fatalf("lives = %d, want 2", player.Lives)
	}
	if shield.Current != 100 {
		t.Errorf("shield = %d, want 100", shield.Current)
	}
	if !player.Hidden {
		t.Error("player should be hidden")
	}

	// 隐身期间不再损命
	for i := 0; i < 30; i++ {
		w.Step(tickDelta)
	}
	if player.Lives != 2 {
		t.Errorf("lives = %d after hidden period, want 2", player.Lives)
	}
	if w.Session().GameOver {
		t.Error("game should not be over")
	}
}

func TestWorldGameOverAfterDeathExplosion(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{})
	player, shield, _ := w.PlayerState()
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.Session().PlayerID)
	player.Lives = 1

	mobID := ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager)[0]
	freezeMob(w, mobID, pos.X, pos.Y)
	shield.Current = 1

	w.Step(tickDelta)

	if player.Lives != 0 {
		t.Fatalf("lives = %d, want 0", player.Lives)
	}
	if w.Session().GameOver {
		t.Fatal("game over must wait for the death explosion")
	}
	if !w.EntityManager.Exists(w.Session().DeathExplosionID) {
		t.Fatal("death explosion should be alive")
	}

	for i := 0; i < 120 && !w.Session().GameOver; i++ {
		w.Step(tickDelta)
	}
	if !w.Session().GameOver {
		t.Fatal("game should be over once the death explosion finished")
	}

	score := w.Session().Score
	bg := w.Session().BackgroundY
	w.Step(tickDelta)
	if w.Session().Score != score || w.Session().BackgroundY != bg {
		t.Error("Step should be a no-op after game over")
	}
}

func TestWorldBackgroundScroll(t *testing.T) {
	w := newTestWorld(t, config.DefaultGameConfig(), &scriptedInput{})
	for _, id := range ecs.GetEntitiesWith1[*components.MobComponent](w.EntityManager) {
		freezeMob(w, id, 50, -200)
	}
	for i := 0; i < 610; i++ {
		w.Step(tickDelta)
	}
	if got := w.Session().BackgroundY; got != 10 {
		t.Errorf("background y = %v, want 10", got)
	}
}
