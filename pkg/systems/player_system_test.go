package systems

import (
	"testing"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/game"
)

func TestPlayerShootCooldown(t *testing.T) {
	env := newTestEnv(t)
	id := env.spawnPlayer(t)
	env.input.state = InputState{Fire: true}

	// 0.1s 一帧：第 3 帧累计 0.3s 才超过 0.25s 的冷却
	wantBullets := []int{0, 0, 1, 1, 1, 2}
	for i, want := range wantBullets {
		env.player.Update(0.1)
		if got := countWith[*components.BulletComponent](env.em); got != want {
			t.Fatalf("tick %d: bullets = %d, want %d", i+1, got, want)
		}
	}

	if got := env.sound.count(game.SoundShoot); got != 2 {
		t.Errorf("shoot sounds = %d, want 2", got)
	}

	_, pos, _ := env.playerParts(t, id)
	first := ecs.GetEntitiesWith1[*components.BulletComponent](env.em)[0]
	bpos, _ := ecs.GetComponent[*components.PositionComponent](env.em, first)
	bcoll, _ := ecs.GetComponent[*components.CollisionComponent](env.em, first)
	if bpos.X != pos.X {
		t.Errorf("bullet x = %v, want ship center %v", bpos.X, pos.X)
	}
	shipTop := pos.Y - env.cfg.Player.Height/2
	if got := bcoll.Bottom(bpos.Y); got != shipTop {
		t.Errorf("bullet bottom = %v, want ship top %v", got, shipTop)
	}
}

func TestPlayerShootDoubleAtPower2(t *testing.T) {
	env := newTestEnv(t)
	id := env.spawnPlayer(t)
	player, pos, _ := env.playerParts(t, id)
	player.Power = 2
	env.input.state = InputState{Fire: true}

	for i := 0; i < 3; i++ {
		env.player.Update(0.1)
	}

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](env.em)
	if len(bullets) != 2 {
		t.Fatalf("bullets = %d, want 2", len(bullets))
	}

	halfW := env.cfg.Player.Width / 2
	wantX := []float64{pos.X - halfW, pos.X + halfW}
	for i, bid := range bullets {
		bpos, _ := ecs.GetComponent[*components.PositionComponent](env.em, bid)
		bcoll, _ := ecs.GetComponent[*components.CollisionComponent](env.em, bid)
		if bpos.X != wantX[i] {
			t.Errorf("bullet %d x = %v, want %v", i, bpos.X, wantX[i])
		}
		if got := bcoll.Bottom(bpos.Y); got != pos.Y {
			t.Errorf("bullet %d bottom = %v, want ship center %v", i, got, pos.Y)
		}
	}
	if got := env.sound.count(game.SoundShoot); got != 1 {
		t.Errorf("shoot sounds = %d, want 1 per volley", got)
	}
}

func TestPlayerPowerDecay(t *testing.T) {
	tests := []struct {
		name      string
		powerUps  int
		ticks     int
		wantPower int
	}{
		{"no powerup stays at 1", 0, 20, 1},
		{"holds for exactly powerTime", 1, 5, 2},
		{"drops after powerTime", 1, 6, 1},
		{"never below 1", 1, 30, 1},
		{"one level per period", 2, 6, 2},
		{"two periods", 2, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			id := env.spawnPlayer(t)
			for i := 0; i < tt.powerUps; i++ {
				env.player.PowerUp(id)
			}

			// 1s 一帧，累计值为精确整数
			for i := 0; i < tt.ticks; i++ {
				env.player.Update(1.0)
			}

			player, _, _ := env.playerParts(t, id)
			if player.Power != tt.wantPower {
				t.Errorf("power = %d, want %d", player.Power, tt.wantPower)
			}
		})
	}
}

func TestPlayerMovementClamp(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		wantX float64
	}{
		{"right edge", InputState{Right: true}, 480 - 25},
		{"left edge", InputState{Left: true}, 25},
		{"both cancel", InputState{Left: true, Right: true}, 240},
		{"idle", InputState{}, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			id := env.spawnPlayer(t)
			env.input.state = tt.input

			for i := 0; i < 100; i++ {
				env.player.Update(1.0 / 60)
			}

			_, pos, _ := env.playerParts(t, id)
			if pos.X != tt.wantX {
				t.Errorf("x = %v, want %v", pos.X, tt.wantX)
			}
		})
	}
}

func TestPlayerLoseLifeAndRecover(t *testing.T) {
	env := newTestEnv(t)
	id := env.spawnPlayer(t)
	player, pos, shield := env.playerParts(t, id)
	shield.Current = 0

	env.player.LoseLife(id)

	if player.Lives != 2 {
		t.Errorf("lives = %d, want 2", player.Lives)
	}
	if shield.Current != 100 {
		t.Errorf("shield = %d, want 100", shield.Current)
	}
	if !player.Hidden {
		t.Fatal("player should be hidden")
	}
	if pos.X != 240 || pos.Y != 600+200 {
		t.Errorf("hidden position = (%v, %v), want (240, 800)", pos.X, pos.Y)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, id)
	if !sprite.Hidden {
		t.Error("sprite should be hidden")
	}

	// 隐身期间忽略输入
	env.input.state = InputState{Fire: true, Left: true}
	env.player.Update(0.5)
	env.player.Update(0.5)
	if !player.Hidden {
		t.Fatal("player reappeared before hideTime elapsed")
	}
	if got := countWith[*components.BulletComponent](env.em); got != 0 {
		t.Errorf("hidden player fired %d bullets", got)
	}
	if pos.X != 240 {
		t.Errorf("hidden player moved to x = %v", pos.X)
	}

	env.input.state = InputState{}
	env.player.Update(0.5)
	if player.Hidden {
		t.Fatal("player should reappear after hideTime")
	}
	if pos.X != 240 || pos.Y != 600-10-19 {
		t.Errorf("spawn position = (%v, %v), want (240, 571)", pos.X, pos.Y)
	}
	if sprite.Hidden {
		t.Error("sprite should be visible again")
	}
}

func TestPlayerWithoutLivesStaysHidden(t *testing.T) {
	env := newTestEnv(t)
	id := env.spawnPlayer(t)
	player, _, _ := env.playerParts(t, id)
	player.Lives = 1

	env.player.LoseLife(id)
	for i := 0; i < 10; i++ {
		env.player.Update(1.0)
	}

	if player.Lives != 0 {
		t.Errorf("lives = %d, want 0", player.Lives)
	}
	if !player.Hidden {
		t.Error("player with no lives should stay hidden")
	}
}

func TestShootWhileHiddenFails(t *testing.T) {
	env := newTestEnv(t)
	id := env.spawnPlayer(t)
	player, _, _ := env.playerParts(t, id)
	player.ShootTimer.Tick(1.0)

	env.player.Hide(id)
	if env.player.Shoot(id) {
		t.Error("Shoot should fail while hidden")
	}
	if env.player.Shoot(ecs.EntityID(999)) {
		t.Error("Shoot should fail for unknown entity")
	}
}
