package scenes

import (
	"fmt"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/systems"
	"github.com/decker502/shmup/pkg/utils"
)

// HUD layout
const (
	scoreFontSize = 18
	scoreY        = 10

	shieldBarX = 5
	shieldBarY = 5

	livesOffsetX = 100 // lives row starts this far from the right edge
	livesSpacing = 30
	livesY       = 5
)

var shieldBarStyle = utils.BarStyle{
	Width:        100,
	Height:       10,
	Fill:         colornames.Lime,
	Outline:      colornames.White,
	OutlineWidth: 2,
}

// GameScene runs one playthrough: it drives the headless World each tick and
// draws the background, the sprites and the HUD on top.
type GameScene struct {
	deps    *Deps
	session *game.Session
	world   *systems.World
	render  *systems.RenderSystem

	background *ebiten.Image
	miniShip   *ebiten.Image
	scoreFace  *text.GoTextFace
}

// NewGameScene creates a game scene with a fresh session, the player and the
// initial wave of mobs.
func NewGameScene(deps *Deps) (*GameScene, error) {
	cfg := deps.Config
	session := game.NewSession(cfg.Difficulty)

	world, err := systems.NewWorld(cfg, session, systems.KeyboardInput{}, deps.soundPlayer(), deps.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	if err := world.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	s := &GameScene{
		deps:       deps,
		session:    session,
		world:      world,
		render:     systems.NewRenderSystem(world.EntityManager, deps.Resources),
		background: deps.Resources.GetImageByID(game.ImageBackground),
		miniShip:   deps.Resources.GetImageByID(cfg.Player.MiniSprite),
	}

	if s.scoreFace, err = deps.Resources.Font(scoreFontSize); err != nil {
		log.Printf("[GameScene] Warning: failed to load score font: %v", err)
	}
	return s, nil
}

// Session returns the session driven by this scene.
func (s *GameScene) Session() *game.Session {
	return s.session
}

// Update advances the simulation by one tick and returns to the title once
// the game is over.
func (s *GameScene) Update(deltaTime float64) {
	s.world.Step(deltaTime)

	if s.session.GameOver {
		log.Printf("[GameScene] Game over with score %d", s.session.Score)
		s.deps.Scenes.Load(game.SceneTitle)
	}
}

// Draw renders the playfield and the HUD.
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	drawScrollingBackground(screen, s.background, s.session.BackgroundY)
	s.render.Draw(screen)
	s.drawHUD(screen)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	w := float64(s.deps.Config.Screen.Width)

	if s.scoreFace != nil {
		utils.DrawTextMidTop(screen, strconv.Itoa(s.session.Score), s.scoreFace, w/2, scoreY, colornames.White)
	}

	player, shield, ok := s.world.PlayerState()
	if !ok {
		return
	}
	utils.DrawBar(screen, shieldBarX, shieldBarY, float64(shield.Current), shieldBarStyle)
	s.drawLives(screen, w-livesOffsetX, player.Lives)
}

func (s *GameScene) drawLives(screen *ebiten.Image, startX float64, lives int) {
	if s.miniShip == nil {
		return
	}
	p := s.deps.Config.Player
	bw, bh := s.miniShip.Bounds().Dx(), s.miniShip.Bounds().Dy()
	for i := 0; i < lives; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.MiniWidth/float64(bw), p.MiniHeight/float64(bh))
		op.GeoM.Translate(utils.IconRowX(startX, livesSpacing, i), livesY)
		screen.DrawImage(s.miniShip, op)
	}
}
