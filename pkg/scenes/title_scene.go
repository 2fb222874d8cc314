package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/utils"
)

const (
	titleText        = "Shoot 'Em Up!"
	instructionsText = "Arrow keys move, Space to fire"
	promptText       = "Press a key to begin"
)

// TitleScene shows the title and instructions and waits for any key release.
type TitleScene struct {
	deps *Deps

	background *ebiten.Image
	titleFace  *text.GoTextFace
	bodyFace   *text.GoTextFace
	promptFace *text.GoTextFace

	keys []ebiten.Key // reused buffer for released keys
}

// NewTitleScene creates the title scene.
func NewTitleScene(deps *Deps) *TitleScene {
	s := &TitleScene{
		deps:       deps,
		background: deps.Resources.GetImageByID(game.ImageBackground),
	}

	var err error
	if s.titleFace, err = deps.Resources.Font(65); err != nil {
		log.Printf("[TitleScene] Warning: failed to load title font: %v", err)
	}
	if s.bodyFace, err = deps.Resources.Font(22); err != nil {
		log.Printf("[TitleScene] Warning: failed to load body font: %v", err)
	}
	if s.promptFace, err = deps.Resources.Font(18); err != nil {
		log.Printf("[TitleScene] Warning: failed to load prompt font: %v", err)
	}
	return s
}

// Update starts a new game once a key has been released.
func (s *TitleScene) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	if len(s.keys) == 0 {
		return
	}
	log.Printf("[TitleScene] Key %s released, starting game", s.keys[0])
	s.deps.Scenes.Load(game.SceneGame)
}

// Draw renders the title screen.
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	drawStaticBackground(screen, s.background)

	w := float64(s.deps.Config.Screen.Width)
	h := float64(s.deps.Config.Screen.Height)
	if s.titleFace != nil {
		utils.DrawTextMidTop(screen, titleText, s.titleFace, w/2, h/4, colornames.White)
	}
	if s.bodyFace != nil {
		utils.DrawTextMidTop(screen, instructionsText, s.bodyFace, w/2, h/2, colornames.White)
	}
	if s.promptFace != nil {
		utils.DrawTextMidTop(screen, promptText, s.promptFace, w/2, h*3/4, colornames.White)
	}
}
