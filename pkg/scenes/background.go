package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// drawScrollingBackground draws two stacked copies of the background so the
// seam is never visible while offsetY wraps from the screen height back to 0.
func drawScrollingBackground(screen, background *ebiten.Image, offsetY float64) {
	if background == nil {
		return
	}
	for _, y := range []float64{offsetY, offsetY - float64(screen.Bounds().Dy())} {
		screen.DrawImage(background, backgroundOptions(background, screen, y))
	}
}

// drawStaticBackground draws the background once, stretched to the screen.
func drawStaticBackground(screen, background *ebiten.Image) {
	if background == nil {
		return
	}
	screen.DrawImage(background, backgroundOptions(background, screen, 0))
}

func backgroundOptions(background, screen *ebiten.Image, y float64) *ebiten.DrawImageOptions {
	bw, bh := background.Bounds().Dx(), background.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	if bw > 0 && bh > 0 {
		op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	}
	op.GeoM.Translate(0, y)
	return op
}
