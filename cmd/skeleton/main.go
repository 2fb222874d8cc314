// Command skeleton 是一个最小的 Ebitengine 程序骨架
// 打开 360x480 的窗口，以 30 TPS 运行，只填充黑色，关闭窗口即退出
package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 360
	screenHeight = 480
	tps          = 30
)

// Game represents the main game structure.
// It implements the ebiten.Game interface to provide the core game loop.
type Game struct{}

// Update updates the game logic.
// Returns an error if the game should terminate.
func (g *Game) Update() error {
	return nil
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
}

// Layout returns the game's logical screen size.
// This size is independent of the actual window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("My Game")
	ebiten.SetTPS(tps)

	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(&Game{}); err != nil {
		log.Fatal(err)
	}
}
