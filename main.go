package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/shmup/pkg/app"
	"github.com/decker502/shmup/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	configPath = flag.String("config", app.DefaultConfigPath, "Game config file (data/ paths are embedded)")
	assetRoot  = flag.String("assets", "", "Asset directory, overrides base_path in the resource manifest")
	seed       = flag.Int64("seed", 0, "Random seed, 0 uses the current time")
)

func main() {
	flag.Parse()

	// 初始化嵌入配置（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		AssetRoot:  *assetRoot,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	screen := gameApp.GameConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)
	ebiten.SetTPS(screen.TPS)

	// 关闭窗口时 RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
