package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/game"
)

// 用法: go run tools/validate_yaml.go [-assets assets]
func main() {
	assetRoot := flag.String("assets", "", "检查资源文件是否存在的目录，为空使用清单中的 base_path")
	flag.Parse()

	failed := false

	cfg, err := config.LoadGameConfig("data/shmup.yaml")
	if err != nil {
		fmt.Printf("❌ 游戏配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 游戏配置正确: %dx%d, %d 种陨石\n", cfg.Screen.Width, cfg.Screen.Height, len(cfg.Mob.Variants))

	data, err := os.ReadFile("data/resources.yaml")
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	var manifest game.ResourceConfig
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	if err := manifest.Validate(); err != nil {
		fmt.Printf("❌ 资源清单无效: %v\n", err)
		os.Exit(1)
	}

	ids := make(map[string]bool)
	for _, group := range manifest.Groups {
		for _, img := range group.Images {
			ids[img.ID] = true
		}
		for _, snd := range group.Sounds {
			ids[snd.ID] = true
		}
		for _, m := range group.Music {
			ids[m.ID] = true
		}
	}
	fmt.Printf("✅ 资源清单正确: %d 个资源\n", len(ids))

	// 配置中引用的每个资源 ID 都必须在清单中
	for _, id := range referencedIDs(cfg) {
		if !ids[id] {
			fmt.Printf("❌ 配置引用了清单中不存在的资源: %s\n", id)
			failed = true
		}
	}

	root := *assetRoot
	if root == "" {
		root = manifest.BasePath
	}
	missing := 0
	for _, group := range manifest.Groups {
		var paths []string
		for _, img := range group.Images {
			paths = append(paths, img.Path)
		}
		for _, snd := range append(group.Sounds, group.Music...) {
			paths = append(paths, snd.Path)
		}
		for _, p := range paths {
			if _, err := os.Stat(filepath.Join(root, p)); err != nil {
				missing++
			}
		}
	}
	if missing > 0 {
		fmt.Printf("⚠️  %s 下缺少 %d 个资源文件（可运行 go run ./cmd/gen_assets 生成占位资源）\n", root, missing)
	} else {
		fmt.Printf("✅ 所有资源文件都存在\n")
	}

	if failed {
		os.Exit(1)
	}
}

func referencedIDs(cfg *config.GameConfig) []string {
	ids := []string{
		game.ImageBackground, game.SoundShoot, game.MusicMain,
		cfg.Player.Sprite, cfg.Player.MiniSprite, cfg.Bullet.Sprite,
	}
	for _, v := range cfg.Mob.Variants {
		ids = append(ids, v.Sprite)
	}
	for _, sprite := range cfg.Powerup.Sprites {
		ids = append(ids, sprite)
	}
	for _, effect := range cfg.Powerup.Effects {
		if effect.Sound != "" {
			ids = append(ids, effect.Sound)
		}
	}
	ids = append(ids, cfg.Explosion.Frames...)
	ids = append(ids, cfg.Explosion.Sounds...)
	return ids
}
