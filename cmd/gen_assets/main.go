// Command gen_assets 为资源清单中的每一项生成占位资源
//
// 图片按游戏配置中的尺寸生成纯色图形，音效和音乐生成合成音调的 WAV 文件，
// 这样在没有原始美术和音频的情况下也能运行游戏。
//
// 用法:
//
//	go run ./cmd/gen_assets -out assets
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/utils"
)

var (
	manifestPath = flag.String("manifest", "data/resources.yaml", "资源清单路径")
	configPath   = flag.String("config", "data/shmup.yaml", "游戏配置路径（用于图片尺寸）")
	outDir       = flag.String("out", "", "输出目录，为空使用清单中的 base_path")
	force        = flag.Bool("force", false, "覆盖已存在的文件")
)

const sampleRate = 44100

// shape 占位图形
type shape int

const (
	shapeRect shape = iota
	shapeCircle
	shapeStars
)

type imageSpec struct {
	w, h  int
	color color.RGBA
	shape shape
}

func main() {
	flag.Parse()

	manifest, err := loadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("加载资源清单失败: %v", err)
	}
	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		log.Fatalf("加载游戏配置失败: %v", err)
	}

	root := *outDir
	if root == "" {
		root = manifest.BasePath
	}

	specs := imageSpecs(cfg)
	written := 0
	for _, group := range manifest.Groups {
		for _, res := range group.Images {
			path := filepath.Join(root, res.Path)
			if filepath.Ext(path) == "" {
				path += ".png"
			}
			spec, ok := specs[res.ID]
			if !ok {
				spec = imageSpec{w: 32, h: 32, color: colornames.Magenta}
			}
			wrote, err := writeIfMissing(path, func(f *os.File) error {
				return png.Encode(f, drawImage(spec))
			})
			if err != nil {
				log.Fatalf("写入 %s 失败: %v", path, err)
			}
			if wrote {
				written++
			}
		}

		sounds := append(append([]game.SoundResource{}, group.Sounds...), group.Music...)
		for _, res := range sounds {
			path := filepath.Join(root, res.Path)
			if ext := strings.ToLower(filepath.Ext(path)); ext != ".wav" {
				log.Printf("[gen_assets] Skipping %s: only .wav placeholders are generated", path)
				continue
			}
			tone := toneFor(res.ID)
			wrote, err := writeIfMissing(path, func(f *os.File) error {
				_, err := f.Write(utils.EncodeWAV(utils.SynthTone(tone, sampleRate), sampleRate, 1))
				return err
			})
			if err != nil {
				log.Fatalf("写入 %s 失败: %v", path, err)
			}
			if wrote {
				written++
			}
		}
	}

	fmt.Printf("generated %d placeholder assets under %s\n", written, root)
}

func loadManifest(path string) (*game.ResourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest game.ResourceConfig
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// writeIfMissing 创建文件并写入内容，已存在且未指定 -force 时跳过
func writeIfMissing(path string, write func(*os.File) error) (bool, error) {
	if _, err := os.Stat(path); err == nil && !*force {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return false, err
	}
	return true, nil
}

// imageSpecs 根据游戏配置决定每张图片的尺寸和外观
func imageSpecs(cfg *config.GameConfig) map[string]imageSpec {
	px := func(v float64) int { return int(math.Round(v)) }

	specs := map[string]imageSpec{
		game.ImageBackground: {w: cfg.Screen.Width, h: cfg.Screen.Height, color: colornames.Midnightblue, shape: shapeStars},
		cfg.Player.Sprite:    {w: px(cfg.Player.Width), h: px(cfg.Player.Height), color: colornames.Orange},
		cfg.Bullet.Sprite:    {w: px(cfg.Bullet.Width), h: px(cfg.Bullet.Height), color: colornames.Red},
	}
	if cfg.Player.MiniSprite != cfg.Player.Sprite {
		specs[cfg.Player.MiniSprite] = imageSpec{w: px(cfg.Player.MiniWidth), h: px(cfg.Player.MiniHeight), color: colornames.Orange}
	}
	for _, v := range cfg.Mob.Variants {
		specs[v.Sprite] = imageSpec{w: px(v.Width), h: px(v.Height), color: colornames.Saddlebrown, shape: shapeCircle}
	}
	edge := px(cfg.Explosion.Sizes.Large)
	for i, frame := range cfg.Explosion.Frames {
		// 越靠后的帧越暗
		fade := uint8(255 - i*20)
		specs[frame] = imageSpec{w: edge, h: edge, color: color.RGBA{R: fade, G: fade / 2, A: 255}, shape: shapeCircle}
	}
	powerupColors := map[string]color.RGBA{
		"shield": colornames.Gold,
		"gun":    colornames.Yellow,
		"speed":  colornames.Deepskyblue,
		"health": colornames.Limegreen,
	}
	for name, sprite := range cfg.Powerup.Sprites {
		c, ok := powerupColors[name]
		if !ok {
			c = colornames.White
		}
		specs[sprite] = imageSpec{w: px(cfg.Powerup.Width), h: px(cfg.Powerup.Height), color: c}
	}
	return specs
}

func drawImage(spec imageSpec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.w, spec.h))
	cx, cy := float64(spec.w)/2, float64(spec.h)/2
	r := math.Min(cx, cy)

	for y := 0; y < spec.h; y++ {
		for x := 0; x < spec.w; x++ {
			switch spec.shape {
			case shapeRect:
				img.SetRGBA(x, y, spec.color)
			case shapeCircle:
				dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
				if dx*dx+dy*dy <= r*r {
					img.SetRGBA(x, y, spec.color)
				}
			case shapeStars:
				img.SetRGBA(x, y, spec.color)
				// 稀疏的固定星点
				if (x*7919+y*104729)%997 == 0 {
					img.SetRGBA(x, y, colornames.White)
				}
			}
		}
	}
	return img
}

// toneFor 为音效 ID 选择合成参数
func toneFor(id string) utils.ToneSpec {
	switch {
	case id == game.SoundShoot:
		return utils.ToneSpec{StartFreq: 1200, EndFreq: 400, Duration: 0.12, Amplitude: 0.4}
	case strings.HasPrefix(id, "SOUND_EXPLOSION"):
		return utils.ToneSpec{StartFreq: 120, EndFreq: 40, Duration: 0.4, Amplitude: 0.5, Noise: true}
	case id == game.SoundShieldUp:
		return utils.ToneSpec{StartFreq: 400, EndFreq: 900, Duration: 0.3, Amplitude: 0.4}
	case id == game.SoundPowerUp:
		return utils.ToneSpec{StartFreq: 600, EndFreq: 1600, Duration: 0.25, Amplitude: 0.4}
	case strings.HasPrefix(id, "MUSIC_"):
		return utils.ToneSpec{StartFreq: 220, EndFreq: 220, Duration: 2.0, Amplitude: 0.15}
	default:
		return utils.ToneSpec{StartFreq: 440, EndFreq: 440, Duration: 0.2, Amplitude: 0.3}
	}
}
