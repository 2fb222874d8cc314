// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和资源、
// 创建音频与设置管理器、注册场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/scenes"
)

const (
	// DefaultConfigPath 默认游戏配置（嵌入）
	DefaultConfigPath = "data/shmup.yaml"
	// DefaultResourcesPath 默认资源清单（嵌入）
	DefaultResourcesPath = "data/resources.yaml"

	appName    = "shmup"
	sampleRate = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空使用 DefaultConfigPath
	ConfigPath string
	// AssetRoot 覆盖资源清单中的 base_path，为空则使用清单中的值
	AssetRoot string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// withDefaults 填充未设置的字段
func (c Config) withDefaults() Config {
	if c.ConfigPath == "" {
		c.ConfigPath = DefaultConfigPath
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入配置。
// 配置或资源加载失败时返回错误，由调用方决定是否退出。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	cfg = cfg.withDefaults()

	gameConfig, err := config.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded game config from %s", cfg.ConfigPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器并加载全部资源
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(DefaultResourcesPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if cfg.AssetRoot != "" {
		resourceManager.SetAssetRoot(cfg.AssetRoot)
	}
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// 设置持久化失败不影响游戏，降级为内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		Resources: resourceManager,
		Scenes:    sceneManager,
		Audio:     audioManager,
		Config:    gameConfig,
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(deps))
	log.Printf("[App] Random seed: %d", cfg.Seed)

	if !sceneManager.Load(game.SceneTitle) {
		return nil, fmt.Errorf("failed to create title scene")
	}
	audioManager.PlayMusic(game.MusicMain)

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，帧率由 ebiten.SetTPS 固定
func (a *App) Update() error {
	// M 切换音乐，N 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.audioManager.ToggleMusic()
		log.Printf("[App] Music enabled: %v", enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		enabled := a.audioManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	a.sceneManager.Update(a.TickDelta())
	return nil
}

// TickDelta 返回每个 tick 的时长（秒）
func (a *App) TickDelta() float64 {
	return TickDelta(a.gameConfig.Screen.TPS)
}

// TickDelta 返回给定 TPS 下每个 tick 的时长（秒）
func TickDelta(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 窗口尺寸与逻辑尺寸不一致时，用黑色填充边缘并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// GameConfig 返回已加载的游戏配置
// main 用它设置窗口尺寸、标题和 TPS
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
