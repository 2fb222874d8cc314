package config

import (
	"fmt"

	"github.com/decker502/shmup/pkg/embedded"
	"github.com/decker502/shmup/pkg/types"
	"gopkg.in/yaml.v3"
)

// 道具效果名称（powerup.effects.*.effect）
const (
	EffectHeal = "heal" // 恢复护盾
	EffectGun  = "gun"  // 提升火力
	EffectNone = "none" // 无效果，仅记录日志
)

// GameConfig 游戏参数配置
//
// 配置文件位置: data/shmup.yaml
// 时间单位为秒，速度单位为像素/帧
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Mob        MobConfig        `yaml:"mob"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Powerup    PowerupConfig    `yaml:"powerup"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// ScreenConfig 窗口与帧率
type ScreenConfig struct {
	Width                 int     `yaml:"width"`
	Height                int     `yaml:"height"`
	TPS                   int     `yaml:"tps"`
	Title                 string  `yaml:"title"`
	BackgroundScrollSpeed float64 `yaml:"backgroundScrollSpeed"`
}

// PlayerConfig 飞船参数
type PlayerConfig struct {
	Sprite       string  `yaml:"sprite"`
	MiniSprite   string  `yaml:"miniSprite"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MiniWidth    float64 `yaml:"miniWidth"`
	MiniHeight   float64 `yaml:"miniHeight"`
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottomMargin"` // 出生点底边距屏幕底部的距离
	HideOffset   float64 `yaml:"hideOffset"`   // 隐身时移到屏幕下方的距离
	ShootDelay   float64 `yaml:"shootDelay"`
	PowerTime    float64 `yaml:"powerTime"`
	HideTime     float64 `yaml:"hideTime"`
	Lives        int     `yaml:"lives"`
	Shield       int     `yaml:"shield"`
}

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// MobVariant 陨石外观变体
type MobVariant struct {
	Sprite string  `yaml:"sprite"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WrapMargin 陨石离开屏幕的判定余量
type WrapMargin struct {
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// MobConfig 陨石参数
type MobConfig struct {
	RadiusFactor     float64      `yaml:"radiusFactor"`
	SpawnY           Range        `yaml:"spawnY"`
	SpeedX           Range        `yaml:"speedX"`
	SpeedY           Range        `yaml:"speedY"`
	RotationSpeed    Range        `yaml:"rotationSpeed"`
	RotationInterval float64      `yaml:"rotationInterval"`
	WrapMargin       WrapMargin   `yaml:"wrapMargin"`
	Variants         []MobVariant `yaml:"variants"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Sprite string  `yaml:"sprite"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PowerupEffect 道具效果表中的一项
type PowerupEffect struct {
	Effect string `yaml:"effect"`
	Sound  string `yaml:"sound"`
	Min    int    `yaml:"min"` // heal 恢复量下限（含）
	Max    int    `yaml:"max"` // heal 恢复量上限（不含）
}

// PowerupConfig 道具参数
type PowerupConfig struct {
	Width      float64                  `yaml:"width"`
	Height     float64                  `yaml:"height"`
	Speed      float64                  `yaml:"speed"`
	DropChance float64                  `yaml:"dropChance"`
	Sprites    map[string]string        `yaml:"sprites"`
	Effects    map[string]PowerupEffect `yaml:"effects"`
}

// ExplosionSizes 各档位爆炸的绘制边长
type ExplosionSizes struct {
	Large  float64 `yaml:"large"`
	Small  float64 `yaml:"small"`
	Player float64 `yaml:"player"`
}

// ExplosionConfig 爆炸动画参数
type ExplosionConfig struct {
	FrameTime float64        `yaml:"frameTime"`
	Frames    []string       `yaml:"frames"`
	Sizes     ExplosionSizes `yaml:"sizes"`
	Sounds    []string       `yaml:"sounds"`
}

// DifficultyConfig 难度曲线
type DifficultyConfig struct {
	ScoreStep               int     `yaml:"scoreStep"`
	SpeedBonus              float64 `yaml:"speedBonus"`
	InitialSpawnProbability float64 `yaml:"initialSpawnProbability"`
	SpawnGrowth             float64 `yaml:"spawnGrowth"`
	MaxSpawnProbability     float64 `yaml:"maxSpawnProbability"`
	ExtraMobsPerLevel       int     `yaml:"extraMobsPerLevel"` // 0 时陨石数量保持恒定
	MaxMobs                 int     `yaml:"maxMobs"`
}

// SessionConfig 每局开始时的状态
type SessionConfig struct {
	InitialMobs int `yaml:"initialMobs"`
}

// DefaultGameConfig 返回与 data/shmup.yaml 一致的默认配置
func DefaultGameConfig() *GameConfig {
	frames := make([]string, 9)
	for i := range frames {
		frames[i] = fmt.Sprintf("IMAGE_EXPLOSION_%02d", i)
	}

	return &GameConfig{
		Screen: ScreenConfig{
			Width:                 480,
			Height:                600,
			TPS:                   60,
			Title:                 "Shoot 'Em Up!",
			BackgroundScrollSpeed: 1,
		},
		Player: PlayerConfig{
			Sprite:       "IMAGE_PLAYER",
			MiniSprite:   "IMAGE_PLAYER",
			Width:        50,
			Height:       38,
			MiniWidth:    25,
			MiniHeight:   19,
			Radius:       20,
			Speed:        8,
			BottomMargin: 10,
			HideOffset:   200,
			ShootDelay:   0.25,
			PowerTime:    5.0,
			HideTime:     1.0,
			Lives:        3,
			Shield:       100,
		},
		Mob: MobConfig{
			RadiusFactor:     0.85,
			SpawnY:           Range{Min: -150, Max: -100},
			SpeedX:           Range{Min: -3, Max: 3},
			SpeedY:           Range{Min: 1, Max: 8},
			RotationSpeed:    Range{Min: -8, Max: 8},
			RotationInterval: 0.05,
			WrapMargin:       WrapMargin{Bottom: 10, Left: 25, Right: 20},
			Variants: []MobVariant{
				{Sprite: "IMAGE_METEOR_BIG_1", Width: 101, Height: 84},
				{Sprite: "IMAGE_METEOR_MED_1", Width: 43, Height: 43},
				{Sprite: "IMAGE_METEOR_MED_1", Width: 43, Height: 43},
				{Sprite: "IMAGE_METEOR_MED_3", Width: 28, Height: 28},
				{Sprite: "IMAGE_METEOR_SMALL_1", Width: 28, Height: 28},
				{Sprite: "IMAGE_METEOR_SMALL_2", Width: 29, Height: 26},
				{Sprite: "IMAGE_METEOR_TINY_1", Width: 18, Height: 18},
			},
		},
		Bullet: BulletConfig{
			Sprite: "IMAGE_BULLET",
			Width:  13,
			Height: 37,
			Speed:  -10,
		},
		Powerup: PowerupConfig{
			Width:      30,
			Height:     30,
			Speed:      2,
			DropChance: 0.1,
			Sprites: map[string]string{
				"shield": "IMAGE_POWERUP_SHIELD",
				"gun":    "IMAGE_POWERUP_GUN",
				"speed":  "IMAGE_POWERUP_SPEED",
				"health": "IMAGE_POWERUP_HEALTH",
			},
			Effects: map[string]PowerupEffect{
				"shield": {Effect: EffectHeal, Sound: "SOUND_SHIELD_UP", Min: 10, Max: 30},
				"gun":    {Effect: EffectGun, Sound: "SOUND_POWER_UP"},
				"speed":  {Effect: EffectNone},
				"health": {Effect: EffectNone},
			},
		},
		Explosion: ExplosionConfig{
			FrameTime: 0.05,
			Frames:    frames,
			Sizes:     ExplosionSizes{Large: 75, Small: 32, Player: 100},
			Sounds:    []string{"SOUND_EXPLOSION_1", "SOUND_EXPLOSION_2"},
		},
		Difficulty: DifficultyConfig{
			ScoreStep:               1000,
			SpeedBonus:              0.5,
			InitialSpawnProbability: 0.1,
			SpawnGrowth:             0.001,
			MaxSpawnProbability:     0.5,
			ExtraMobsPerLevel:       0,
			MaxMobs:                 16,
		},
		Session: SessionConfig{
			InitialMobs: 8,
		},
	}
}

// LoadGameConfig 加载游戏参数配置
//
// 参数:
//   - path: 配置文件路径（如 "data/shmup.yaml"）
//
// 返回:
//   - *GameConfig: 通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	// 以默认值为底，文件中缺省的字段保持默认
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查尺寸为正、区间 min < max、概率在 [0,1]、
// 以及每种道具都有合法的效果定义。
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TPS <= 0 {
		return fmt.Errorf("screen tps must be positive, got %d", c.Screen.TPS)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.Radius <= 0 {
		return fmt.Errorf("player size and radius must be positive")
	}
	if p.ShootDelay < 0 || p.PowerTime <= 0 || p.HideTime < 0 {
		return fmt.Errorf("player timers invalid: shootDelay=%.2f powerTime=%.2f hideTime=%.2f",
			p.ShootDelay, p.PowerTime, p.HideTime)
	}
	if p.Lives <= 0 || p.Shield <= 0 {
		return fmt.Errorf("player lives and shield must be positive, got lives=%d shield=%d", p.Lives, p.Shield)
	}

	m := c.Mob
	for name, r := range map[string]Range{
		"spawnY":        m.SpawnY,
		"speedX":        m.SpeedX,
		"speedY":        m.SpeedY,
		"rotationSpeed": m.RotationSpeed,
	} {
		if r.Min >= r.Max {
			return fmt.Errorf("mob %s range invalid: min(%.1f) >= max(%.1f)", name, r.Min, r.Max)
		}
	}
	if m.RadiusFactor <= 0 || m.RotationInterval <= 0 {
		return fmt.Errorf("mob radiusFactor and rotationInterval must be positive")
	}
	if len(m.Variants) == 0 {
		return fmt.Errorf("mob variants must not be empty")
	}
	for i, v := range m.Variants {
		if v.Sprite == "" || v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("mob variant %d invalid: sprite=%q size=%.0fx%.0f", i, v.Sprite, v.Width, v.Height)
		}
		if v.Width >= float64(c.Screen.Width) {
			return fmt.Errorf("mob variant %d wider than screen", i)
		}
	}

	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		return fmt.Errorf("bullet size must be positive")
	}

	pu := c.Powerup
	if pu.Width <= 0 || pu.Height <= 0 {
		return fmt.Errorf("powerup size must be positive")
	}
	if pu.DropChance < 0 || pu.DropChance > 1 {
		return fmt.Errorf("powerup dropChance must be in [0,1], got %.2f", pu.DropChance)
	}
	for _, t := range types.AllPowerupTypes {
		effect, ok := pu.Effects[t.String()]
		if !ok {
			return fmt.Errorf("powerup effect missing for %q", t)
		}
		switch effect.Effect {
		case EffectHeal:
			if effect.Min < 0 || effect.Min >= effect.Max {
				return fmt.Errorf("powerup %q heal range invalid: min(%d) >= max(%d)", t, effect.Min, effect.Max)
			}
		case EffectGun, EffectNone:
		default:
			return fmt.Errorf("powerup %q has unknown effect %q", t, effect.Effect)
		}
		if pu.Sprites[t.String()] == "" {
			return fmt.Errorf("powerup sprite missing for %q", t)
		}
	}

	e := c.Explosion
	if e.FrameTime <= 0 || len(e.Frames) == 0 {
		return fmt.Errorf("explosion needs a positive frameTime and at least one frame")
	}
	if e.Sizes.Large <= 0 || e.Sizes.Small <= 0 || e.Sizes.Player <= 0 {
		return fmt.Errorf("explosion sizes must be positive")
	}
	if len(e.Sounds) == 0 {
		return fmt.Errorf("explosion sounds must not be empty")
	}

	d := c.Difficulty
	if d.ScoreStep <= 0 {
		return fmt.Errorf("difficulty scoreStep must be positive, got %d", d.ScoreStep)
	}
	if d.InitialSpawnProbability < 0 || d.MaxSpawnProbability > 1 ||
		d.InitialSpawnProbability > d.MaxSpawnProbability {
		return fmt.Errorf("difficulty spawn probability invalid: initial=%.3f max=%.3f",
			d.InitialSpawnProbability, d.MaxSpawnProbability)
	}
	if d.MaxMobs < c.Session.InitialMobs {
		return fmt.Errorf("difficulty maxMobs(%d) < session initialMobs(%d)", d.MaxMobs, c.Session.InitialMobs)
	}
	if c.Session.InitialMobs < 0 || d.ExtraMobsPerLevel < 0 {
		return fmt.Errorf("mob counts must not be negative")
	}

	return nil
}

// PowerupEffectFor 返回道具类型对应的效果
// 未配置的类型视为 none
func (c *GameConfig) PowerupEffectFor(t types.PowerupType) PowerupEffect {
	if effect, ok := c.Powerup.Effects[t.String()]; ok {
		return effect
	}
	return PowerupEffect{Effect: EffectNone}
}

// ExplosionSize 返回档位对应的边长
func (c *GameConfig) ExplosionSize(size types.ExplosionSize) float64 {
	switch size {
	case types.ExplosionLarge:
		return c.Explosion.Sizes.Large
	case types.ExplosionPlayer:
		return c.Explosion.Sizes.Player
	default:
		return c.Explosion.Sizes.Small
	}
}
