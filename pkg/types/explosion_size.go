package types

// ExplosionSize 爆炸动画的尺寸档位
type ExplosionSize int

const (
	// ExplosionSmall 小爆炸（陨石撞击飞船）
	ExplosionSmall ExplosionSize = iota
	// ExplosionLarge 大爆炸（子弹击毁陨石）
	ExplosionLarge
	// ExplosionPlayer 飞船被摧毁
	ExplosionPlayer
)

// String 返回爆炸尺寸的字符串表示
func (s ExplosionSize) String() string {
	switch s {
	case ExplosionSmall:
		return "small"
	case ExplosionLarge:
		return "large"
	case ExplosionPlayer:
		return "player"
	default:
		return "unknown"
	}
}
