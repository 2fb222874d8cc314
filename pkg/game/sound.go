package game

// 音频资源 ID（见 data/resources.yaml）
const (
	SoundShoot    = "SOUND_SHOOT"
	SoundShieldUp = "SOUND_SHIELD_UP"
	SoundPowerUp  = "SOUND_POWER_UP"
	MusicMain     = "MUSIC_MAIN"
)

// SoundPlayer 播放一次性音效
// 游戏逻辑只依赖这个接口，测试中可以替换为记录器
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// NopSoundPlayer 不发声的 SoundPlayer
type NopSoundPlayer struct{}

// PlaySound 总是返回 false
func (NopSoundPlayer) PlaySound(string) bool { return false }
