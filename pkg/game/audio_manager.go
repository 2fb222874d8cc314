package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 从 SettingsManager 读取音量和开关
//   - 实现 SoundPlayer，供游戏系统通过资源 ID 播放音效
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil，此时使用默认设置
	currentMusic    *audio.Player
	currentMusicID  string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（音频需已通过 LoadAll 加载）
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

// PlaySound 播放音效
// 每次播放创建独立的播放器，同一音效可以叠加（连发、连环爆炸）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	settings := am.settings()
	if !settings.SoundEnabled {
		return false
	}

	player := am.resourceManager.NewSoundPlayer(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player.SetVolume(settings.SoundVolume)
	player.Play()
	return true
}

// PlayMusic 播放循环背景音乐
// 同一时间只播放一首，重复请求同一首时不重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	settings := am.settings()
	if !settings.MusicEnabled {
		// 记住曲目，重新开启音乐时恢复
		am.currentMusicID = musicID
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.resourceManager.GetMusicPlayer(musicID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return false
	}

	player.SetVolume(settings.MusicVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, settings.MusicVolume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
	}
}

// IsMusicPlaying 当前是否有背景音乐在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// ToggleMusic 切换音乐开关并持久化，返回切换后的状态
func (am *AudioManager) ToggleMusic() bool {
	enabled := !am.settings().MusicEnabled
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
		am.save()
	}

	if enabled {
		if am.currentMusicID != "" {
			am.PlayMusic(am.currentMusicID)
		}
	} else {
		am.StopMusic()
	}
	log.Printf("[AudioManager] Music enabled: %v", enabled)
	return enabled
}

// ToggleSound 切换音效开关并持久化，返回切换后的状态
func (am *AudioManager) ToggleSound() bool {
	enabled := !am.settings().SoundEnabled
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
		am.save()
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// save 持久化失败只记录日志
func (am *AudioManager) save() {
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
}
