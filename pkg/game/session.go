package game

import (
	"math"

	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
)

// Session 存储一局游戏的全局状态
// 不是单例：每个 GameScene 持有自己的 Session，并显式传给各个系统
type Session struct {
	Score            int          // 当前分数，始终 >= 0
	Difficulty       int          // 难度等级 = 1 + Score/ScoreStep
	SpawnProbability float64      // 每帧补充陨石的概率
	GameOver         bool         // 本局是否结束
	BackgroundY      float64      // 背景滚动偏移，范围 [0, 屏幕高度)
	PlayerID         ecs.EntityID // 飞船实体
	DeathExplosionID ecs.EntityID // 最近一次飞船爆炸，用于结束判定

	cfg config.DifficultyConfig
}

// NewSession 创建一局新游戏的状态
func NewSession(cfg config.DifficultyConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset 恢复到开局状态
func (s *Session) Reset() {
	s.Score = 0
	s.Difficulty = 1
	s.SpawnProbability = s.cfg.InitialSpawnProbability
	s.GameOver = false
	s.BackgroundY = 0
	s.PlayerID = ecs.InvalidEntityID
	s.DeathExplosionID = ecs.InvalidEntityID
}

// DifficultyForScore 返回分数对应的难度等级
func DifficultyForScore(score, step int) int {
	if step <= 0 || score < 0 {
		return 1
	}
	return 1 + score/step
}

// AddScore 增加分数并重新计算难度
// 返回难度是否发生变化
func (s *Session) AddScore(points int) bool {
	s.Score += points
	if s.Score < 0 {
		s.Score = 0
	}
	previous := s.Difficulty
	s.Difficulty = DifficultyForScore(s.Score, s.cfg.ScoreStep)
	return s.Difficulty != previous
}

// GrowSpawnProbability 每帧调用一次，按难度提高补充概率，不超过上限
func (s *Session) GrowSpawnProbability() {
	s.SpawnProbability += s.cfg.SpawnGrowth * float64(s.Difficulty)
	s.SpawnProbability = math.Min(s.SpawnProbability, s.cfg.MaxSpawnProbability)
}

// MobSpeedBonus 陨石在两个轴上额外增加的速度（像素/帧）
func (s *Session) MobSpeedBonus() float64 {
	return float64(s.Difficulty) * s.cfg.SpeedBonus
}

// TargetMobCount 当前难度下场上应保持的陨石数量
func (s *Session) TargetMobCount(initialMobs int) int {
	target := initialMobs + (s.Difficulty-1)*s.cfg.ExtraMobsPerLevel
	if s.cfg.MaxMobs > 0 && target > s.cfg.MaxMobs {
		target = s.cfg.MaxMobs
	}
	return target
}

// ScrollBackground 推进背景偏移，超过一屏后回绕
func (s *Session) ScrollBackground(speed, height float64) {
	if height <= 0 {
		return
	}
	s.BackgroundY = math.Mod(s.BackgroundY+speed, height)
	if s.BackgroundY < 0 {
		s.BackgroundY += height
	}
}
