package entities

import (
	"math/rand"

	"github.com/decker502/shmup/pkg/config"
)

// RandIntRange 返回 [lo, hi) 内的随机整数
// hi <= lo 时返回 lo
func RandIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// RandRange 按整数步长在配置区间 [Min, Max) 内取值
// 区间端点先截断为整数
func RandRange(rng *rand.Rand, r config.Range) float64 {
	return float64(RandIntRange(rng, int(r.Min), int(r.Max)))
}

// Chance 以概率 p 返回 true
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
