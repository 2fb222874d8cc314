package components

// TimerComponent 通用计时器
// 用于射击冷却、火力衰减、隐身恢复、旋转节奏、爆炸帧切换
//
// 就绪条件为严格大于：CurrentTime > TargetTime
type TimerComponent struct {
	Name        string  // 计时器名称，如 "shoot"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 自上次重置以来的累计时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// NewTimer 创建一个从零开始计时的计时器
func NewTimer(name string, target float64) TimerComponent {
	return TimerComponent{Name: name, TargetTime: target}
}

// Tick 累加时间并刷新 IsReady
func (t *TimerComponent) Tick(dt float64) bool {
	t.CurrentTime += dt
	t.IsReady = t.CurrentTime > t.TargetTime
	return t.IsReady
}

// Reset 将累计时间清零
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
