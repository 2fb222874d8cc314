package components

// ShieldComponent 存储飞船的护盾值
// Current 始终保持在 [0, Max]，归零时由碰撞系统处理损命
type ShieldComponent struct {
	Current int
	Max     int
}

// Damage 扣除护盾，结果不低于 0
// 返回护盾是否已耗尽
func (s *ShieldComponent) Damage(amount int) bool {
	s.Current -= amount
	if s.Current < 0 {
		s.Current = 0
	}
	return s.Current <= 0
}

// Heal 恢复护盾，结果不超过 Max
func (s *ShieldComponent) Heal(amount int) {
	s.Current += amount
	if s.Current > s.Max {
		s.Current = s.Max
	}
}

// Refill 将护盾恢复至满值
func (s *ShieldComponent) Refill() {
	s.Current = s.Max
}
