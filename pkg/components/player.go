package components

// PlayerComponent 飞船状态
type PlayerComponent struct {
	Lives  int     // 剩余生命
	Power  int     // 火力等级，始终 >= 1
	Speed  float64 // 水平移动速度（像素/帧）
	Hidden bool    // 被击毁后的隐身状态，期间不响应输入、不受陨石伤害

	ShootTimer TimerComponent // 自上次射击以来的时间
	PowerTimer TimerComponent // 自上次火力提升以来的时间
	HideTimer  TimerComponent // 自隐身开始以来的时间
}
