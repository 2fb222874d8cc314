package components

// MobComponent 陨石状态
type MobComponent struct {
	Radius        int     // 碰撞半径 int(width * 0.85 / 2)，同时决定得分
	Variant       int     // 陨石图片变体索引
	RotationSpeed float64 // 每个旋转节拍转过的角度（度）
	Rotation      float64 // 当前角度 [0, 360)

	RotationTimer TimerComponent // 旋转节拍计时器
}
