package components

// PositionComponent 实体中心点的屏幕坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每个逻辑帧的位移（像素/帧）
// 游戏以固定 TPS 运行，移动按帧推进，计时按秒累加
type VelocityComponent struct {
	VX float64
	VY float64
}
