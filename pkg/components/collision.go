package components

// CollisionShape 碰撞形状
type CollisionShape int

const (
	// ShapeBox 轴对齐矩形，以实体位置为中心
	ShapeBox CollisionShape = iota
	// ShapeCircle 圆形，以实体位置为圆心
	ShapeCircle
)

// CollisionComponent 定义实体的碰撞检测边界
// 所有实体都有以位置为中心的矩形，子弹和道具按矩形判定；
// Shape 决定与飞船外壳判定时使用圆形还是矩形
type CollisionComponent struct {
	Shape  CollisionShape
	Width  float64 // 矩形宽度（像素）
	Height float64 // 矩形高度（像素）
	Radius float64 // 圆半径（像素），仅 ShapeCircle 使用

	// HullRadius 非零时额外生成一个圆形外壳
	// 飞船与陨石按圆形判定，与道具按矩形判定
	HullRadius float64
}

// Left 返回矩形左边界
func (c *CollisionComponent) Left(x float64) float64 { return x - c.Width/2 }

// Right 返回矩形右边界
func (c *CollisionComponent) Right(x float64) float64 { return x + c.Width/2 }

// Top 返回矩形上边界
func (c *CollisionComponent) Top(y float64) float64 { return y - c.Height/2 }

// Bottom 返回矩形下边界
func (c *CollisionComponent) Bottom(y float64) float64 { return y + c.Height/2 }
