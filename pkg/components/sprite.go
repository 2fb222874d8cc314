package components

// SpriteComponent 存储实体的视觉表现
// 只记录资源 ID 和目标尺寸，图像由渲染系统通过 ResourceManager 解析，
// 因此模拟部分可以在没有图形上下文的测试中运行
type SpriteComponent struct {
	ImageID string  // 资源清单中的图片 ID
	Width   float64 // 绘制宽度（像素），0 表示使用原图尺寸
	Height  float64 // 绘制高度（像素）
	Angle   float64 // 逆时针旋转角度（度）
	Hidden  bool    // 为 true 时不绘制
}
