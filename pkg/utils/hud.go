// Package utils 提供通用工具函数
package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ClampPercent 将百分比限制在 [0, 100]
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BarFillWidth 返回进度条填充部分的宽度
// 参数:
//   - pct: 百分比，超出 [0, 100] 时先被截断
//   - barWidth: 进度条总宽度（像素）
func BarFillWidth(pct, barWidth float64) float64 {
	return ClampPercent(pct) / 100 * barWidth
}

// BarStyle 进度条外观
type BarStyle struct {
	Width, Height float64
	Fill          color.Color
	Outline       color.Color
	OutlineWidth  float32
}

// DrawBar 在 (x, y) 绘制一个按百分比填充、带描边的进度条
func DrawBar(screen *ebiten.Image, x, y, pct float64, style BarStyle) {
	fill := BarFillWidth(pct, style.Width)
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), float32(style.Height), style.Fill, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(style.Width), float32(style.Height),
		style.OutlineWidth, style.Outline, false)
}

// DrawTextMidTop 以 (x, y) 为顶部中点绘制单行文字
func DrawTextMidTop(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignStart
	text.Draw(screen, str, face, op)
}

// IconRowX 返回一排图标中第 i 个的 X 坐标
func IconRowX(startX, spacing float64, i int) float64 {
	return startX + spacing*float64(i)
}
