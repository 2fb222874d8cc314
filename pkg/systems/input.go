package systems

import "github.com/hajimehoshi/ebiten/v2"

// InputState 当前帧的操作意图
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}

// InputProvider 提供每帧输入
// 游戏逻辑不直接读取键盘，测试中可用脚本输入替换
type InputProvider interface {
	Poll() InputState
}

// KeyboardInput 方向键移动，空格开火
type KeyboardInput struct{}

// Poll 读取当前按键状态
func (KeyboardInput) Poll() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
