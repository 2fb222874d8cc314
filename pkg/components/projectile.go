package components

import "github.com/decker502/shmup/pkg/types"

// BulletComponent 标记玩家子弹
type BulletComponent struct{}

// PowerupComponent 掉落的道具
type PowerupComponent struct {
	Type types.PowerupType
}

// ExplosionComponent 逐帧播放的爆炸动画
// 播放完最后一帧后实体被删除
type ExplosionComponent struct {
	Size       types.ExplosionSize
	Frame      int
	FrameCount int

	FrameTimer TimerComponent
}
