package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/ecs"
)

// ImageSource 按资源 ID 提供已加载的图片
// game.ResourceManager 实现了该接口
type ImageSource interface {
	GetImageByID(resourceID string) *ebiten.Image
}

// RenderSystem 绘制所有拥有位置和精灵组件的实体
// 按实体 ID 升序绘制，后创建的实体位于上层
type RenderSystem struct {
	entityManager *ecs.EntityManager
	images        ImageSource
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, images ImageSource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		images:        images,
	}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Hidden {
			continue
		}

		img := s.images.GetImageByID(sprite.ImageID)
		if img == nil {
			continue
		}

		screen.DrawImage(img, SpriteDrawOptions(img.Bounds().Dx(), img.Bounds().Dy(), sprite, pos))
	}
}

// SpriteDrawOptions 计算精灵的绘制变换
// 先缩放到目标尺寸，再绕中心旋转，最后平移到实体中心
// SpriteComponent.Angle 为逆时针角度，屏幕坐标 Y 轴向下，因此取负值
func SpriteDrawOptions(imgW, imgH int, sprite *components.SpriteComponent, pos *components.PositionComponent) *ebiten.DrawImageOptions {
	w, h := sprite.Width, sprite.Height
	if w <= 0 || h <= 0 {
		w, h = float64(imgW), float64(imgH)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	if imgW > 0 && imgH > 0 {
		op.GeoM.Scale(w/float64(imgW), h/float64(imgH))
	}
	op.GeoM.Translate(-w/2, -h/2)
	if sprite.Angle != 0 {
		op.GeoM.Rotate(-sprite.Angle * math.Pi / 180)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	return op
}
