package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的渲染信息
//
// Image 为 nil 时（资源加载失败的降级路径），渲染系统会以
// FallbackColor 绘制与碰撞盒同尺寸的实心矩形占位，模拟逻辑不受影响
type SpriteComponent struct {
	Image         *ebiten.Image // 精灵图片，可为 nil
	FallbackColor color.RGBA    // 图片缺失时的占位矩形颜色
}
