package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 星空背景参数
const (
	starCount    = 80
	starSize     = 2.0
	starStrideX  = 97 // 伪随机散布用的步长（与屏幕尺寸互质）
	starStrideY  = 57
	starDimEvery = 3 // 每隔几颗星用暗色，制造远近层次
)

// RenderSystem 渲染游戏世界实体
//
// 绘制顺序：星空背景 → 子弹 → 敌机 → 玩家 → 粒子。
// 精灵图片缺失时（资源加载失败的降级路径）以 FallbackColor
// 绘制同尺寸实心矩形占位；粒子以加色混合绘制圆形贴图
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	particleTexture *ebiten.Image // 粒子圆形贴图（首次使用时生成）
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Draw 绘制背景与所有世界实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	// 子弹和敌机都带 Sprite+Collision，玩家最后绘制保证在最上层
	s.drawSprites(screen, false)
	s.drawSprites(screen, true)

	s.drawParticles(screen)
}

// drawBackground 绘制滚动星空
// 星星位置由互质步长伪随机散布，随 ScrollOffset 向下滚动循环
func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 24, A: 255})

	bright := color.RGBA{R: 220, G: 220, B: 255, A: 255}
	dim := color.RGBA{R: 110, G: 110, B: 150, A: 255}

	for i := 0; i < starCount; i++ {
		x := float64((i * starStrideX) % config.ScreenWidth)
		baseY := float64((i * starStrideY) % config.ScreenHeight)
		y := math.Mod(baseY+s.gameState.ScrollOffset, config.ScreenHeight)

		clr := bright
		if i%starDimEvery == 0 {
			clr = dim
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), starSize, starSize, clr, false)
	}
}

// drawSprites 绘制带精灵的实体
// playerPass 为 true 时只绘制玩家，false 时绘制其余实体
func (s *RenderSystem) drawSprites(screen *ebiten.Image, playerPass bool) {
	ids := ecs.GetEntitiesWith3[*components.SpriteComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		isPlayer := ecs.HasComponentOf[*components.PlayerComponent](s.entityManager, id)
		if isPlayer != playerPass {
			continue
		}

		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if sprite.Image == nil {
			// 资源缺失降级：占位实心矩形，对模拟逻辑零影响
			vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
				float32(col.Width), float32(col.Height), sprite.FallbackColor, false)
			continue
		}

		bounds := sprite.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(col.Width/float64(bounds.Dx()), col.Height/float64(bounds.Dy()))
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(sprite.Image, op)
	}
}

// drawParticles 以加色混合绘制所有粒子
// 透明度随剩余生命线性衰减
func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.ParticleComponent,
		*components.PositionComponent](s.entityManager)
	if len(ids) == 0 {
		return
	}

	texture := s.getParticleTexture()
	textureSize := float64(texture.Bounds().Dx())

	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		alpha := float32(0)
		if particle.InitialLife > 0 {
			alpha = float32(particle.RemainingLife / particle.InitialLife)
		}
		if alpha <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(particle.Size/textureSize, particle.Size/textureSize)
		op.GeoM.Translate(pos.X-particle.Size/2, pos.Y-particle.Size/2)
		op.ColorScale.ScaleWithColor(particle.Color)
		op.ColorScale.ScaleAlpha(alpha)
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(texture, op)
	}
}

// getParticleTexture 返回粒子圆形贴图，首次调用时生成
func (s *RenderSystem) getParticleTexture() *ebiten.Image {
	if s.particleTexture == nil {
		const size = 16
		s.particleTexture = ebiten.NewImage(size, size)
		vector.DrawFilledCircle(s.particleTexture, size/2, size/2, size/2, color.White, true)
	}
	return s.particleTexture
}
