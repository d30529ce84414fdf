package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// burstParams 一次爆炸的生成参数
type burstParams struct {
	count    int        // 粒子数量
	maxSpeed float64    // 径向速度上限（像素/秒）
	maxSize  float64    // 粒子尺寸上限（像素）
	color    color.RGBA // 基础颜色
}

// 各类爆炸的参数表
var (
	standardBurst = burstParams{count: config.StandardBurstCount, maxSpeed: 180, maxSize: 5,
		color: color.RGBA{R: 255, G: 180, B: 60, A: 255}}
	smallBurst = burstParams{count: config.SmallBurstCount, maxSpeed: 120, maxSize: 4,
		color: color.RGBA{R: 255, G: 120, B: 80, A: 255}}
	bossBurst = burstParams{count: config.BossBurstCount, maxSpeed: 260, maxSize: 8,
		color: color.RGBA{R: 220, G: 100, B: 255, A: 255}}
	chainBurst = burstParams{count: config.ChainBurstCount, maxSpeed: 200, maxSize: 6,
		color: color.RGBA{R: 255, G: 200, B: 90, A: 255}}
)

// spawnBurst 在 (centerX, centerY) 生成一组向四周飞散的粒子
// 粒子是纯视觉实体：不参与碰撞，生命以2倍现实时间速率衰减
func spawnBurst(em *ecs.EntityManager, centerX, centerY float64, params burstParams, rng *rand.Rand) {
	if em == nil {
		return
	}

	for i := 0; i < params.count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(params.count)
		speed := params.maxSpeed * 0.4
		size := params.maxSize * 0.6
		life := 0.8
		if rng != nil {
			angle += rng.Float64() * 2 * math.Pi / float64(params.count)
			speed = params.maxSpeed * (0.3 + 0.7*rng.Float64())
			size = params.maxSize * (0.4 + 0.6*rng.Float64())
			life = 0.5 + 0.5*rng.Float64()
		}

		entityID := em.CreateEntity()
		em.AddComponent(entityID, &components.PositionComponent{X: centerX, Y: centerY})
		em.AddComponent(entityID, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		})
		em.AddComponent(entityID, &components.ParticleComponent{
			Size:          size,
			Color:         params.color,
			RemainingLife: life,
			InitialLife:   life,
		})
	}
}

// NewStandardExplosion 生成普通敌机被击毁时的爆炸
func NewStandardExplosion(em *ecs.EntityManager, centerX, centerY float64, rng *rand.Rand) {
	spawnBurst(em, centerX, centerY, standardBurst, rng)
}

// NewSmallExplosion 生成敌机撞击玩家时的小型爆炸
func NewSmallExplosion(em *ecs.EntityManager, centerX, centerY float64, rng *rand.Rand) {
	spawnBurst(em, centerX, centerY, smallBurst, rng)
}

// NewBossExplosion 生成旗舰被击毁时的大型爆炸（主题色）
func NewBossExplosion(em *ecs.EntityManager, centerX, centerY float64, rng *rand.Rand) {
	spawnBurst(em, centerX, centerY, bossBurst, rng)
}

// NewChainExplosion 生成连锁反应中单架敌机的引爆
func NewChainExplosion(em *ecs.EntityManager, centerX, centerY float64, rng *rand.Rand) {
	spawnBurst(em, centerX, centerY, chainBurst, rng)
}
