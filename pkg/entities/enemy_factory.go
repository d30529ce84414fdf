package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// enemySpritePaths 敌机类型到精灵资源路径的映射
var enemySpritePaths = map[components.EnemyType]string{
	components.EnemyScout:   "assets/images/scout.png",
	components.EnemyFighter: "assets/images/fighter.png",
	components.EnemyBoss:    "assets/images/boss.png",
}

// enemyFallbackColors 敌机类型到占位矩形颜色的映射
var enemyFallbackColors = map[components.EnemyType]color.RGBA{
	components.EnemyScout:   {R: 120, G: 220, B: 120, A: 255},
	components.EnemyFighter: {R: 230, G: 150, B: 60, A: 255},
	components.EnemyBoss:    {R: 190, G: 80, B: 220, A: 255},
}

// NewEnemyEntity 创建敌机实体
// 敌机出生在屏幕顶部（包围盒完全在屏幕上方），向下移动进入竞技场
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器（可为 nil）
//   - stats: 敌机属性表
//   - enemyType: 敌机类型
//   - spawnX: 出生点世界坐标X（包围盒左上角）
//   - rng: 随机数源，用于决定侦察机漂移方向
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID
//   - error: 如果创建失败返回错误信息
func NewEnemyEntity(em *ecs.EntityManager, rm ResourceLoader, stats *config.EnemyStatsConfig,
	enemyType components.EnemyType, spawnX float64, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil {
		return 0, fmt.Errorf("enemy stats config cannot be nil")
	}

	typeStats, ok := stats.GetEnemyStats(enemyType.String())
	if !ok {
		return 0, fmt.Errorf("no stats for enemy type %q", enemyType)
	}

	// 侦察机在出生时随机决定漂移方向，之后只通过撞墙反弹改变
	driftX := typeStats.DriftSpeedX
	if driftX > 0 && rng != nil && rng.Intn(2) == 0 {
		driftX = -driftX
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: spawnX,
		Y: -typeStats.Height,
	})

	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  typeStats.Width,
		Height: typeStats.Height,
	})

	em.AddComponent(entityID, &components.VelocityComponent{
		VX: driftX,
		VY: typeStats.SpeedY,
	})

	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: typeStats.Health,
		MaxHealth:     typeStats.Health,
	})

	em.AddComponent(entityID, &components.EnemyComponent{
		Type:       enemyType,
		ScoreValue: typeStats.Score,
	})

	em.AddComponent(entityID, &components.SpriteComponent{
		Image:         loadSprite(rm, enemySpritePaths[enemyType]),
		FallbackColor: enemyFallbackColors[enemyType],
	})

	return entityID, nil
}
