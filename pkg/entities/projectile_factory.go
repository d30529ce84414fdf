package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// NewProjectileEntity 创建子弹实体
// 子弹以玩家水平中点为中心、从玩家顶边向上发射
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器（可为 nil）
//   - centerX: 子弹水平中心的世界坐标X
//   - topY: 发射点世界坐标Y（玩家顶边），子弹底边对齐该位置
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: 如果创建失败返回错误信息
func NewProjectileEntity(em *ecs.EntityManager, rm ResourceLoader, centerX, topY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: centerX - config.ProjectileWidth/2,
		Y: topY - config.ProjectileHeight,
	})

	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
	})

	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: config.ProjectileSpeed,
	})

	em.AddComponent(entityID, &components.ProjectileComponent{
		Damage: config.ProjectileDamage,
	})

	em.AddComponent(entityID, &components.SpriteComponent{
		Image:         loadSprite(rm, "assets/images/projectile.png"),
		FallbackColor: color.RGBA{R: 255, G: 240, B: 120, A: 255},
	})

	return entityID, nil
}
