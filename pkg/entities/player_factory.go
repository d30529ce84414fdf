package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceLoader 实体工厂所需的最小资源加载接口
// 由 game.ResourceManager 实现；测试中可传 nil（所有实体使用占位渲染）
type ResourceLoader interface {
	LoadImageOrNil(path string) *ebiten.Image
}

// loadSprite 加载精灵图片，rm 为 nil 或加载失败时返回 nil
// nil 图片由渲染系统降级为 FallbackColor 实心矩形
func loadSprite(rm ResourceLoader, path string) *ebiten.Image {
	if rm == nil {
		return nil
	}
	return rm.LoadImageOrNil(path)
}

// NewPlayerEntity 创建玩家飞船实体
// 每局恰好创建一次，出生在屏幕底部水平居中的位置
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器（可为 nil）
//   - autoPilot: 是否以自动驾驶模式开局
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
//   - error: 如果创建失败返回错误信息
func NewPlayerEntity(em *ecs.EntityManager, rm ResourceLoader, autoPilot bool) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	controlMode := components.ControlModeManual
	if autoPilot {
		controlMode = components.ControlModeAuto
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: (config.ScreenWidth - config.PlayerWidth) / 2,
		Y: config.ScreenHeight - config.PlayerHeight - config.PlayerStartOffsetY,
	})

	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})

	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: config.PlayerMaxHealth,
		MaxHealth:     config.PlayerMaxHealth,
	})

	em.AddComponent(entityID, &components.PlayerComponent{
		MoveSpeed:    config.PlayerMoveSpeed,
		FireInterval: config.PlayerFireInterval,
		FireCooldown: 0,
		ControlMode:  controlMode,
	})

	em.AddComponent(entityID, &components.SpriteComponent{
		Image:         loadSprite(rm, "assets/images/player.png"),
		FallbackColor: color.RGBA{R: 80, G: 200, B: 255, A: 255},
	})

	return entityID, nil
}
