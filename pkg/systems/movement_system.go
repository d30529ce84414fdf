package systems

import (
	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// MovementSystem 处理子弹和敌机的运动与出界判定
//
// 每帧的更新顺序由 GameScene 保证：先子弹后敌机。
// 出界实体只做标记删除，帧末由 EntityManager 统一清理
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建运动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
	}
}

// UpdateProjectiles 推进所有子弹并移除离开竞技场垂直边界的子弹
func (s *MovementSystem) UpdateProjectiles(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.ProjectileComponent,
		*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.Y += vel.VY * deltaTime

		// 完全离开上边界或下边界后移除
		if pos.Y+col.Height < 0 || pos.Y > config.ScreenHeight {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// UpdateEnemies 推进所有敌机，处理侧墙反弹和底边逃逸
func (s *MovementSystem) UpdateEnemies(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.EnemyComponent,
		*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		// 触碰侧墙反转水平速度（纯反射，不做位置钳制，
		// 允许当帧行程造成的短暂越界）
		if pos.X <= 0 || pos.X+col.Width >= config.ScreenWidth {
			vel.VX = -vel.VX
		}

		// 顶边越过竞技场底边：标记死亡，无任何其他副作用（不扣分不掉血）
		if pos.Y > config.ScreenHeight {
			s.entityManager.DestroyEntity(id)
		}
	}
}
