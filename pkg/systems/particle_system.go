package systems

import (
	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// ParticleSystem 更新爆炸粒子
//
// 粒子在开局后的任何运行状态下都会更新（死亡/胜利时刻产生的爆炸
// 在状态切换后继续播放），生命以2倍现实时间速率衰减，归零即移除
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
	}
}

// Update 推进所有粒子的位置和生命
func (s *ParticleSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.ParticleComponent,
		*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		particle.RemainingLife -= deltaTime * config.ParticleDecayRate
		if particle.RemainingLife <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
