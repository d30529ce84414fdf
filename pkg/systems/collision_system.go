package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
)

// CollisionSystem 处理碰撞判定与伤害结算
//
// 每帧的碰撞流程（顺序固定，测试依赖确定性）：
//  1. 子弹对敌机：子弹为外层循环的嵌套遍历。命中即标记子弹死亡并对
//     敌机结算1点伤害，因此一颗子弹同帧最多命中一个目标
//     （遍历顺序中第一个命中者获胜）
//  2. 敌机对玩家：命中即标记敌机死亡（不计分）、玩家受20点伤害、
//     在敌机位置生成小型爆炸
//
// 敌机死亡结算（得分、爆炸、旗舰连锁反应）也在本系统内完成
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	scheduler     *game.EventScheduler
	audioManager  *game.AudioManager
	rng           *rand.Rand
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（得分与状态转换）
//   - scheduler: 延迟事件调度器（连锁反应与胜利延迟）
//   - am: 音频管理器，可为 nil
//   - rng: 随机数源（爆炸粒子参数）
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, scheduler *game.EventScheduler,
	am *game.AudioManager, rng *rand.Rand) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		scheduler:     scheduler,
		audioManager:  am,
		rng:           rng,
	}
}

// Collides 检查两个碰撞盒是否碰撞
//
// 两个碰撞盒都先按每边 10% 向内收缩（宽容判定），再做 AABB 相交测试。
// 相交判定使用严格不等号：收缩后边缘相触不算碰撞。
// 该收缩规则必须精确保持，否则游戏难度会明显变化
func Collides(pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	m1x := col1.Width * config.CollisionMarginRatio
	m1y := col1.Height * config.CollisionMarginRatio
	m2x := col2.Width * config.CollisionMarginRatio
	m2y := col2.Height * config.CollisionMarginRatio

	left1 := pos1.X + m1x
	right1 := pos1.X + col1.Width - m1x
	top1 := pos1.Y + m1y
	bottom1 := pos1.Y + col1.Height - m1y

	left2 := pos2.X + m2x
	right2 := pos2.X + col2.Width - m2x
	top2 := pos2.Y + m2y
	bottom2 := pos2.Y + col2.Height - m2y

	return left1 < right2 && right1 > left2 && top1 < bottom2 && bottom1 > top2
}

// Update 执行本帧的碰撞判定
func (s *CollisionSystem) Update() {
	s.resolveProjectileHits()
	s.resolvePlayerCollisions()
}

// resolveProjectileHits 子弹对敌机的嵌套碰撞判定（子弹为外层）
func (s *CollisionSystem) resolveProjectileHits() {
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, projectileID := range projectiles {
		if !s.entityManager.IsAlive(projectileID) {
			continue
		}
		projPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, projectileID)
		if !ok {
			continue
		}
		projCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, projectileID)
		if !ok {
			continue
		}
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projectileID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if !s.entityManager.IsAlive(enemyID) {
				continue
			}
			enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			if !ok {
				continue
			}
			enemyCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)
			if !ok {
				continue
			}

			if Collides(projPos, projCol, enemyPos, enemyCol) {
				// 命中：子弹立即标记死亡，同帧不再命中其他敌机
				s.entityManager.DestroyEntity(projectileID)
				s.audioManager.PlaySound(game.SoundEnemyHit)
				s.damageEnemy(enemyID, proj.Damage)
				break
			}
		}
	}
}

// resolvePlayerCollisions 敌机对玩家的碰撞判定
// 命中的敌机标记死亡（不计分），玩家受撞击伤害，在敌机位置生成小型爆炸
func (s *CollisionSystem) resolvePlayerCollisions() {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerID := players[0]
	if !s.entityManager.IsAlive(playerID) {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	playerCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, enemyID := range enemies {
		if !s.entityManager.IsAlive(enemyID) {
			continue
		}
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}
		enemyCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}

		if Collides(enemyPos, enemyCol, playerPos, playerCol) {
			s.entityManager.DestroyEntity(enemyID)
			// 小型爆炸使用敌机未收缩的包围盒位置
			entities.NewSmallExplosion(s.entityManager,
				enemyPos.X+enemyCol.Width/2, enemyPos.Y+enemyCol.Height/2, s.rng)
			s.audioManager.PlaySound(game.SoundExplosion)
			s.damagePlayer(playerID, config.EnemyContactDamage)
		}
	}
}

// damageEnemy 对敌机结算伤害，生命归零时执行死亡流程
func (s *CollisionSystem) damageEnemy(enemyID ecs.EntityID, amount int) {
	if amount <= 0 {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
	if !ok {
		return
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth > 0 {
		return
	}
	health.CurrentHealth = 0
	s.killEnemy(enemyID)
}

// killEnemy 敌机死亡结算：标记死亡、加分、生成爆炸
// 旗舰额外触发大型爆炸、连锁反应和2秒后的胜利转换
func (s *CollisionSystem) killEnemy(enemyID ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)

	s.entityManager.DestroyEntity(enemyID)
	s.gameState.AddScore(enemy.ScoreValue)
	s.audioManager.PlaySound(game.SoundExplosion)

	centerX := pos.X + col.Width/2
	centerY := pos.Y + col.Height/2
	entities.NewStandardExplosion(s.entityManager, centerX, centerY, s.rng)

	if enemy.Type == components.EnemyBoss {
		entities.NewBossExplosion(s.entityManager, centerX, centerY, s.rng)
		s.triggerChainReaction()

		// 旗舰击毁2秒后进入胜利状态
		s.scheduler.Schedule(config.VictoryDelay, func() {
			s.gameState.TransitionTo(game.StateVictory)
		})
		log.Printf("[CollisionSystem] Boss destroyed, victory in %.1fs", config.VictoryDelay)
	}
}

// triggerChainReaction 旗舰死亡触发的连锁反应
//
// 对触发时刻仍存活的敌机做一次快照，快照中第 i 架敌机在 i*100ms 后
// 被引爆（若届时仍存活）：标记死亡并生成20粒子爆炸。
// 由于使用快照，旗舰死亡之后生成的敌机不受影响；连锁击毁不计分
func (s *CollisionSystem) triggerChainReaction() {
	snapshot := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if s.entityManager.IsAlive(id) {
			snapshot = append(snapshot, id)
		}
	}
	log.Printf("[CollisionSystem] Chain reaction: %d enemies scheduled", len(snapshot))

	for i, enemyID := range snapshot {
		id := enemyID
		s.scheduler.Schedule(float64(i)*config.ChainStaggerDelay, func() {
			if !s.entityManager.IsAlive(id) {
				return
			}
			pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			if !ok {
				return
			}
			col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
			if !ok {
				return
			}
			s.entityManager.DestroyEntity(id)
			entities.NewChainExplosion(s.entityManager,
				pos.X+col.Width/2, pos.Y+col.Height/2, s.rng)
			s.audioManager.PlaySound(game.SoundExplosion)
		})
	}
}

// damagePlayer 对玩家结算伤害
//
// 自动驾驶模式下玩家免疫伤害（完全无副作用）。
// 生命值在0处截断，首次从正数降到0时恰好触发一次失败转换。
// 非正伤害值被拒绝（公共入口的非法输入策略）
func (s *CollisionSystem) damagePlayer(playerID ecs.EntityID, amount int) {
	if amount <= 0 {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	if player.ControlMode == components.ControlModeAuto {
		return
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	if health.CurrentHealth <= 0 {
		return
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		s.gameState.TriggerGameOver()
	}
}
