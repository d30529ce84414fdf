package systems

import (
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/utils"
)

// PlayerControlSystem 处理玩家飞船的移动与射击
//
// 两种互斥的控制策略，由作弊模式开关选择：
//   - 手动：四个方向独立判定，对角移动为两轴简单叠加（不归一化）
//   - 自动驾驶：每帧选择水平距离最近的敌机并向其水平对准，
//     垂直位置永不改变，强制持续开火，免疫伤害
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         utils.InputProvider
	audioManager  *game.AudioManager
	resources     entities.ResourceLoader
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（读取作弊模式开关）
//   - input: 输入源
//   - am: 音频管理器（射击音效），可为 nil
//   - rm: 资源加载器（子弹精灵），可为 nil
func NewPlayerControlSystem(em *ecs.EntityManager, gs *game.GameState, input utils.InputProvider,
	am *game.AudioManager, rm entities.ResourceLoader) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		audioManager:  am,
		resources:     rm,
	}
}

// Update 更新玩家移动、位置钳制和射击冷却
func (s *PlayerControlSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent,
		*components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerID := players[0]

	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	// 控制模式跟随作弊模式开关
	if s.gameState.Cheat {
		player.ControlMode = components.ControlModeAuto
	} else {
		player.ControlMode = components.ControlModeManual
	}

	if player.ControlMode == components.ControlModeAuto {
		s.updateAutoPilot(player, pos, col, deltaTime)
	} else {
		s.updateManual(player, pos, deltaTime)
	}

	// 移动后钳制到竞技场内
	pos.X = clamp(pos.X, 0, config.ScreenWidth-col.Width)
	pos.Y = clamp(pos.Y, 0, config.ScreenHeight-col.Height)

	s.updateFiring(player, pos, col, deltaTime)
}

// updateManual 手动控制：四个方向独立判定
// 对角移动是两轴位移的直接叠加，斜向速度为 √2 倍（刻意保留的街机手感）
func (s *PlayerControlSystem) updateManual(player *components.PlayerComponent,
	pos *components.PositionComponent, deltaTime float64) {
	step := player.MoveSpeed * deltaTime
	if s.input.IsActionActive(utils.ActionMoveLeft) {
		pos.X -= step
	}
	if s.input.IsActionActive(utils.ActionMoveRight) {
		pos.X += step
	}
	if s.input.IsActionActive(utils.ActionMoveUp) {
		pos.Y -= step
	}
	if s.input.IsActionActive(utils.ActionMoveDown) {
		pos.Y += step
	}
}

// updateAutoPilot 自动驾驶：向水平距离最近的敌机对准
//
// 目标选择只比较水平距离 |enemy.x - player.x|，完全忽略垂直距离，
// 距离相同时取遍历顺序中先出现的敌机。没有敌机时回到竞技场水平中心。
// 对准使用 ±AutoPilotDeadband 容差，垂直位置永不改变
func (s *PlayerControlSystem) updateAutoPilot(player *components.PlayerComponent,
	pos *components.PositionComponent, col *components.CollisionComponent, deltaTime float64) {
	// 期望的玩家X：与目标敌机中心对齐，无目标时回到屏幕中心
	desiredX := (config.ScreenWidth - col.Width) / 2

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent,
		*components.PositionComponent](s.entityManager)
	bestDistance := math.MaxFloat64
	for _, id := range enemies {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		distance := math.Abs(enemyPos.X - pos.X)
		if distance < bestDistance {
			bestDistance = distance
			enemyCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
			if ok {
				desiredX = enemyPos.X + enemyCol.Width/2 - col.Width/2
			} else {
				desiredX = enemyPos.X
			}
		}
	}

	diff := desiredX - pos.X
	if math.Abs(diff) <= config.AutoPilotDeadband {
		return
	}
	step := player.MoveSpeed * deltaTime
	if diff > 0 {
		pos.X += step
	} else {
		pos.X -= step
	}
}

// updateFiring 推进射击冷却并在条件满足时发射子弹
// 冷却归零且（开火键按住或处于自动驾驶）时发射：
// 子弹以玩家水平中点为中心、从玩家顶边向上飞出
func (s *PlayerControlSystem) updateFiring(player *components.PlayerComponent,
	pos *components.PositionComponent, col *components.CollisionComponent, deltaTime float64) {
	player.FireCooldown -= deltaTime
	if player.FireCooldown > 0 {
		return
	}

	wantFire := player.ControlMode == components.ControlModeAuto ||
		s.input.IsActionActive(utils.ActionFire)
	if !wantFire {
		return
	}

	if _, err := entities.NewProjectileEntity(s.entityManager, s.resources,
		pos.X+col.Width/2, pos.Y); err != nil {
		log.Printf("[PlayerControlSystem] Warning: failed to spawn projectile: %v", err)
		return
	}
	player.FireCooldown = player.FireInterval
	s.audioManager.PlaySound(game.SoundShoot)
}

// clamp 将 v 限制在 [min, max] 区间内
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
