// Package scenes 提供游戏场景实现
package scenes

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/systems"
	"github.com/gonewx/starblitz/pkg/utils"
)

// GameScene 模拟控制器
//
// 持有全部实体集合与各个系统，负责：
//   - 运行状态机（主菜单/进行中/暂停/胜利/失败）
//   - 每帧固定的更新顺序（测试依赖该确定性）：
//     背景滚动 → 延迟事件 → 粒子 → [进行中: 玩家 → 子弹 → 敌机 →
//     生成/波次检查 → 碰撞] → 帧末统一清理死亡实体
//   - 对宿主暴露的生命周期入口：Start/Restart/TogglePause/Quit/
//     SetCheatMode/SetMuted，每帧 tick 即 Update
type GameScene struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	scheduler       *game.EventScheduler
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	input           utils.InputProvider
	rng             *rand.Rand
	enemyStats      *config.EnemyStatsConfig

	playerControlSystem *systems.PlayerControlSystem
	movementSystem      *systems.MovementSystem
	collisionSystem     *systems.CollisionSystem
	waveSystem          *systems.WaveSystem
	particleSystem      *systems.ParticleSystem
	renderSystem        *systems.RenderSystem

	playerID ecs.EntityID // 当前玩家实体ID，0表示本局尚未创建
}

// NewGameScene 创建模拟控制器
//
// 游戏状态由场景显式构造并注入到各个系统（不使用包级单例）。
//
// 参数:
//   - rm: 资源管理器，可为 nil（无渲染资源模式，测试用）
//   - am: 音频管理器，可为 nil
//   - sm: 设置管理器，可为 nil
//   - input: 输入源
//   - cheatMode: 是否以作弊模式（自动驾驶）启动
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, sm *game.SettingsManager,
	input utils.InputProvider, cheatMode bool) *GameScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	scheduler := game.NewEventScheduler()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	enemyStats := config.LoadEnemyStatsOrDefault("assets/config/enemies.yaml")

	gs.Cheat = cheatMode
	if !cheatMode && sm != nil && sm.GetSettings().AutoPilot {
		gs.Cheat = true
	}

	// 工厂接口对 nil 资源管理器安全：精灵加载失败走占位渲染
	var loader entities.ResourceLoader
	if rm != nil {
		loader = rm
	}

	s := &GameScene{
		entityManager:   em,
		gameState:       gs,
		scheduler:       scheduler,
		resourceManager: rm,
		audioManager:    am,
		settingsManager: sm,
		input:           input,
		rng:             rng,
		enemyStats:      enemyStats,

		playerControlSystem: systems.NewPlayerControlSystem(em, gs, input, am, loader),
		movementSystem:      systems.NewMovementSystem(em),
		collisionSystem:     systems.NewCollisionSystem(em, gs, scheduler, am, rng),
		waveSystem:          systems.NewWaveSystem(em, gs, loader, enemyStats, rng),
		particleSystem:      systems.NewParticleSystem(em),
		renderSystem:        systems.NewRenderSystem(em, gs),
	}
	return s
}

// GameState 返回场景持有的游戏状态（供宿主与测试观察）
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Update 每帧 tick，推进一帧模拟
//
// deltaTime 为距上一帧的现实时间（秒）。
// 延迟事件调度器在所有状态下照常推进（暂停时定时器仍然走表）；
// 粒子在开局后的所有状态下更新；
// 玩法实体只在 Playing 状态更新
func (s *GameScene) Update(deltaTime float64) error {
	s.handleToggles()

	// 背景滚动偏移
	s.gameState.ScrollOffset = math.Mod(
		s.gameState.ScrollOffset+config.BackgroundScrollSpeed*deltaTime, config.ScreenHeight)

	s.scheduler.Update(deltaTime)

	if s.gameState.RunStarted() {
		s.particleSystem.Update(deltaTime)
	}

	if s.gameState.State == game.StatePlaying {
		s.playerControlSystem.Update(deltaTime)
		s.movementSystem.UpdateProjectiles(deltaTime)
		s.movementSystem.UpdateEnemies(deltaTime)
		s.waveSystem.Update(deltaTime)
		s.collisionSystem.Update()
	}

	// 帧末统一清理：这是唯一的实体移除机制，更新过程中从不结构性删除
	s.entityManager.RemoveMarkedEntities()
	return nil
}

// handleToggles 处理边沿触发的输入（每次按键只触发一次）
func (s *GameScene) handleToggles() {
	if s.input == nil {
		return
	}

	if s.input.IsActionJustPressed(utils.ActionMute) {
		muted := s.audioManager.ToggleMuted()
		log.Printf("[GameScene] Muted: %v", muted)
	}
	if s.input.IsActionJustPressed(utils.ActionAutoPilot) {
		s.SetCheatMode(!s.gameState.Cheat)
	}

	switch s.gameState.State {
	case game.StateMenu:
		if s.input.IsActionJustPressed(utils.ActionStart) {
			s.Start()
		}
	case game.StatePlaying:
		if s.input.IsActionJustPressed(utils.ActionPause) {
			s.TogglePause()
		}
	case game.StatePaused:
		if s.input.IsActionJustPressed(utils.ActionPause) {
			s.TogglePause()
		} else if s.input.IsActionJustPressed(utils.ActionQuit) {
			s.Quit()
		}
	case game.StateVictory, game.StateGameOver:
		if s.input.IsActionJustPressed(utils.ActionStart) {
			s.Restart()
		} else if s.input.IsActionJustPressed(utils.ActionQuit) {
			s.Quit()
		}
	}
}

// Start 开始新的一局
// 清空上一局的全部实体与待触发事件，创建玩家并进入 Playing
func (s *GameScene) Start() {
	s.clearEntities(true)
	s.cancelPendingEvents("run start")

	playerID, err := entities.NewPlayerEntity(s.entityManager, s.loader(), s.gameState.Cheat)
	if err != nil {
		log.Printf("[GameScene] ERROR: failed to create player: %v", err)
		return
	}
	s.playerID = playerID

	s.gameState.BeginRun(config.SpawnIntervalForWave(1))
	log.Printf("[GameScene] Run started (cheat=%v)", s.gameState.Cheat)
}

// Restart 重新开始（Start 的别名）
func (s *GameScene) Restart() {
	s.Start()
}

// TogglePause 在 Playing 和 Paused 之间切换
// 其他状态下无效果
func (s *GameScene) TogglePause() {
	switch s.gameState.State {
	case game.StatePlaying:
		s.gameState.TransitionTo(game.StatePaused)
	case game.StatePaused:
		s.gameState.TransitionTo(game.StatePlaying)
	}
}

// Quit 退出当前局，回到主菜单
// 玩法实体被清除（粒子保留，残余爆炸继续播放），待触发事件被取消
func (s *GameScene) Quit() {
	s.clearEntities(false)
	s.cancelPendingEvents("quit")
	s.playerID = 0
	s.gameState.TransitionTo(game.StateMenu)
}

// SetCheatMode 切换作弊模式（自动驾驶）
// 开关会写入设置持久化；控制系统在下一帧同步玩家的控制模式
func (s *GameScene) SetCheatMode(enabled bool) {
	s.gameState.Cheat = enabled
	log.Printf("[GameScene] Cheat mode: %v", enabled)
	if s.settingsManager != nil {
		s.settingsManager.SetAutoPilot(enabled)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[GameScene] Warning: failed to save autopilot setting: %v", err)
		}
	}
}

// SetMuted 设置静音开关
//
// 返回:
//   - bool: 设置后的静音状态
func (s *GameScene) SetMuted(muted bool) bool {
	return s.audioManager.SetMuted(muted)
}

// cancelPendingEvents 取消所有待触发的延迟事件
// 旧局的定时器（胜利延迟、连锁引爆）不允许在退出/重开后窜入新局；
// 记录被丢弃的事件数量
func (s *GameScene) cancelPendingEvents(reason string) {
	if pending := s.scheduler.Pending(); pending > 0 {
		log.Printf("[GameScene] Cancelled %d pending events on %s", pending, reason)
	}
	s.scheduler.Clear()
}

// clearEntities 清除实体
// includeParticles 为 false 时保留粒子（退出到主菜单时残余爆炸继续播放）
func (s *GameScene) clearEntities(includeParticles bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	if includeParticles {
		for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager) {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.entityManager.RemoveMarkedEntities()
}

// loader 返回实体工厂用的资源加载接口（nil 安全）
func (s *GameScene) loader() entities.ResourceLoader {
	if s.resourceManager == nil {
		return nil
	}
	return s.resourceManager
}
