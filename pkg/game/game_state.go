package game

import "log"

// RunState 游戏运行状态
type RunState int

const (
	// StateMenu 主菜单（初始状态）
	StateMenu RunState = iota
	// StatePlaying 游戏进行中，唯一会更新玩法实体的状态
	StatePlaying
	// StatePaused 暂停
	StatePaused
	// StateVictory 胜利（旗舰击毁2秒后进入）
	StateVictory
	// StateGameOver 失败（玩家生命值归零）
	StateGameOver
)

// String 返回状态名，用于日志输出
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateVictory:
		return "Victory"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 存储单局运行的全局状态
//
// 不使用包级单例：由 GameScene 显式构造并注入到各个系统
type GameState struct {
	State RunState // 当前运行状态

	Score int  // 当前分数，单调不减
	Wave  int  // 当前波次，从1开始单调递增
	Cheat bool // 作弊模式（自动驾驶）开关

	SpawnTimer    float64 // 敌机生成倒计时（秒）
	SpawnInterval float64 // 当前生成间隔（秒），由波次推导

	ScrollOffset float64 // 背景滚动偏移（像素）

	runStarted    bool // 是否已开始过至少一局（粒子在任何状态下持续动画的前提）
	gameOverFired bool // 本局是否已触发过失败转换
}

// NewGameState 创建初始状态为主菜单的游戏状态
func NewGameState() *GameState {
	return &GameState{
		State: StateMenu,
		Wave:  1,
	}
}

// AddScore 增加分数
// 负数会被拒绝并记录日志（公共入口的非法输入策略：拒绝而非截断）
func (gs *GameState) AddScore(amount int) {
	if amount < 0 {
		log.Printf("[GameState] Warning: rejected negative score delta %d", amount)
		return
	}
	gs.Score += amount
}

// TransitionTo 切换运行状态并记录日志
func (gs *GameState) TransitionTo(state RunState) {
	if gs.State == state {
		return
	}
	log.Printf("[GameState] %s -> %s (score=%d, wave=%d)", gs.State, state, gs.Score, gs.Wave)
	gs.State = state
}

// TriggerGameOver 触发失败转换
// 只在 Playing 状态且本局未触发过时生效，保证恰好触发一次
func (gs *GameState) TriggerGameOver() {
	if gs.State != StatePlaying || gs.gameOverFired {
		return
	}
	gs.gameOverFired = true
	gs.TransitionTo(StateGameOver)
}

// RunStarted 返回是否已开始过一局
// 开局后粒子在所有状态下继续更新（死亡/胜利爆炸在状态切换后仍在动画）
func (gs *GameState) RunStarted() bool {
	return gs.runStarted
}

// BeginRun 重置单局状态并进入 Playing
// spawnInterval 为第一波的生成间隔
func (gs *GameState) BeginRun(spawnInterval float64) {
	gs.Score = 0
	gs.Wave = 1
	gs.SpawnInterval = spawnInterval
	gs.SpawnTimer = spawnInterval
	gs.runStarted = true
	gs.gameOverFired = false
	gs.TransitionTo(StatePlaying)
}
