package scenes

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/utils"
)

// fakeInput 测试用输入源
type fakeInput struct {
	active      map[utils.Action]bool
	justPressed map[utils.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		active:      make(map[utils.Action]bool),
		justPressed: make(map[utils.Action]bool),
	}
}

func (f *fakeInput) IsActionActive(action utils.Action) bool {
	return f.active[action]
}

func (f *fakeInput) IsActionJustPressed(action utils.Action) bool {
	return f.justPressed[action]
}

// press 模拟单帧按键：置位后由调用方在 Update 后清除
func (f *fakeInput) press(action utils.Action) {
	f.justPressed[action] = true
}

func (f *fakeInput) release() {
	clear(f.justPressed)
}

// newTestScene 创建无音频、无渲染资源的场景（纯模拟模式）
func newTestScene(input utils.InputProvider) *GameScene {
	return NewGameScene(nil, nil, nil, input, false)
}

func countAliveEnemies(em *ecs.EntityManager) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsAlive(id) {
			count++
		}
	}
	return count
}

// TestSceneStartsInMenu 测试场景初始处于主菜单
func TestSceneStartsInMenu(t *testing.T) {
	s := newTestScene(newFakeInput())

	if s.GameState().State != game.StateMenu {
		t.Errorf("Initial state: got %v, want Menu", s.GameState().State)
	}
	if s.GameState().RunStarted() {
		t.Error("RunStarted should be false before the first run")
	}
}

// TestStartActionBeginsRun 测试主菜单按开始键进入游戏
func TestStartActionBeginsRun(t *testing.T) {
	input := newFakeInput()
	s := newTestScene(input)

	input.press(utils.ActionStart)
	if err := s.Update(0.016); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	input.release()

	gs := s.GameState()
	if gs.State != game.StatePlaying {
		t.Fatalf("State after start: got %v, want Playing", gs.State)
	}
	if gs.Score != 0 || gs.Wave != 1 {
		t.Errorf("Fresh run: score=%d wave=%d, want 0 and 1", gs.Score, gs.Wave)
	}

	// 玩家已创建且满血
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(players) != 1 {
		t.Fatalf("Player entities: got %d, want 1", len(players))
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, players[0])
	if health.CurrentHealth != config.PlayerMaxHealth {
		t.Errorf("Player health: got %d, want %d", health.CurrentHealth, config.PlayerMaxHealth)
	}
}

// TestPauseFreezesGameplay 测试暂停冻结玩法实体但保持可恢复
func TestPauseFreezesGameplay(t *testing.T) {
	input := newFakeInput()
	s := newTestScene(input)
	s.Start()

	// 放一架敌机并暂停
	enemyID, _ := entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
		components.EnemyScout, 100, nil)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
	startY := pos.Y

	input.press(utils.ActionPause)
	s.Update(0.016)
	input.release()
	if s.GameState().State != game.StatePaused {
		t.Fatalf("State: got %v, want Paused", s.GameState().State)
	}

	// 暂停期间敌机不动
	s.Update(0.5)
	if pos.Y != startY {
		t.Errorf("Enemy moved while paused: Y %g -> %g", startY, pos.Y)
	}

	// 再按一次恢复
	input.press(utils.ActionPause)
	s.Update(0.016)
	input.release()
	if s.GameState().State != game.StatePlaying {
		t.Errorf("State after resume: got %v, want Playing", s.GameState().State)
	}

	s.Update(0.1)
	if pos.Y == startY {
		t.Error("Enemy should move again after resume")
	}
}

// TestEnemyContactEndsRun 测试5次撞击玩家后进入失败状态
func TestEnemyContactEndsRun(t *testing.T) {
	s := newTestScene(newFakeInput())
	s.Start()

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])

	for i := 0; i < 5; i++ {
		enemyID, _ := entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
			components.EnemyScout, playerPos.X, nil)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		pos.Y = playerPos.Y

		s.Update(0.001)
	}

	gs := s.GameState()
	if gs.State != game.StateGameOver {
		t.Errorf("State after 5 contacts: got %v, want GameOver", gs.State)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, players[0])
	if health.CurrentHealth != 0 {
		t.Errorf("Player health: got %d, want 0", health.CurrentHealth)
	}
}

// TestBossVictoryFlow 测试旗舰击毁 → 连锁反应 → 胜利转换的完整链路
func TestBossVictoryFlow(t *testing.T) {
	s := newTestScene(newFakeInput())
	s.Start()

	// 1血旗舰和一架旁观敌机
	bossID, _ := entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
		components.EnemyBoss, 300, nil)
	bossPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bossID)
	bossPos.Y = 100
	bossHealth, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID)
	bossHealth.CurrentHealth = 1

	bystanderID, _ := entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
		components.EnemyScout, 50, nil)
	bystanderPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bystanderID)
	bystanderPos.Y = 300

	// 子弹直击旗舰中心区域
	projectileID, _ := entities.NewProjectileEntity(s.entityManager, nil, 360, 165)
	projPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, projectileID)
	projPos.Y = 150

	s.Update(0.016)

	gs := s.GameState()
	if s.entityManager.IsAlive(bossID) {
		t.Fatal("Boss should be destroyed")
	}
	if gs.Score != 500 {
		t.Errorf("Score after boss kill: got %d, want 500", gs.Score)
	}

	// 暂停后延迟事件仍然走表
	s.TogglePause()
	s.Update(2.5)

	if s.entityManager.IsAlive(bystanderID) {
		t.Error("Chained enemy should be detonated")
	}
	if countAliveEnemies(s.entityManager) != 0 {
		t.Errorf("Live enemies after chain: got %d, want 0", countAliveEnemies(s.entityManager))
	}
	if gs.Score != 500 {
		t.Errorf("Chain kills must not award score, got %d", gs.Score)
	}
	if gs.State != game.StateVictory {
		t.Errorf("State after victory delay: got %v, want Victory", gs.State)
	}
}

// TestRestartResetsRun 测试重新开局清空实体与待触发事件
func TestRestartResetsRun(t *testing.T) {
	s := newTestScene(newFakeInput())
	s.Start()

	// 残留实体和待触发事件
	entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
		components.EnemyScout, 100, nil)
	entities.NewStandardExplosion(s.entityManager, 400, 300, nil)
	fired := false
	s.scheduler.Schedule(0.5, func() { fired = true })
	s.GameState().AddScore(320)

	s.Restart()

	gs := s.GameState()
	if gs.State != game.StatePlaying || gs.Score != 0 || gs.Wave != 1 {
		t.Errorf("After restart: state=%v score=%d wave=%d", gs.State, gs.Score, gs.Wave)
	}
	if countAliveEnemies(s.entityManager) != 0 {
		t.Error("Restart should clear all enemies")
	}
	if got := len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)); got != 0 {
		t.Errorf("Restart should clear particles, %d left", got)
	}
	if s.scheduler.Pending() != 0 {
		t.Errorf("Restart should cancel pending events, %d left", s.scheduler.Pending())
	}

	s.Update(1.0)
	if fired {
		t.Error("Events from the previous run must not fire after restart")
	}
}

// TestQuitKeepsParticles 测试退出到主菜单保留粒子（残余爆炸继续播放）
func TestQuitKeepsParticles(t *testing.T) {
	s := newTestScene(newFakeInput())
	s.Start()

	entities.NewEnemyEntity(s.entityManager, nil, config.DefaultEnemyStats(),
		components.EnemyScout, 100, nil)
	entities.NewStandardExplosion(s.entityManager, 400, 300, nil)

	s.Quit()

	if s.GameState().State != game.StateMenu {
		t.Errorf("State after quit: got %v, want Menu", s.GameState().State)
	}
	if countAliveEnemies(s.entityManager) != 0 {
		t.Error("Quit should clear gameplay entities")
	}
	if got := len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)); got == 0 {
		t.Error("Quit should keep residual particles")
	}

	// 主菜单下粒子继续衰减并最终消失
	for i := 0; i < 10; i++ {
		s.Update(0.1)
	}
	if got := len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)); got != 0 {
		t.Errorf("Particles should decay on the menu, %d left", got)
	}
}

// TestCheatToggleSwitchesControlMode 测试作弊开关切换玩家控制模式
func TestCheatToggleSwitchesControlMode(t *testing.T) {
	input := newFakeInput()
	s := newTestScene(input)
	s.Start()

	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, players[0])

	input.press(utils.ActionAutoPilot)
	s.Update(0.016)
	input.release()

	if !s.GameState().Cheat {
		t.Error("Cheat flag should be on after toggle")
	}
	if player.ControlMode != components.ControlModeAuto {
		t.Error("Player control mode should follow the cheat flag")
	}

	input.press(utils.ActionAutoPilot)
	s.Update(0.016)
	input.release()

	if s.GameState().Cheat {
		t.Error("Cheat flag should be off after second toggle")
	}
	if player.ControlMode != components.ControlModeManual {
		t.Error("Player control mode should return to manual")
	}
}
