package systems

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// TestSpawnTimerProducesEnemy 测试生成倒计时到期生成敌机并重置
func TestSpawnTimerProducesEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	// 倒计时未到期：不生成
	ws.Update(gs.SpawnInterval / 2)
	if got := countAliveEnemies(em); got != 0 {
		t.Errorf("Enemies before timer expiry: got %d, want 0", got)
	}

	// 到期：恰好生成一架并重置倒计时
	ws.Update(gs.SpawnInterval / 2)
	if got := countAliveEnemies(em); got != 1 {
		t.Errorf("Enemies after timer expiry: got %d, want 1", got)
	}
	if gs.SpawnTimer != gs.SpawnInterval {
		t.Errorf("Spawn timer after reset: got %g, want %g", gs.SpawnTimer, gs.SpawnInterval)
	}
}

// TestSpawnedEnemyStartsAboveScreen 测试敌机出生在屏幕上方且水平在界内
func TestSpawnedEnemyStartsAboveScreen(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	for i := 0; i < 20; i++ {
		ws.Update(gs.SpawnInterval)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		if pos.Y+col.Height > 0 {
			t.Errorf("Enemy should spawn fully above the screen, Y=%g height=%g", pos.Y, col.Height)
		}
		if pos.X < 0 || pos.X+col.Width > config.ScreenWidth {
			t.Errorf("Enemy spawn X out of bounds: X=%g width=%g", pos.X, col.Width)
		}
	}
}

// TestWaveAdvancesOnScore 测试分数超过阈值时升波并缩短生成间隔
func TestWaveAdvancesOnScore(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	// 分数恰好等于阈值：不升波（严格大于）
	gs.Score = 500
	ws.Update(0.01)
	if gs.Wave != 1 {
		t.Errorf("Wave at score==threshold: got %d, want 1", gs.Wave)
	}

	// 分数超过阈值：升波
	gs.Score = 501
	ws.Update(0.01)
	if gs.Wave != 2 {
		t.Errorf("Wave after exceeding threshold: got %d, want 2", gs.Wave)
	}
	if gs.SpawnInterval != config.SpawnIntervalForWave(2) {
		t.Errorf("Spawn interval after wave up: got %g, want %g",
			gs.SpawnInterval, config.SpawnIntervalForWave(2))
	}

	// 每次更新最多升一波
	gs.Score = 10000
	ws.Update(0.01)
	if gs.Wave != 3 {
		t.Errorf("Wave should advance once per update, got %d", gs.Wave)
	}
}

// TestBossSpawnsOnFifthWave 测试第5波生成旗舰
func TestBossSpawnsOnFifthWave(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	gs.Wave = 4
	gs.Score = 4*config.WaveScoreStep + 1
	ws.Update(0.01)

	if gs.Wave != 5 {
		t.Fatalf("Wave: got %d, want 5", gs.Wave)
	}

	bossCount := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Type == components.EnemyBoss {
			bossCount++
		}
	}
	if bossCount != 1 {
		t.Errorf("Boss count at wave 5: got %d, want 1", bossCount)
	}
}

// TestBossExclusivity 测试场上已有旗舰时不再生成
func TestBossExclusivity(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	if !ws.TrySpawnBoss() {
		t.Fatal("First TrySpawnBoss should succeed")
	}
	if ws.TrySpawnBoss() {
		t.Error("Second TrySpawnBoss must be skipped while a boss is alive")
	}

	// 旗舰死亡并清理后可以再次生成
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	if !ws.TrySpawnBoss() {
		t.Error("TrySpawnBoss should succeed again after the boss is gone")
	}
}

// TestBossStats 测试旗舰的属性来自配置表
func TestBossStats(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newPlayingState()
	ws := NewWaveSystem(em, gs, nil, config.DefaultEnemyStats(), testRng())

	ws.TrySpawnBoss()

	bosses := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	if len(bosses) != 1 {
		t.Fatalf("Expected 1 boss, got %d entities", len(bosses))
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, bosses[0])
	if health.CurrentHealth != 50 {
		t.Errorf("Boss health: got %d, want 50", health.CurrentHealth)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, bosses[0])
	if enemy.ScoreValue != 500 {
		t.Errorf("Boss score value: got %d, want 500", enemy.ScoreValue)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, bosses[0])
	if vel.VY != 20 {
		t.Errorf("Boss descent speed: got %g, want 20", vel.VY)
	}
}
