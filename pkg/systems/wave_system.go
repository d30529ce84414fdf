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

// WaveSystem 波次调度系统
//
// 职责：
//   - 推进生成倒计时，到期在竞技场顶部随机水平位置生成一架敌机
//   - 按概率曲线选择敌机类型：P(战斗机) = min(1, 0.3 + 波次*0.05)，
//     否则生成侦察机；旗舰不参与该随机
//   - 分数超过 波次*500 时升波：重算生成间隔（下限0.5秒），
//     每5波尝试生成一次旗舰（场上已有旗舰时跳过，保证旗舰唯一）
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	resources     entities.ResourceLoader
	enemyStats    *config.EnemyStatsConfig
	rng           *rand.Rand
}

// NewWaveSystem 创建波次调度系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（波次、分数、生成计时器）
//   - rm: 资源加载器，可为 nil
//   - stats: 敌机属性表
//   - rng: 随机数源（类型选择与出生位置）
func NewWaveSystem(em *ecs.EntityManager, gs *game.GameState, rm entities.ResourceLoader,
	stats *config.EnemyStatsConfig, rng *rand.Rand) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		gameState:     gs,
		resources:     rm,
		enemyStats:    stats,
		rng:           rng,
	}
}

// Update 推进生成倒计时并检查波次晋级
func (s *WaveSystem) Update(deltaTime float64) {
	s.gameState.SpawnTimer -= deltaTime
	if s.gameState.SpawnTimer <= 0 {
		s.spawnEnemy()
		s.gameState.SpawnTimer = s.gameState.SpawnInterval
	}

	s.checkWaveProgress()
}

// spawnEnemy 在竞技场顶部生成一架随机类型的敌机
func (s *WaveSystem) spawnEnemy() {
	enemyType := components.EnemyScout
	if s.rng.Float64() < config.FighterProbability(s.gameState.Wave) {
		enemyType = components.EnemyFighter
	}
	s.spawnEnemyOfType(enemyType)
}

// spawnEnemyOfType 生成指定类型的敌机，出生X在可用范围内均匀随机
func (s *WaveSystem) spawnEnemyOfType(enemyType components.EnemyType) {
	stats, ok := s.enemyStats.GetEnemyStats(enemyType.String())
	if !ok {
		log.Printf("[WaveSystem] Warning: no stats for enemy type %q", enemyType)
		return
	}

	spawnX := s.rng.Float64() * (config.ScreenWidth - stats.Width)
	if _, err := entities.NewEnemyEntity(s.entityManager, s.resources, s.enemyStats,
		enemyType, spawnX, s.rng); err != nil {
		log.Printf("[WaveSystem] Warning: failed to spawn enemy: %v", err)
	}
}

// checkWaveProgress 分数达标时晋级波次
// 升波后重新计算生成间隔；每 BossWaveInterval 波尝试生成旗舰
func (s *WaveSystem) checkWaveProgress() {
	if s.gameState.Score <= s.gameState.Wave*config.WaveScoreStep {
		return
	}

	s.gameState.Wave++
	s.gameState.SpawnInterval = config.SpawnIntervalForWave(s.gameState.Wave)
	log.Printf("[WaveSystem] Wave %d (spawn interval %.2fs)", s.gameState.Wave, s.gameState.SpawnInterval)

	if s.gameState.Wave%config.BossWaveInterval == 0 {
		s.TrySpawnBoss()
	}
}

// TrySpawnBoss 尝试生成旗舰
// 场上已有存活旗舰时不生成（生成时检查保证同屏至多一架旗舰）
//
// 返回:
//   - bool: 是否实际生成了旗舰
func (s *WaveSystem) TrySpawnBoss() bool {
	if s.bossAlive() {
		log.Printf("[WaveSystem] Boss already alive, skipping boss spawn")
		return false
	}
	s.spawnEnemyOfType(components.EnemyBoss)
	log.Printf("[WaveSystem] Boss spawned at wave %d", s.gameState.Wave)
	return true
}

// bossAlive 返回场上是否有存活的旗舰
func (s *WaveSystem) bossAlive() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if ok && enemy.Type == components.EnemyBoss {
			return true
		}
	}
	return false
}
