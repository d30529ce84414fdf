package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/utils"
)

// fakeInput 测试用输入源，可编程按键状态
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

// testRng 返回固定种子的随机数源，保证测试可重复
func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newPlayingState 返回处于 Playing 状态的游戏状态
func newPlayingState() *game.GameState {
	gs := game.NewGameState()
	gs.BeginRun(config.SpawnIntervalForWave(1))
	return gs
}

// spawnTestPlayer 创建玩家实体并把它移动到指定位置
func spawnTestPlayer(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()

	id, err := entities.NewPlayerEntity(em, nil, false)
	if err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = x
	pos.Y = y
	return id
}

// spawnTestEnemy 创建指定类型的敌机并把它移动到指定位置
func spawnTestEnemy(t *testing.T, em *ecs.EntityManager, enemyType components.EnemyType, x, y float64) ecs.EntityID {
	t.Helper()

	id, err := entities.NewEnemyEntity(em, nil, config.DefaultEnemyStats(), enemyType, x, nil)
	if err != nil {
		t.Fatalf("Failed to create enemy: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = x
	pos.Y = y
	return id
}

// spawnTestProjectile 创建子弹并把它移动到指定位置（包围盒左上角）
func spawnTestProjectile(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()

	id, err := entities.NewProjectileEntity(em, nil, 0, 0)
	if err != nil {
		t.Fatalf("Failed to create projectile: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = x
	pos.Y = y
	return id
}

// countAlive 统计拥有指定组件的存活实体数量
func countAliveEnemies(em *ecs.EntityManager) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsAlive(id) {
			count++
		}
	}
	return count
}

func countParticles(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](em))
}
