package scenes

import (
	"fmt"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw 绘制世界、HUD 和状态覆盖层
// 渲染只消费模拟状态，不产生任何回流
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.gameState.RunStarted() {
		s.drawHUD(screen)
	}
	s.drawStateOverlay(screen)
}

// drawHUD 绘制分数、波次和生命值
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	hp, maxHP := s.playerHealth()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE %d", s.gameState.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("WAVE %d", s.gameState.Wave), 8, 24)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HP %d/%d", hp, maxHP), 8, 40)

	if s.gameState.Cheat {
		ebitenutil.DebugPrintAt(screen, "AUTOPILOT", config.ScreenWidth-80, 8)
	}
	if s.audioManager.IsMuted() {
		ebitenutil.DebugPrintAt(screen, "MUTED", config.ScreenWidth-80, 24)
	}
}

// drawStateOverlay 按运行状态绘制全屏提示
func (s *GameScene) drawStateOverlay(screen *ebiten.Image) {
	centerX := config.ScreenWidth/2 - 60
	centerY := config.ScreenHeight / 2

	switch s.gameState.State {
	case game.StateMenu:
		ebitenutil.DebugPrintAt(screen, "== STARBLITZ ==", centerX, centerY-24)
		ebitenutil.DebugPrintAt(screen, "ENTER: start", centerX, centerY)
		ebitenutil.DebugPrintAt(screen, "C: autopilot  M: mute", centerX, centerY+16)
	case game.StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", centerX, centerY)
		ebitenutil.DebugPrintAt(screen, "P: resume  Q: menu", centerX, centerY+16)
	case game.StateVictory:
		ebitenutil.DebugPrintAt(screen, "VICTORY!", centerX, centerY)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("final score: %d", s.gameState.Score), centerX, centerY+16)
		ebitenutil.DebugPrintAt(screen, "ENTER: restart  Q: menu", centerX, centerY+32)
	case game.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", centerX, centerY)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("final score: %d", s.gameState.Score), centerX, centerY+16)
		ebitenutil.DebugPrintAt(screen, "ENTER: retry  Q: menu", centerX, centerY+32)
	}
}

// playerHealth 返回玩家当前/最大生命值，玩家不存在时返回 0/0
func (s *GameScene) playerHealth() (int, int) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent,
		*components.HealthComponent](s.entityManager)
	if len(players) == 0 {
		return 0, 0
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, players[0])
	if !ok {
		return 0, 0
	}
	return health.CurrentHealth, health.MaxHealth
}
