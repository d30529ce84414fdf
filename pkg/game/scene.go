package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// 返回非 nil 错误表示帧更新发生致命故障，宿主循环会停止并上报
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
