// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：创建音频上下文、设置存储、
// 资源与音频管理器，并把模拟场景接入 ebiten 的帧循环。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/scenes"
	"github.com/gonewx/starblitz/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 存储应用名，决定设置文件在各平台的存放目录
const storageAppName = "starblitz"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// CheatMode 启动时开启自动驾驶（作弊模式）
	CheatMode bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 每帧的 deltaTime 取自与上一次 tick 的真实时钟间隔。
// Update 外层包裹单一的致命错误边界：帧内任何未处理的 panic 被转换
// 为错误返回，ebiten 停止循环并上报，不做部分状态恢复
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	lastTick time.Time // 上一帧时刻，零值表示尚未开始

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 设置存储：打开失败进入降级模式（仅内存设置），不阻止启动
	gdataManager := openGdata()
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings manager degraded: %v", err)
	}

	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)

	// 创建模拟场景并接入场景管理器
	gameScene := scenes.NewGameScene(resourceManager, audioManager, settingsManager,
		utils.NewKeyboardInput(), cfg.CheatMode)
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if settingsManager != nil && settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Initialized (cheat=%v)", cfg.CheatMode)
	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，deltaTime 为与上一次 tick 的真实时钟间隔（秒）
func (a *App) Update() (err error) {
	// 单一致命错误边界：帧内 panic 转换为错误，循环停止并上报
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fatal error in frame update: %v", r)
		}
	}()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	now := time.Now()
	deltaTime := 0.0
	if !a.lastTick.IsZero() {
		deltaTime = now.Sub(a.lastTick).Seconds()
	}
	a.lastTick = now

	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// openGdata 打开跨平台设置存储
// 打开失败返回 nil，上层进入降级模式（设置不持久化）
func openGdata() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: storageAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: failed to open data storage: %v", err)
		return nil
	}
	return manager
}
