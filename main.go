package main

import (
	"flag"
	"log"

	"github.com/gonewx/starblitz/pkg/app"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	cheat := flag.Bool("cheat", false, "启动时开启自动驾驶（作弊模式）")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS)

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		CheatMode: *cheat,
	})
	if err != nil {
		log.Fatalf("[Main] 应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("星际突击 StarBlitz")

	// 启动游戏主循环
	// Update/Draw 会被反复调用，直到窗口关闭或帧更新返回致命错误
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("[Main] 游戏循环异常终止: %v", err)
	}
}
