package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG 解码注册
	"log"

	"github.com/gonewx/starblitz/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager 资源管理器
// 负责从嵌入文件系统加载图片和音效并缓存
//
// 资源加载失败属于非致命故障：图片加载失败返回 nil（渲染系统会
// 绘制占位矩形），音效加载失败只影响该音效的播放，模拟逻辑不受影响
type ResourceManager struct {
	audioContext *audio.Context // 音频上下文，可为 nil（无音频模式，用于测试）

	images      map[string]*ebiten.Image
	sounds      map[string]*audio.Player
	failedPaths map[string]bool // 已记录过失败日志的路径，避免每帧刷屏
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - audioContext: ebiten 音频上下文，可为 nil（此时所有音效加载均失败）
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		images:       make(map[string]*ebiten.Image),
		sounds:       make(map[string]*audio.Player),
		failedPaths:  make(map[string]bool),
	}
}

// LoadImage 从嵌入资源加载图片
//
// 参数：
//   - path: 资源路径，如 "assets/images/player.png"
//
// 返回：
//   - *ebiten.Image: 加载的图片
//   - error: 如果读取或解码失败返回错误信息
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.images[path]; ok {
		return img, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.images[path] = img
	return img, nil
}

// LoadImageOrNil 加载图片，失败时记录一次日志并返回 nil
// 调用方以 nil 图片触发占位矩形渲染（资源失败对玩家不可见，只降级视觉）
func (rm *ResourceManager) LoadImageOrNil(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err != nil {
		rm.logFailureOnce(path, err)
		return nil
	}
	return img
}

// LoadSound 从嵌入资源加载 WAV 音效并创建播放器
//
// 参数：
//   - path: 资源路径，如 "assets/sounds/shoot.wav"
//
// 返回：
//   - *audio.Player: 音效播放器
//   - error: 如果无音频上下文、读取或解码失败返回错误信息
func (rm *ResourceManager) LoadSound(path string) (*audio.Player, error) {
	if player, ok := rm.sounds[path]; ok {
		return player, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context, cannot load sound %s", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(rm.audioContext.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", path, err)
	}

	rm.sounds[path] = player
	return player, nil
}

// logFailureOnce 对同一路径只记录一次失败日志
func (rm *ResourceManager) logFailureOnce(path string, err error) {
	if rm.failedPaths[path] {
		return
	}
	rm.failedPaths[path] = true
	log.Printf("[ResourceManager] Warning: %v (falling back to placeholder)", err)
}
