// Package utils 提供通用工具：逻辑输入动作抽象等
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 逻辑输入动作
// 模拟核心只关心"某个逻辑动作是否激活"，不关心具体按键
type Action int

const (
	// ActionMoveLeft 向左移动
	ActionMoveLeft Action = iota
	// ActionMoveRight 向右移动
	ActionMoveRight
	// ActionMoveUp 向上移动
	ActionMoveUp
	// ActionMoveDown 向下移动
	ActionMoveDown
	// ActionFire 开火
	ActionFire
	// ActionStart 开始/重新开始
	ActionStart
	// ActionPause 暂停切换（边沿触发）
	ActionPause
	// ActionMute 静音切换（边沿触发）
	ActionMute
	// ActionAutoPilot 自动驾驶切换（边沿触发）
	ActionAutoPilot
	// ActionQuit 退出到主菜单（边沿触发）
	ActionQuit
)

// InputProvider 输入源接口
// 系统通过该接口查询逻辑动作状态，测试中可注入伪实现
type InputProvider interface {
	// IsActionActive 返回逻辑动作当前是否处于激活（按住）状态
	IsActionActive(action Action) bool
	// IsActionJustPressed 返回逻辑动作是否在本帧刚刚被按下
	// 用于暂停/静音/自动驾驶等不可重复触发的开关，每次按键只触发一次
	IsActionJustPressed(action Action) bool
}

// actionKeys 逻辑动作到物理按键的映射，方向键和 WASD 同时可用
var actionKeys = map[Action][]ebiten.Key{
	ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	ActionMoveUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	ActionMoveDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	ActionFire:      {ebiten.KeySpace, ebiten.KeyJ},
	ActionStart:     {ebiten.KeyEnter, ebiten.KeySpace},
	ActionPause:     {ebiten.KeyP, ebiten.KeyEscape},
	ActionMute:      {ebiten.KeyM},
	ActionAutoPilot: {ebiten.KeyC},
	ActionQuit:      {ebiten.KeyQ},
}

// KeyboardInput 基于键盘的输入源实现
type KeyboardInput struct{}

// NewKeyboardInput 创建键盘输入源
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// IsActionActive 返回动作对应的任一按键是否被按住
func (k *KeyboardInput) IsActionActive(action Action) bool {
	for _, key := range actionKeys[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// IsActionJustPressed 返回动作对应的任一按键是否刚刚被按下
func (k *KeyboardInput) IsActionJustPressed(action Action) bool {
	for _, key := range actionKeys[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
