package game

import (
	"log"
)

// 音效资源ID
const (
	// SoundShoot 玩家射击音效
	SoundShoot = "SOUND_SHOOT"
	// SoundEnemyHit 子弹命中敌机音效
	SoundEnemyHit = "SOUND_ENEMY_HIT"
	// SoundExplosion 敌机爆炸音效
	SoundExplosion = "SOUND_EXPLOSION"
)

// soundPaths 音效资源ID到嵌入文件路径的映射
var soundPaths = map[string]string{
	SoundShoot:     "assets/sounds/shoot.wav",
	SoundEnemyHit:  "assets/sounds/enemy_hit.wav",
	SoundExplosion: "assets/sounds/explosion.wav",
}

// AudioManager 音频管理器
//
// 职责：
//   - 统一管理所有音效触发点（射击、命中、爆炸）
//   - 实现静音和主音量控制（从 SettingsManager 读取设置）
//
// 音效触发是"发射后不管"的：播放结果不回流到模拟逻辑，
// 音效缺失或播放失败只返回 false，不产生其他副作用
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于加载音频），可为 nil
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置），可为 nil
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件），可为 nil（无音频模式）
//   - sm: SettingsManager 实例（用于读取音量设置），可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（SoundShoot / SoundEnemyHit / SoundExplosion）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.resourceManager == nil {
		return false
	}

	if am.IsMuted() {
		return false
	}

	path, ok := soundPaths[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: unknown sound ID %q", soundID)
		return false
	}

	player, err := am.resourceManager.LoadSound(path)
	if err != nil {
		// 音效缺失是非致命故障，静默跳过（ResourceManager 已控制日志频率）
		am.resourceManager.logFailureOnce(path, err)
		return false
	}

	player.SetVolume(am.Volume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetMuted 设置静音开关并持久化
//
// 返回：
//   - bool: 设置后的静音状态
func (am *AudioManager) SetMuted(muted bool) bool {
	if am == nil || am.settingsManager == nil {
		return muted
	}
	am.settingsManager.SetMuted(muted)
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save mute setting: %v", err)
	}
	return am.settingsManager.GetSettings().Muted
}

// ToggleMuted 切换静音开关
//
// 返回：
//   - bool: 切换后的静音状态
func (am *AudioManager) ToggleMuted() bool {
	return am.SetMuted(!am.IsMuted())
}

// IsMuted 返回当前是否静音
func (am *AudioManager) IsMuted() bool {
	if am == nil || am.settingsManager == nil {
		return false
	}
	return am.settingsManager.GetSettings().Muted
}

// Volume 返回当前主音量 (0.0 ~ 1.0)
func (am *AudioManager) Volume() float64 {
	if am == nil || am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().SoundVolume
}
