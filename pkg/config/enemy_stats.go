package config

import (
	"fmt"
	"log"

	"github.com/gonewx/starblitz/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌机类型的属性配置
type EnemyStats struct {
	Width       float64 `yaml:"width"`       // 碰撞盒宽度（像素）
	Height      float64 `yaml:"height"`      // 碰撞盒高度（像素）
	Health      int     `yaml:"health"`      // 生命值
	Score       int     `yaml:"score"`       // 击毁得分
	SpeedY      float64 `yaml:"speedY"`      // 垂直下落速度（像素/秒）
	DriftSpeedX float64 `yaml:"driftSpeedX"` // 水平漂移速度绝对值（像素/秒），0表示不漂移
}

// EnemyStatsConfig 敌机属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌机类型键名到属性的映射
}

// DefaultEnemyStats 返回内置的敌机属性表
// 与 assets/config/enemies.yaml 内容一致，
// 在配置文件缺失或损坏时作为降级路径（资源失败不致命）
func DefaultEnemyStats() *EnemyStatsConfig {
	return &EnemyStatsConfig{
		Enemies: map[string]EnemyStats{
			"scout":   {Width: 40, Height: 40, Health: 1, Score: 10, SpeedY: 150, DriftSpeedX: 50},
			"fighter": {Width: 50, Height: 50, Health: 3, Score: 30, SpeedY: 80, DriftSpeedX: 0},
			"boss":    {Width: 120, Height: 100, Health: 50, Score: 500, SpeedY: 20, DriftSpeedX: 0},
		},
	}
}

// LoadEnemyStats 从嵌入的 YAML 文件加载敌机属性配置
//
// 参数：
//
//	filepath - 配置文件路径，如 "assets/config/enemies.yaml"
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// LoadEnemyStatsOrDefault 加载敌机属性配置，失败时回退到内置默认表
// 配置缺失属于资源类故障：记录日志后降级，不影响模拟逻辑
func LoadEnemyStatsOrDefault(filepath string) *EnemyStatsConfig {
	config, err := LoadEnemyStats(filepath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in enemy stats)", err)
		return DefaultEnemyStats()
	}
	log.Printf("[Config] 加载敌机属性配置: %s (%d 种类型)", filepath, len(config.Enemies))
	return config
}

// validateEnemyStats 验证敌机属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	required := []string{"scout", "fighter", "boss"}
	for _, key := range required {
		if _, ok := config.Enemies[key]; !ok {
			return fmt.Errorf("enemy type %q is required", key)
		}
	}

	for enemyType, stats := range config.Enemies {
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %gx%g", enemyType, stats.Width, stats.Height)
		}
		if stats.Health < 1 {
			return fmt.Errorf("enemy %s: health must be at least 1, got %d", enemyType, stats.Health)
		}
		if stats.Score < 0 {
			return fmt.Errorf("enemy %s: score cannot be negative, got %d", enemyType, stats.Score)
		}
		if stats.SpeedY <= 0 {
			return fmt.Errorf("enemy %s: speedY must be positive, got %g", enemyType, stats.SpeedY)
		}
		if stats.DriftSpeedX < 0 {
			return fmt.Errorf("enemy %s: driftSpeedX cannot be negative, got %g", enemyType, stats.DriftSpeedX)
		}
	}

	return nil
}

// GetEnemyStats 获取指定敌机类型的完整属性
// 如果类型不存在，返回 nil 和 false
func (c *EnemyStatsConfig) GetEnemyStats(enemyType string) (*EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	if !ok {
		return nil, false
	}
	return &stats, true
}
