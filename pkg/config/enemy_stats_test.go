package config

import "testing"

// TestDefaultEnemyStats 测试内置敌机属性表
func TestDefaultEnemyStats(t *testing.T) {
	config := DefaultEnemyStats()

	if config == nil {
		t.Fatal("DefaultEnemyStats() returned nil")
	}
	if len(config.Enemies) != 3 {
		t.Errorf("Expected 3 enemy types, got %d", len(config.Enemies))
	}

	tests := []struct {
		enemyType string
		width     float64
		height    float64
		health    int
		score     int
		speedY    float64
		driftX    float64
	}{
		{"scout", 40, 40, 1, 10, 150, 50},
		{"fighter", 50, 50, 3, 30, 80, 0},
		{"boss", 120, 100, 50, 500, 20, 0},
	}

	for _, tt := range tests {
		stats, ok := config.GetEnemyStats(tt.enemyType)
		if !ok {
			t.Errorf("Enemy type %q should exist", tt.enemyType)
			continue
		}
		if stats.Width != tt.width || stats.Height != tt.height {
			t.Errorf("%s size: got %gx%g, want %gx%g",
				tt.enemyType, stats.Width, stats.Height, tt.width, tt.height)
		}
		if stats.Health != tt.health {
			t.Errorf("%s health: got %d, want %d", tt.enemyType, stats.Health, tt.health)
		}
		if stats.Score != tt.score {
			t.Errorf("%s score: got %d, want %d", tt.enemyType, stats.Score, tt.score)
		}
		if stats.SpeedY != tt.speedY {
			t.Errorf("%s speedY: got %g, want %g", tt.enemyType, stats.SpeedY, tt.speedY)
		}
		if stats.DriftSpeedX != tt.driftX {
			t.Errorf("%s driftSpeedX: got %g, want %g", tt.enemyType, stats.DriftSpeedX, tt.driftX)
		}
	}
}

// TestGetEnemyStatsUnknownType 测试查询不存在的敌机类型
func TestGetEnemyStatsUnknownType(t *testing.T) {
	config := DefaultEnemyStats()

	stats, ok := config.GetEnemyStats("mothership")
	if ok {
		t.Error("Unknown enemy type should not be found")
	}
	if stats != nil {
		t.Error("Unknown enemy type should return nil stats")
	}
}

// TestValidateEnemyStatsMissingRequired 测试缺少必需敌机类型时校验失败
func TestValidateEnemyStatsMissingRequired(t *testing.T) {
	config := &EnemyStatsConfig{
		Enemies: map[string]EnemyStats{
			"scout": {Width: 40, Height: 40, Health: 1, Score: 10, SpeedY: 150},
		},
	}

	if err := validateEnemyStats(config); err == nil {
		t.Error("Validation should fail when fighter and boss are missing")
	}
}

// TestValidateEnemyStatsInvalidValues 测试非法属性值被拒绝
func TestValidateEnemyStatsInvalidValues(t *testing.T) {
	base := func() *EnemyStatsConfig {
		return DefaultEnemyStats()
	}

	// 尺寸必须为正
	cfg := base()
	s := cfg.Enemies["scout"]
	s.Width = 0
	cfg.Enemies["scout"] = s
	if err := validateEnemyStats(cfg); err == nil {
		t.Error("Zero width should fail validation")
	}

	// 生命值至少为1
	cfg = base()
	s = cfg.Enemies["fighter"]
	s.Health = 0
	cfg.Enemies["fighter"] = s
	if err := validateEnemyStats(cfg); err == nil {
		t.Error("Zero health should fail validation")
	}

	// 下落速度必须为正
	cfg = base()
	s = cfg.Enemies["boss"]
	s.SpeedY = -20
	cfg.Enemies["boss"] = s
	if err := validateEnemyStats(cfg); err == nil {
		t.Error("Negative speedY should fail validation")
	}
}

// TestLoadEnemyStatsOrDefaultFallback 测试配置不可用时回退到内置表
// 嵌入资源未初始化时读取必然失败，应降级而不是报错
func TestLoadEnemyStatsOrDefaultFallback(t *testing.T) {
	config := LoadEnemyStatsOrDefault("assets/config/nonexistent.yaml")

	if config == nil {
		t.Fatal("LoadEnemyStatsOrDefault should never return nil")
	}
	if _, ok := config.GetEnemyStats("boss"); !ok {
		t.Error("Fallback config should contain the boss type")
	}
}
