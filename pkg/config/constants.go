// Package config 提供游戏常量和数据驱动的配置加载
package config

// 屏幕与竞技场尺寸
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 800
	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 600
)

// 玩家飞船参数
const (
	// PlayerWidth 玩家飞船宽度（像素）
	PlayerWidth = 50.0
	// PlayerHeight 玩家飞船高度（像素）
	PlayerHeight = 40.0
	// PlayerMoveSpeed 玩家移动速度（像素/秒）
	// 对角移动不做归一化，斜向速度为 √2 倍（刻意保留的街机手感）
	PlayerMoveSpeed = 300.0
	// PlayerMaxHealth 玩家最大生命值
	PlayerMaxHealth = 100
	// PlayerFireInterval 射击间隔（秒）
	PlayerFireInterval = 0.25
	// PlayerStartOffsetY 出生点距屏幕底边的距离（像素）
	PlayerStartOffsetY = 80.0
	// AutoPilotDeadband 自动驾驶水平对准容差（像素）
	// 目标水平距离进入 ±AutoPilotDeadband 内时停止移动
	AutoPilotDeadband = 10.0
)

// 子弹参数
const (
	// ProjectileWidth 子弹宽度（像素）
	ProjectileWidth = 5.0
	// ProjectileHeight 子弹高度（像素）
	ProjectileHeight = 15.0
	// ProjectileSpeed 子弹垂直速度（像素/秒），负值向上
	ProjectileSpeed = -500.0
	// ProjectileDamage 子弹单次命中伤害（与敌机类型无关）
	ProjectileDamage = 1
)

// 碰撞判定
const (
	// CollisionMarginRatio 碰撞盒每边向内收缩的比例（宽容判定）
	// 两个碰撞盒都收缩后再做 AABB 相交测试，边缘相触不算碰撞
	CollisionMarginRatio = 0.1
	// EnemyContactDamage 敌机撞击玩家造成的伤害
	EnemyContactDamage = 20
)

// 波次与生成规则
const (
	// SpawnIntervalBase 生成间隔基准值（秒）
	SpawnIntervalBase = 1.5
	// SpawnIntervalStep 每波生成间隔递减量（秒）
	SpawnIntervalStep = 0.1
	// SpawnIntervalMin 生成间隔下限（秒）
	SpawnIntervalMin = 0.5
	// FighterProbBase 战斗机生成概率基准
	FighterProbBase = 0.3
	// FighterProbPerWave 战斗机生成概率每波增量
	FighterProbPerWave = 0.05
	// WaveScoreStep 进入下一波所需分数步长（score > wave*WaveScoreStep 时升波）
	WaveScoreStep = 500
	// BossWaveInterval 每隔多少波尝试生成一次旗舰
	BossWaveInterval = 5
)

// 粒子爆炸参数
const (
	// ParticleDecayRate 粒子生命衰减速率（相对现实时间的倍数）
	ParticleDecayRate = 2.0
	// StandardBurstCount 普通敌机爆炸粒子数
	StandardBurstCount = 15
	// SmallBurstCount 敌机撞击玩家时的小型爆炸粒子数
	SmallBurstCount = 8
	// BossBurstCount 旗舰爆炸粒子数（更大、带主题色）
	BossBurstCount = 40
	// ChainBurstCount 连锁反应中每架敌机的爆炸粒子数
	ChainBurstCount = 20
)

// 延迟事件参数
const (
	// ChainStaggerDelay 连锁反应相邻敌机之间的引爆间隔（秒）
	ChainStaggerDelay = 0.1
	// VictoryDelay 旗舰击毁到进入胜利状态的延迟（秒）
	VictoryDelay = 2.0
)

// 背景滚动
const (
	// BackgroundScrollSpeed 星空背景滚动速度（像素/秒）
	BackgroundScrollSpeed = 60.0
)
