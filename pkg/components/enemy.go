package components

// EnemyType 敌机类型
type EnemyType int

const (
	// EnemyScout 侦察机：体积小，1点血，直线下落并随机左右漂移
	EnemyScout EnemyType = iota
	// EnemyFighter 战斗机：中等体积，3点血，垂直下落
	EnemyFighter
	// EnemyBoss 旗舰：大体积，50点血，击毁后触发连锁反应并进入胜利流程
	EnemyBoss
)

// String 返回敌机类型的配置键名
func (t EnemyType) String() string {
	switch t {
	case EnemyScout:
		return "scout"
	case EnemyFighter:
		return "fighter"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyComponent 标识敌机实体并存储其类型与击毁得分
type EnemyComponent struct {
	Type       EnemyType // 敌机类型
	ScoreValue int       // 击毁后获得的分数
}
