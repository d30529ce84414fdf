package config

// SpawnIntervalForWave 返回指定波次的敌机生成间隔（秒）
// 随波次单调递减，下限 SpawnIntervalMin（波次1为1.4秒，波次10起到达下限）
func SpawnIntervalForWave(wave int) float64 {
	interval := SpawnIntervalBase - float64(wave)*SpawnIntervalStep
	if interval < SpawnIntervalMin {
		return SpawnIntervalMin
	}
	return interval
}

// FighterProbability 返回指定波次生成战斗机的概率，上限1.0
// 未命中概率时生成侦察机；旗舰从不由该概率选出
func FighterProbability(wave int) float64 {
	p := FighterProbBase + float64(wave)*FighterProbPerWave
	if p > 1.0 {
		return 1.0
	}
	return p
}
