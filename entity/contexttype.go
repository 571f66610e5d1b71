package entity

import (
	"github.com/F1-Guy/intersection-simulator/clock"
	"github.com/F1-Guy/intersection-simulator/utils/config"
)

// 随机数引擎接口（依赖倒置，便于测试中固定到达数）
type IEngine interface {
	// 按均值lambda抽取一个泊松分布随机数
	Poisson(lambda float64) int
}

type ITaskContext interface {
	Clock() *clock.Clock
	Engine() IEngine
	LaneManager() ILaneManager
	RuntimeConfig() *config.RuntimeConfig
}
