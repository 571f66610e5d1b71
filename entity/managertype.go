package entity

import "github.com/F1-Guy/intersection-simulator/utils/config"

// Manager依赖倒置

// entity/lane/lane.go的依赖倒置
type ILane interface {
	Class() LaneClass   // 车道类别
	Business() float64  // 每tick到达车辆数的泊松均值
	SignalGreen() bool  // 当前信号灯是否为绿灯
	SetSignal(green bool)
	QueueLength() int // 当前排队车辆数

	Update() // 更新阶段：到达+放行
}

// entity/lane/manager.go的依赖倒置
type ILaneManager interface {
	Init(descriptors []config.LaneDescriptor) error // 初始化

	Lanes() []ILane                  // 全部车道（配置顺序）
	ByClass(class LaneClass) []ILane // 指定类别的车道（配置顺序）

	Update() // 更新阶段

	Snapshot() []LaneSnapshot // 全部车道当前状态的快照（配置顺序）
}

// entity/junction/junction.go的依赖倒置
type IJunction interface {
	Update(tick int32) // 更新阶段：按tick应用信号灯相位切换
}
