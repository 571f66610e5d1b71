package trafficlight

import (
	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/utils/config"
)

// FixedCycle 固定相位信号灯控制器
// 功能：实现四相位固定周期的信号控制，按照tick在周期内的偏移量
// 在确定的边界上切换对应类别车道的信号灯状态
// 说明：无内部状态，任意tick的相位可由tick mod cycle_length单独推导，
// 同一tick重复应用与跨周期应用结果一致
type FixedCycle struct {
	greenBikes  int32 // 自行车绿灯时长
	greenCars   int32 // 机动车绿灯时长
	redTimeAll  int32 // 全红时长
	cycleLength int32 // 周期长度

	lanes []entity.ILane // 受控车道
}

// NewFixedCycle 创建固定相位信号灯控制器
// 功能：初始化控制器，记录周期参数与受控车道
// 参数：rc-运行时配置（周期参数已在构造时校验），lanes-受控车道列表
// 返回：初始化完成的控制器实例
func NewFixedCycle(rc *config.RuntimeConfig, lanes []entity.ILane) *FixedCycle {
	return &FixedCycle{
		greenBikes:  rc.GreenBikes,
		greenCars:   rc.GreenCars,
		redTimeAll:  rc.RedTimeAll,
		cycleLength: rc.CycleLength,
		lanes:       lanes,
	}
}

// setClass 设置指定类别所有车道的信号灯状态
// 说明：其余类别的车道在该边界上保持不变
func (f *FixedCycle) setClass(class entity.LaneClass, green bool) {
	for _, l := range f.lanes {
		if l.Class() == class {
			l.SetSignal(green)
		}
	}
}

// Apply 按tick应用相位切换
// 功能：在相位边界上切换对应类别车道的信号灯，非边界tick不做任何修改
// 参数：tick-当前步数
// 算法说明（phaseTick = tick mod cycle_length）：
//
//	0                                        → 机动车红灯，自行车绿灯
//	green_bikes                              → 自行车红灯（全红开始）
//	green_bikes + red_time_all               → 机动车绿灯
//	green_bikes + red_time_all + green_cars  → 机动车红灯（全红开始）
func (f *FixedCycle) Apply(tick int32) {
	phaseTick := tick % f.cycleLength

	switch phaseTick {
	case 0:
		f.setClass(entity.LaneClassCar, false)
		f.setClass(entity.LaneClassBike, true)
	case f.greenBikes:
		f.setClass(entity.LaneClassBike, false)
	case f.greenBikes + f.redTimeAll:
		f.setClass(entity.LaneClassCar, true)
	case f.greenBikes + f.redTimeAll + f.greenCars:
		f.setClass(entity.LaneClassCar, false)
	}
}

// CycleLength 获取周期长度
func (f *FixedCycle) CycleLength() int32 {
	return f.cycleLength
}
