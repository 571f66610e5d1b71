package lane

import (
	"github.com/F1-Guy/intersection-simulator/entity"
)

// Lane 车道实体
// 功能：表示路口的一条进口车道，维护信号灯状态与排队车辆数，
// 并实现每tick的队列更新规则（随机到达+信号门控放行）
type Lane struct {
	ctx entity.ITaskContext

	class    entity.LaneClass // 车道类别
	business float64          // 每tick到达车辆数的泊松均值

	signalGreen bool // 信号灯状态，true为绿灯，仅由信号灯控制器在相位边界修改
	queueLength int  // 排队车辆数，不变式：恒为非负
}

// newLane 创建并初始化一个新的Lane实例
// 功能：根据类别与繁忙度创建车道，初始状态为红灯、空队列
// 参数：ctx-任务上下文，class-车道类别，business-泊松均值
// 说明：繁忙度的合法性（必须为正）由配置层在构造前校验
func newLane(ctx entity.ITaskContext, class entity.LaneClass, business float64) *Lane {
	return &Lane{
		ctx:      ctx,
		class:    class,
		business: business,
	}
}

// Class 获取车道类别
func (l *Lane) Class() entity.LaneClass {
	return l.class
}

// Business 获取车道繁忙度（每tick到达车辆数的泊松均值）
func (l *Lane) Business() float64 {
	return l.business
}

// SignalGreen 获取当前信号灯状态
func (l *Lane) SignalGreen() bool {
	return l.signalGreen
}

// SetSignal 设置信号灯状态
// 说明：仅由信号灯控制器在相位边界调用，每tick至多一次
func (l *Lane) SetSignal(green bool) {
	l.signalGreen = green
}

// QueueLength 获取当前排队车辆数
func (l *Lane) QueueLength() int {
	return l.queueLength
}

// Update 更新阶段，执行每tick的队列更新规则
// 功能：先按泊松分布加入新到达车辆，再在绿灯且队列非空时放行
// 算法说明：
// 1. 到达：queue += Poisson(business)，红灯时同样累积
// 2. 放行：绿灯且queue>0时减去类别放行量（Car为1，Bike为2）
// 3. 自行车道queue==1时只放行1辆，防止成对放行导致队列为负
// 说明：必须在本tick的信号灯相位切换之后调用
func (l *Lane) Update() {
	l.queueLength += l.ctx.Engine().Poisson(l.business)

	if l.signalGreen && l.queueLength > 0 {
		if l.class == entity.LaneClassBike && l.queueLength == 1 {
			l.queueLength--
		} else {
			l.queueLength -= l.class.DischargeRate()
		}
	}
}

// Snapshot 生成车道当前状态的快照
func (l *Lane) Snapshot() entity.LaneSnapshot {
	return entity.LaneSnapshot{
		Class:       l.class,
		SignalGreen: l.signalGreen,
		QueueLength: l.queueLength,
	}
}
