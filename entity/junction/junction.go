package junction

import (
	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/entity/junction/trafficlight"
)

// Junction 路口实体
// 功能：表示被模拟的单个信号控制路口，持有进口车道与信号灯控制器
type Junction struct {
	ctx entity.ITaskContext

	lanes []entity.ILane
	light *trafficlight.FixedCycle
}

// New 创建路口实例
// 功能：初始化路口，将车道列表交给固定相位信号灯控制器
// 参数：ctx-任务上下文，lanes-进口车道列表
// 返回：初始化完成的路口实例
func New(ctx entity.ITaskContext, lanes []entity.ILane) *Junction {
	return &Junction{
		ctx:   ctx,
		lanes: lanes,
		light: trafficlight.NewFixedCycle(ctx.RuntimeConfig(), lanes),
	}
}

// Update 更新阶段，执行路口的信号灯控制逻辑
// 参数：tick-当前步数
// 说明：必须先于车道队列更新执行，本tick的放行依赖此处写入的信号灯状态
func (j *Junction) Update(tick int32) {
	j.light.Apply(tick)
}
