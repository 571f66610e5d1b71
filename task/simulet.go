package task

import (
	"flag"

	"github.com/F1-Guy/intersection-simulator/entity"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：在每个仿真步骤开始时输出心跳日志
// 说明：定期输出当前步数与仿真时间，便于长时间运行时观察进度
func (ctx *Context) prepare() {
	if ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f)",
			ctx.clock.InternalStep,
			hour, minute, second,
		)
	}
}

// update 更新阶段，每步执行一次
// 功能：在每个仿真步骤中执行主要的仿真逻辑
// 算法说明：
// 1. 路口更新：在相位边界上切换车道信号灯
// 2. 车道更新：依次执行每条车道的队列更新（到达+放行）
// 3. 观测记录：将所有车道的当前状态快照为一行观测数据
// 说明：三个子阶段必须按序执行，车道的放行量依赖本tick写入的信号灯状态
func (ctx *Context) update() {
	ctx.junction.Update(ctx.clock.InternalStep)
	ctx.laneManager.Update()
	ctx.observations = append(ctx.observations, entity.ObservationRow{
		Step:  ctx.clock.InternalStep,
		Lanes: ctx.laneManager.Snapshot(),
	})
}

// Run 运行
// 功能：执行整个仿真循环，逐tick推进直到结束步
// 返回：完整的观测数据序列，每tick一行
// 说明：循环本身不会失败，所有可能出错的检查都在NewContext中完成
func (ctx *Context) Run() []entity.ObservationRow {
	ctx.clock.Init()
	ctx.observations = make([]entity.ObservationRow, 0, ctx.clock.END_STEP-ctx.clock.START_STEP)
	log.Infof("running simulation for %d steps (cycle length %d)",
		ctx.clock.END_STEP-ctx.clock.START_STEP, ctx.runtimeConfig.CycleLength)
	for ctx.clock.InternalStep < ctx.clock.END_STEP {
		ctx.prepare()
		ctx.update()
		ctx.clock.InternalStep++
		ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT
	}
	log.Infof("engine complete")
	return ctx.observations
}
