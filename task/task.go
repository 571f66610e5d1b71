package task

import (
	"github.com/F1-Guy/intersection-simulator/clock"
	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/entity/junction"
	"github.com/F1-Guy/intersection-simulator/entity/lane"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/F1-Guy/intersection-simulator/utils/randengine"
	"github.com/sirupsen/logrus"
)

// log 仿真任务模块的日志记录器
var log = logrus.WithField("module", "task")

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代全局变量
// 说明：管理时钟、随机数引擎、车道管理器、路口与观测数据
type Context struct {
	// 时钟
	clock *clock.Clock
	// 随机数引擎
	engine *randengine.Engine
	// Lane管理器
	laneManager entity.ILaneManager
	// 被模拟的路口
	junction entity.IJunction
	// 运行时配置
	runtimeConfig *config.RuntimeConfig

	// 观测数据，每tick一行
	observations []entity.ObservationRow
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件和配置
// 参数：c-配置对象
// 返回：初始化完成的Context实例；配置取值非法时返回error
// 算法说明：
// 1. 构造运行时配置并完成全部取值校验（此后运行阶段不再产生错误）
// 2. 创建时钟与随机数引擎
// 3. 根据配置创建所有车道
// 4. 创建路口并绑定固定相位信号灯
func NewContext(c config.Config) (*Context, error) {
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		runtimeConfig: rc,
	}
	ctx.clock = clock.New(rc)
	ctx.engine = randengine.New(rc.Seed)

	laneManager := lane.NewManager(ctx)
	if err := laneManager.Init(rc.Lanes); err != nil {
		return nil, err
	}
	ctx.laneManager = laneManager
	ctx.junction = junction.New(ctx, laneManager.Lanes())
	return ctx, nil
}

// Clock 获取时钟
func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

// Engine 获取随机数引擎
func (ctx *Context) Engine() entity.IEngine {
	return ctx.engine
}

// LaneManager 获取Lane管理器
func (ctx *Context) LaneManager() entity.ILaneManager {
	return ctx.laneManager
}

// RuntimeConfig 获取运行时配置
func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Observations 获取已记录的观测数据（每tick一行）
func (ctx *Context) Observations() []entity.ObservationRow {
	return ctx.observations
}
