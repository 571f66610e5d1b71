package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// log 配置模块的日志记录器
var log = logrus.WithField("module", "config")

// 内置默认值，在配置文件缺失或不完整时使用（时长单位为秒，sim_length为小时）
const (
	DefaultGreenCars  = 30  // 机动车绿灯时长
	DefaultGreenBikes = 10  // 自行车绿灯时长
	DefaultRedTimeAll = 10  // 全红时长
	DefaultSimLength  = 0.1 // 模拟时长（小时）
)

// ErrInvalidConfiguration 配置值非法（繁忙度非正、时长为负等）
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultLanes 内置默认车道集合
// 功能：返回2条机动车道+2条自行车道，繁忙度按(4-i)×0.1递减
func DefaultLanes() []LaneDescriptor {
	const laneCount = 4
	lanes := make([]LaneDescriptor, 0, laneCount)
	for i := 0; i < laneCount; i++ {
		typ := "car"
		if i >= laneCount/2 {
			typ = "bike"
		}
		lanes = append(lanes, LaneDescriptor{
			Type:     typ,
			Business: float64(laneCount-i) * 0.1,
		})
	}
	return lanes
}

// Load 读取配置文件
// 功能：从path读取YAML配置，文件缺失或解析失败时回退到内置默认值
// 参数：path-配置文件路径
// 返回：配置对象（总是可用，不会失败）
// 说明：读取和解析问题只产生告警日志并继续执行，取值合法性由NewRuntimeConfig检查
func Load(path string) Config {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("config file %q could not be read (%v), using built-in defaults", path, err)
		return Config{}
	}
	var c Config
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Warnf("config file %q is not properly formatted (%v), using built-in defaults", path, err)
		return Config{}
	}
	return c
}

// RuntimeConfig 运行时配置
// 功能：存储一次仿真运行期间不变的全部配置，包含推导出的周期长度与总步数
// 说明：由NewRuntimeConfig构造一次后只读，通过值传递给时钟、信号灯与仿真循环
type RuntimeConfig struct {
	GreenCars   int32   // 机动车绿灯时长
	GreenBikes  int32   // 自行车绿灯时长
	RedTimeAll  int32   // 全红时长（每周期应用两次）
	CycleLength int32   // 周期长度 = green_bikes + green_cars + 2×red_time_all
	SimLength   float64 // 模拟时长（小时）
	TotalSteps  int32   // 总步数 = floor(3600×sim_length)
	Seed        uint64  // 随机数种子

	Lanes []LaneDescriptor // 车道列表（配置顺序）
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：补全缺省字段、校验取值合法性并推导周期长度与总步数
// 参数：c-Load返回的配置对象
// 返回：运行时配置指针；取值非法时返回ErrInvalidConfiguration
// 算法说明：
// 1. 对缺省字段填入内置默认值，车道列表为空时使用默认车道集合
// 2. 校验：时长不得为负，周期长度必须为正，车道繁忙度必须为正
// 3. 推导：cycle_length、total_steps、随机数种子（缺省时取当前时间）
func NewRuntimeConfig(c Config) (*RuntimeConfig, error) {
	rc := &RuntimeConfig{
		GreenCars:  DefaultGreenCars,
		GreenBikes: DefaultGreenBikes,
		RedTimeAll: DefaultRedTimeAll,
		SimLength:  DefaultSimLength,
		Seed:       uint64(time.Now().UnixNano()),
	}
	if c.Control.GreenCars != nil {
		rc.GreenCars = *c.Control.GreenCars
	}
	if c.Control.GreenBikes != nil {
		rc.GreenBikes = *c.Control.GreenBikes
	}
	if c.Control.RedTimeAll != nil {
		rc.RedTimeAll = *c.Control.RedTimeAll
	}
	if c.Control.SimLength != nil {
		rc.SimLength = *c.Control.SimLength
	}
	if c.Control.Seed != nil {
		rc.Seed = *c.Control.Seed
	}

	if rc.GreenCars < 0 || rc.GreenBikes < 0 || rc.RedTimeAll < 0 {
		return nil, fmt.Errorf("%w: durations must be non-negative, got green_cars=%d green_bikes=%d red_time_all=%d",
			ErrInvalidConfiguration, rc.GreenCars, rc.GreenBikes, rc.RedTimeAll)
	}
	rc.CycleLength = rc.GreenBikes + rc.GreenCars + 2*rc.RedTimeAll
	if rc.CycleLength <= 0 {
		return nil, fmt.Errorf("%w: cycle length must be positive, got %d", ErrInvalidConfiguration, rc.CycleLength)
	}
	if rc.SimLength < 0 {
		return nil, fmt.Errorf("%w: sim_length must be non-negative, got %f", ErrInvalidConfiguration, rc.SimLength)
	}
	rc.TotalSteps = int32(3600 * rc.SimLength)

	rc.Lanes = c.Lanes
	if len(rc.Lanes) == 0 {
		log.Warn("no lanes in configuration, using default lane set")
		rc.Lanes = DefaultLanes()
	}
	for i, lane := range rc.Lanes {
		if lane.Type != "car" && lane.Type != "bike" {
			return nil, fmt.Errorf("%w: lane %d has unknown type %q (must be car or bike)",
				ErrInvalidConfiguration, i, lane.Type)
		}
		if lane.Business <= 0 {
			return nil, fmt.Errorf("%w: lane %d business must be positive, got %f",
				ErrInvalidConfiguration, i, lane.Business)
		}
	}
	return rc, nil
}
