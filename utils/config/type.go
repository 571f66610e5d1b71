package config

// LaneDescriptor 单条车道的配置项
// 功能：定义一条车道的类别与繁忙度
// 说明：business为每tick到达车辆数的泊松均值，必须为正
type LaneDescriptor struct {
	Type     string  `yaml:"type"`     // 车道类别（car或bike）
	Business float64 `yaml:"business"` // 每tick到达车辆数的泊松均值
}

// Control 模拟器控制配置
// 功能：定义信号灯周期与模拟时长的核心控制参数
// 说明：时长单位为秒（tick），sim_length单位为小时；缺省字段采用内置默认值
type Control struct {
	GreenCars  *int32   `yaml:"green_cars,omitempty"`   // 机动车绿灯时长
	GreenBikes *int32   `yaml:"green_bikes,omitempty"`  // 自行车绿灯时长
	RedTimeAll *int32   `yaml:"red_time_all,omitempty"` // 全红时长（每周期应用两次）
	SimLength  *float64 `yaml:"sim_length,omitempty"`   // 模拟时长（小时）
	Seed       *uint64  `yaml:"seed,omitempty"`         // 随机数种子，缺省时取当前时间
}

// Config YAML配置文件的根结构
type Config struct {
	Control Control          `yaml:"control"` // 模拟过程控制
	Lanes   []LaneDescriptor `yaml:"lanes"`   // 车道列表
}
