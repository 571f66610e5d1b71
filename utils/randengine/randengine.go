// 随机数引擎，包装了golang.org/x/exp/rand，提供仿真所需的随机数生成方法
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：提供可复现的随机数生成，同一种子产生相同的随机序列
// 说明：基于golang.org/x/exp/rand库，泊松抽样由gonum的distuv实现
type Engine struct {
	*rand.Rand
	src rand.Source
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改配置的情况下调整随机数序列
func New(seed uint64) *Engine {
	src := rand.NewSource(seed + *seedOffset)
	return &Engine{Rand: rand.New(src), src: src}
}

// Poisson 按均值lambda抽取一个泊松分布随机数
// 功能：生成车道每tick的到达车辆数
// 参数：lambda-泊松均值，必须非负
// 返回：非负整数随机数；lambda为0时恒为0
func (e *Engine) Poisson(lambda float64) int {
	if lambda == 0 {
		return 0
	}
	p := distuv.Poisson{Lambda: lambda, Src: e.src}
	return int(p.Rand())
}
