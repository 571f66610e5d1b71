package entity

import "fmt"

// LaneClass 车道通行类别
// 功能：区分机动车道与自行车道，并决定绿灯时每tick放行的车辆数
// 说明：封闭枚举，分类与放行量分离（放行量由DischargeRate查表获得）
type LaneClass int32

const (
	LaneClassCar  LaneClass = iota // 机动车道
	LaneClassBike                  // 自行车道
)

// 每tick放行车辆数（绿灯且队列非空时）
var dischargeRates = map[LaneClass]int{
	LaneClassCar:  1,
	LaneClassBike: 2,
}

// DischargeRate 获取该类别绿灯时每tick的放行车辆数
func (c LaneClass) DischargeRate() int {
	if rate, ok := dischargeRates[c]; ok {
		return rate
	}
	log.Panicf("bad lane class %d", c)
	return 0
}

// String 获取类别的字符串表示（与配置文件中的取值一致）
func (c LaneClass) String() string {
	switch c {
	case LaneClassCar:
		return "car"
	case LaneClassBike:
		return "bike"
	default:
		return fmt.Sprintf("LaneClass(%d)", c)
	}
}

// ParseLaneClass 解析配置文件中的类别字符串
// 参数：s-类别字符串（car或bike）
// 返回：对应的LaneClass，未知取值时返回error
func ParseLaneClass(s string) (LaneClass, error) {
	switch s {
	case "car":
		return LaneClassCar, nil
	case "bike":
		return LaneClassBike, nil
	default:
		return 0, fmt.Errorf("unknown lane class %q (must be car or bike)", s)
	}
}
