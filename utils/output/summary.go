package output

import (
	"github.com/F1-Guy/intersection-simulator/entity"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LaneSummary 单条车道的全程统计摘要
type LaneSummary struct {
	Label string  // 车道列名（如Cars 1）
	Mean  float64 // 平均排队车辆数
	Max   float64 // 最大排队车辆数
}

// Summarize 计算每条车道的全程队列统计
// 功能：对每条车道的队列长度序列计算均值与最大值
// 参数：rows-观测数据
// 返回：车道统计列表，顺序为先自行车道后机动车道（各自保持配置顺序）
func Summarize(rows []entity.ObservationRow) []LaneSummary {
	summaries := make([]LaneSummary, 0)
	for _, class := range []entity.LaneClass{entity.LaneClassBike, entity.LaneClassCar} {
		prefix := "Bikes"
		if class == entity.LaneClassCar {
			prefix = "Cars"
		}
		labels := classLabels(rows, class, prefix)
		for i, series := range queueSeries(rows, class) {
			qs := make([]float64, 0, len(series))
			for _, d := range series {
				qs = append(qs, float64(d.Value.(int)))
			}
			summaries = append(summaries, LaneSummary{
				Label: labels[i],
				Mean:  stat.Mean(qs, nil),
				Max:   floats.Max(qs),
			})
		}
	}
	return summaries
}
