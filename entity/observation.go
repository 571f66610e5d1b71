package entity

// LaneSnapshot 单条车道在某一tick的状态快照
type LaneSnapshot struct {
	Class       LaneClass // 车道类别
	SignalGreen bool      // 信号灯状态
	QueueLength int       // 排队车辆数
}

// ObservationRow 仿真输出的观测行
// 功能：记录某一tick所有车道的状态，每tick一行
// 说明：仅保存结构化的逐车道记录，列名与排版由展示层决定
type ObservationRow struct {
	Step  int32          // tick编号，从0开始
	Lanes []LaneSnapshot // 全部车道快照（配置顺序）
}

// ByClass 获取指定类别的车道快照（保持配置顺序）
func (r ObservationRow) ByClass(class LaneClass) []LaneSnapshot {
	out := make([]LaneSnapshot, 0, len(r.Lanes))
	for _, l := range r.Lanes {
		if l.Class == class {
			out = append(out, l)
		}
	}
	return out
}

// SignalOf 获取指定类别的信号灯状态（取该类别的第一条车道）
// 返回：信号灯状态；该类别没有车道时返回false
func (r ObservationRow) SignalOf(class LaneClass) bool {
	for _, l := range r.Lanes {
		if l.Class == class {
			return l.SignalGreen
		}
	}
	return false
}
