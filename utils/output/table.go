// 观测数据展示层：文本表格、折线图与统计摘要
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/F1-Guy/intersection-simulator/entity"
)

// boolAsInt 信号灯状态的表格表示（1为绿灯，0为红灯）
func boolAsInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// classLabels 生成指定类别车道的列名（Bikes 1、Bikes 2、…）
func classLabels(rows []entity.ObservationRow, class entity.LaneClass, prefix string) []string {
	if len(rows) == 0 {
		return nil
	}
	labels := make([]string, 0)
	for i := range rows[0].ByClass(class) {
		labels = append(labels, fmt.Sprintf("%s %d", prefix, i+1))
	}
	return labels
}

// WriteTable 将观测数据写出为定宽文本表格
// 功能：每tick一行，列为自行车信号灯、各自行车道队列、机动车信号灯、各机动车道队列
// 参数：w-输出目标，rows-观测数据
// 说明：列顺序与原始数据中车道的配置顺序一致
func WriteTable(w io.Writer, rows []entity.ObservationRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "step\tbikelight\t")
	for _, label := range classLabels(rows, entity.LaneClassBike, "Bikes") {
		fmt.Fprintf(tw, "%s\t", label)
	}
	fmt.Fprint(tw, "carlight\t")
	for _, label := range classLabels(rows, entity.LaneClassCar, "Cars") {
		fmt.Fprintf(tw, "%s\t", label)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%d\t", row.Step, boolAsInt(row.SignalOf(entity.LaneClassBike)))
		for _, l := range row.ByClass(entity.LaneClassBike) {
			fmt.Fprintf(tw, "%d\t", l.QueueLength)
		}
		fmt.Fprintf(tw, "%d\t", boolAsInt(row.SignalOf(entity.LaneClassCar)))
		for _, l := range row.ByClass(entity.LaneClassCar) {
			fmt.Fprintf(tw, "%d\t", l.QueueLength)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
