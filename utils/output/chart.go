package output

import (
	"os"

	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// queueSeries 提取指定类别各车道的队列长度序列
func queueSeries(rows []entity.ObservationRow, class entity.LaneClass) [][]opts.LineData {
	if len(rows) == 0 {
		return nil
	}
	series := make([][]opts.LineData, len(rows[0].ByClass(class)))
	for _, row := range rows {
		for i, l := range row.ByClass(class) {
			series[i] = append(series[i], opts.LineData{Value: l.QueueLength})
		}
	}
	return series
}

// signalSeries 提取指定类别的信号灯状态序列（1为绿灯，0为红灯）
func signalSeries(rows []entity.ObservationRow, class entity.LaneClass) []opts.LineData {
	series := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		series = append(series, opts.LineData{Value: boolAsInt(row.SignalOf(class))})
	}
	return series
}

// RenderChart 将观测数据渲染为折线图HTML文件
// 功能：每条车道一条队列长度曲线，外加两条信号灯状态曲线
// 参数：path-输出文件路径，rows-观测数据
// 返回：文件创建或渲染失败时返回error
func RenderChart(path string, rows []entity.ObservationRow) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Intersection Simulation", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Length of the queue"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Amount of time passed since beginning"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of vehicles waiting"}),
	)

	steps := make([]int32, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, row.Step)
	}
	line.SetXAxis(steps)

	line.AddSeries("bikelight", signalSeries(rows, entity.LaneClassBike))
	for i, series := range queueSeries(rows, entity.LaneClassBike) {
		line.AddSeries(classLabels(rows, entity.LaneClassBike, "Bikes")[i], series)
	}
	line.AddSeries("carlight", signalSeries(rows, entity.LaneClassCar))
	for i, series := range queueSeries(rows, entity.LaneClassCar) {
		line.AddSeries(classLabels(rows, entity.LaneClassCar, "Cars")[i], series)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
