package main

import (
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/F1-Guy/intersection-simulator/task"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/F1-Guy/intersection-simulator/utils/output"
	"github.com/sirupsen/logrus"
)

var (
	// 配置文件路径，文件缺失或格式错误时使用内置默认值
	configPath = flag.String("config", "config.yml", "config file path")
	// 折线图输出路径，设置为空则不输出图表
	chartPath = flag.String("chart", "queue.html", "queue chart output path (empty means disable chart)")
	// 是否将观测数据表格写到标准输出
	printTable = flag.Bool("table", false, "print the observation table to stdout")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "main")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	// 获取配置，缺失或格式错误时回退到内置默认值
	log.Infof("reading configuration file %s", *configPath)
	c := config.Load(*configPath)

	// 构建仿真任务，配置取值非法时在运行前失败
	ctx, err := task.NewContext(c)
	if err != nil {
		log.Panicf("context create err: %v", err)
	}

	// 运行仿真
	rows := ctx.Run()

	// 输出
	if *printTable {
		if err := output.WriteTable(os.Stdout, rows); err != nil {
			log.Errorf("table write err: %v", err)
		}
	}
	for _, s := range output.Summarize(rows) {
		log.Infof("%s: mean queue %.2f, max queue %.0f", s.Label, s.Mean, s.Max)
	}
	if *chartPath != "" {
		if err := output.RenderChart(*chartPath, rows); err != nil {
			log.Errorf("chart render err: %v", err)
		} else {
			log.Infof("chart written to %s", *chartPath)
		}
	}
}
