package entity

import "github.com/sirupsen/logrus"

// log entity模块的日志记录器
var log = logrus.WithField("module", "entity")
