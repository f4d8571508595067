package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// currentLevel 记录配置的日志级别,worker初始化消息会带上它
var currentLevel = "info"

// InitLogger 初始化全局日志,level支持debug/info/warn/error/none
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, dsn string) {
	currentLevel = level
	initZap(ParseLevel(level), projectName, logPath, maxAge, rotationTime, rotationSize, dsn)
}

// ParseLevel 解析日志级别字符串,未知级别按info处理
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "critical":
		return zapcore.FatalLevel
	case "none":
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}

// Level 返回配置的日志级别
func Level() string {
	return currentLevel
}

func Debugf(format string, args ...interface{}) {
	zap.S().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	zap.S().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	zap.S().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	zap.S().Errorf(format, args...)
}

// DebugEnabled 判断debug级别是否开启,避免无谓的格式化开销
func DebugEnabled() bool {
	return zap.L().Core().Enabled(zapcore.DebugLevel)
}
