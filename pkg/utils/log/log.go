// Package log 提供全局日志记录器的初始化和获取功能
// 使用 zerolog 作为日志库，支持多种输出模式（控制台、文件、两者）
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeisme/hellodemo/pkg/configs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 全局日志记录器类型
type Logger = *zerolog.Logger

// globalLogger 在 InitLogger 中初始化，GetLogger 读取
var globalLogger Logger

// InitLogger 初始化日志记录器，控制台输出写到 stdout
func InitLogger(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig) Logger {
	return InitLoggerWithWriter(ctx, config, appConfig, os.Stdout)
}

// InitLoggerWithWriter 与 InitLogger 相同，但控制台输出写到 console
func InitLoggerWithWriter(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig, console io.Writer) Logger {
	// 优先级：quiet > debug > verbose > config.Level
	if appConfig.Quiet {
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
		logger := zerolog.New(io.Discard)
		globalLogger = &logger
		log.Logger = logger
		return &logger
	}
	zerolog.SetGlobalLevel(levelFor(config, appConfig))

	var writers []io.Writer
	switch strings.ToLower(config.Mode) {
	case configs.LogModeFile:
		writers = append(writers, createFileWriter(config, console))
	case configs.LogModeBoth:
		writers = append(writers, createConsoleWriter(console, config.JSON))
		writers = append(writers, createFileWriter(config, console))
	default:
		writers = append(writers, createConsoleWriter(console, config.JSON))
	}

	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = zerolog.MultiLevelWriter(writers...)
	}

	var logger zerolog.Logger
	switch {
	case appConfig.Debug:
		logger = zerolog.New(output).With().Caller().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	case appConfig.Verbose:
		logger = zerolog.New(output).With().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	default:
		logger = zerolog.New(output).With().Timestamp().Logger()
	}

	globalLogger = &logger
	log.Logger = logger
	return &logger
}

// levelFor 根据 app 开关和配置级别计算全局级别
func levelFor(config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Level {
	switch {
	case appConfig.Debug:
		return zerolog.DebugLevel
	case appConfig.Verbose:
		return zerolog.InfoLevel
	default:
		return ParseLevel(config.Level)
	}
}

// ApplyLevel 在运行时重新应用日志级别（配置热加载时使用）
func ApplyLevel(config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Level {
	if appConfig.Quiet {
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
		return zerolog.PanicLevel
	}
	level := levelFor(config, appConfig)
	zerolog.SetGlobalLevel(level)
	return level
}

// createConsoleWriter 创建控制台输出写入器
func createConsoleWriter(out io.Writer, useJSON bool) io.Writer {
	if useJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// createFileWriter 创建带轮转的文件写入器，目录无法创建时回退到 fallback
func createFileWriter(config *configs.LogConfig, fallback io.Writer) io.Writer {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fallback
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,    // megabytes
		MaxBackups: config.MaxBackups, // 保留备份数量
		MaxAge:     config.MaxAge,     // days
		Compress:   true,
	}
}

// GetLogger 获取全局日志记录器，未初始化时使用默认配置
func GetLogger() Logger {
	if globalLogger == nil {
		config, err := configs.DefaultConfig()
		if err != nil {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			globalLogger = &logger
			return globalLogger
		}
		return InitLogger(context.Background(), &config.Log, &config.App)
	}
	return globalLogger
}

// ParseLevel 解析日志级别，未知取值返回 Info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug 创建一个 Debug 级别的日志事件
func Debug() *zerolog.Event {
	return GetLogger().Debug()
}

// Info 创建一个 Info 级别的日志事件
func Info() *zerolog.Event {
	return GetLogger().Info()
}

// Warn 创建一个 Warn 级别的日志事件
func Warn() *zerolog.Event {
	return GetLogger().Warn()
}

// Error 创建一个 Error 级别的日志事件
func Error() *zerolog.Event {
	return GetLogger().Error()
}
