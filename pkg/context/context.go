// Package context 持有一次命令执行期间共享的配置与日志
package context

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/yeisme/hellodemo/pkg/configs"
	"github.com/yeisme/hellodemo/pkg/utils/log"
)

// GlobalFlags 根命令上的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// AppContext 应用上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 配置来源，供 config 子命令使用
	Logger log.Logger      // 日志记录器
}

// InitAppContext 加载配置并初始化日志，命令行标志覆盖配置文件中的 app 开关
func InitAppContext(ctx context.Context, flags GlobalFlags) (*AppContext, error) {
	v := configs.NewViper(flags.ConfigPath)
	if flags.Debug {
		v.Set("app.debug", true)
	}
	if flags.Verbose {
		v.Set("app.verbose", true)
	}
	if flags.Quiet {
		v.Set("app.quiet", true)
	}

	config, err := configs.Load(v)
	if err != nil {
		return nil, err
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}

// Reload 重新读取配置文件并应用其中的日志级别，返回生效的级别
// 监听地址与响应内容不受影响
func (c *AppContext) Reload() (zerolog.Level, error) {
	if err := c.Viper.ReadInConfig(); err != nil {
		return zerolog.NoLevel, fmt.Errorf("read config file: %w", err)
	}

	var config configs.Config
	if err := c.Viper.Unmarshal(&config); err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return zerolog.NoLevel, err
	}

	level := log.ApplyLevel(&config.Log, &config.App)
	c.Logger.Info().Str("level", level.String()).Msg("config reloaded")
	return level, nil
}

