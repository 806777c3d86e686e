package configs

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig 服务运行参数。监听地址固定，不在此配置
type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout" yaml:"read_header_timeout" toml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	AccessLog         bool          `mapstructure:"access_log" json:"access_log" yaml:"access_log" toml:"access_log"` // 以 debug 级别记录每个请求
}

func setServerConfigDefaults(v *viper.Viper) {
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.access_log", true)
}

// Validate 超时不能为负数
func (c *ServerConfig) Validate() error {
	if c.ReadHeaderTimeout < 0 || c.ShutdownTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}
	return nil
}
