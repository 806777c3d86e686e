package configs

import (
	"time"

	"github.com/spf13/viper"
)

// WatchConfig 配置文件热加载
type WatchConfig struct {
	Enabled  bool `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
	Debounce int  `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce"` // 防抖时间，毫秒
}

func setWatchConfigDefaults(v *viper.Viper) {
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 300)
}

// DebounceDuration 返回防抖时长，非正数时回退到 300ms
func (c WatchConfig) DebounceDuration() time.Duration {
	if c.Debounce <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.Debounce) * time.Millisecond
}
