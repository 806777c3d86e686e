// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 HELLODEMO_LOG_LEVEL=debug
const EnvPrefix = "HELLODEMO"

// Config 应用配置结构
type Config struct {
	Version string       `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	App     AppConfig    `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
	Log     LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Server  ServerConfig `mapstructure:"server" json:"server" yaml:"server" toml:"server"`
	Watch   WatchConfig  `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setAppConfigDefaults(v)
	setLogConfigDefaults(v)
	setServerConfigDefaults(v)
	setWatchConfigDefaults(v)
}

// searchPaths 返回配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/hellodemo",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/hellodemo",
		)
	} else {
		paths = append(paths, "/etc/hellodemo")
	}
	return paths
}

// findConfigFile 尝试查找不同格式的配置文件，找不到时返回空字符串
func findConfigFile() string {
	configNames := []string{".hellodemo", "hellodemo"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile
				}
			}
		}
	}

	return ""
}

// NewViper 创建一个已设置默认值、环境变量和配置文件路径的 viper 实例
func NewViper(configPath string) *viper.Viper {
	v := viper.New()
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// Load 读取配置文件（若存在）并解析为 Config
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == LogModeFile || config.Log.Mode == LogModeBoth {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	return &config, nil
}

// LoadConfig 加载配置文件，configPath 为空时按搜索路径查找
func LoadConfig(configPath string) (*Config, *viper.Viper, error) {
	v := NewViper(configPath)
	config, err := Load(v)
	if err != nil {
		return nil, nil, err
	}
	return config, v, nil
}

// Validate 检查配置取值是否合法
func (c *Config) Validate() error {
	if c.App.Quiet && c.App.Verbose {
		return ErrQuietVerbose
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// ErrQuietVerbose quiet 与 verbose 不能同时开启
var ErrQuietVerbose = errors.New("cannot set both quiet and verbose modes")
