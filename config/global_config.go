package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type IConfig interface {
	Validate() []error
}

type GlobalConfig struct {
	SplitConfig  *SplitConfig  `json:"split" yaml:"split"`
	DuckDBConfig *DuckDBConfig `json:"duckdb" yaml:"duckdb"`
	LogConfig    *LogConfig    `json:"log" yaml:"log"`
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	for _, c := range []IConfig{g.SplitConfig, g.DuckDBConfig, g.LogConfig} {
		if c == nil {
			continue
		}
		if es := c.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		SplitConfig:  NewDefaultSplitConfig(),
		DuckDBConfig: NewDefaultDuckDBConfig(),
		LogConfig:    NewDefaultLogConfig(),
	}
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	v := viper.New()
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)
	tagName, err := decodeTagName(fileType)
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, fileType))
	v.SetConfigType(strings.ToLower(strings.TrimPrefix(fileType, ".")))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("解析配置文件错误:%s", err.Error())
	}
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = tagName
		config.WeaklyTypedInput = true
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeTagName 配置文件扩展名对应的结构体 tag，没有对应 tag 的格式直接报错，避免配置被静默忽略
func decodeTagName(fileType string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(fileType, ".")) {
	case "yaml", "yml":
		return "yaml", nil
	case "json":
		return "json", nil
	default:
		return "", errors.Errorf("不支持的配置文件格式: %q，仅支持 yaml/yml/json", fileType)
	}
}

// LoadOrDefault 配置文件不存在时使用默认配置，其余错误原样返回
func LoadOrDefault(configFilePath string) (*GlobalConfig, error) {
	if configFilePath == "" {
		return NewDefaultGlobalConfig(), nil
	}
	cfg, err := TryLoadFromDisk(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefaultGlobalConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
