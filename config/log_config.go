package config

import (
	"github.com/pkg/errors"
)

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug / info / warn / error
	Format string `json:"format" yaml:"format"` // console / json
}

func (l *LogConfig) Validate() []error {
	var errs = make([]error, 0)
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.Errorf("日志级别不合法: %q", l.Level))
	}
	switch l.Format {
	case "console", "json":
	default:
		errs = append(errs, errors.Errorf("日志格式不合法: %q", l.Format))
	}
	return errs
}

func NewDefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "console",
	}
}
