package logger

import (
	"debate-split/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init 按配置构建全局 logger，之后通过 zap.S() 使用
func Init(cfg *config.LogConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = config.NewDefaultLogConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "日志级别不合法")
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableStacktrace = true

	l, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "初始化日志失败")
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
