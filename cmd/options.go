package cmd

import (
	"errors"

	"debate-split/config"
	"debate-split/pkg/logger"

	"github.com/spf13/cobra"
)

const defaultConfigFilePath = "./etc/config.yaml"

// options 所有子命令共享的命令行参数
type options struct {
	configFilePath string
	verbose        bool
	strict         bool
	threshold      string
	outputDir      string
	dbPath         string

	cfg *config.GlobalConfig
}

func (o *options) addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.configFilePath, "config", "c", defaultConfigFilePath, "配置文件路径，默认路径不存在时使用内置默认值")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "输出调试日志")
	cmd.PersistentFlags().BoolVar(&o.strict, "strict", false, "遇到格式错误的数据行时中止")
	cmd.PersistentFlags().StringVar(&o.threshold, "threshold", "", "多数票阈值，如 2/3 或 0.75")
}

// load 读取配置、应用命令行覆盖、校验并初始化日志
func (o *options) load(cmd *cobra.Command) error {
	var (
		cfg *config.GlobalConfig
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.TryLoadFromDisk(o.configFilePath)
	} else {
		cfg, err = config.LoadOrDefault(o.configFilePath)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("strict") {
		cfg.SplitConfig.StrictParse = o.strict
	}
	if cmd.Flags().Changed("threshold") {
		cfg.SplitConfig.VoteThreshold = o.threshold
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.SplitConfig.OutputDir = o.outputDir
	}
	if cmd.Flags().Changed("db") {
		cfg.DuckDBConfig.DBPath = o.dbPath
	}
	if o.verbose {
		cfg.LogConfig.Level = "debug"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if _, err := logger.Init(cfg.LogConfig); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}
