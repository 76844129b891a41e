package cmd

import (
	"debate-split/pkg/db"
	"debate-split/pkg/model"
	"debate-split/pkg/service"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewExportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <annotations.tsv>",
		Short: "将筛选切分后的语料导入 DuckDB",
		Long:  "执行与默认命令相同的解析、筛选和切分流程，但不写 XML，而是把每条推文连同所属划分写入 DuckDB 表",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg

			splitService, err := service.NewSplitService(afero.NewOsFs(), cfg.SplitConfig)
			if err != nil {
				return err
			}
			result, err := splitService.Build(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := db.InitDuckDB(cfg.DuckDBConfig); err != nil {
				return err
			}
			defer func() {
				if err := db.CloseDuckDB(); err != nil {
					zap.S().Warnf("关闭 DuckDB 失败: %v", err)
				}
			}()

			exporter := service.NewCorpusExporter(db.GetDuckDB(), cfg.DuckDBConfig.Table)
			if _, err := exporter.Export(cmd.Context(), result); err != nil {
				return err
			}

			for _, split := range model.Splits {
				count, err := exporter.Count(cmd.Context(), split)
				if err != nil {
					zap.S().Warnf("获取统计信息失败:%s", err.Error())
					continue
				}
				zap.S().Infof("DuckDB 中 %s 划分的数量: %d", split, count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", "", "DuckDB 数据库文件路径（覆盖配置）")
	return cmd
}
