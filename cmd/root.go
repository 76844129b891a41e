package cmd

import (
	"debate-split/pkg/service"
	"debate-split/pkg/util"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "debate-split <annotations.tsv>",
		Short: "将众包标注的辩论推文按多数票筛选并按时间切分为 train/dev/test",
		Long: `读取 Debate08 标注文件（制表符分隔），保留至少三分之二标注者一致的
negative/positive/neutral 推文，识别讨论对象，按发布时间排序后等分为三段，
分别写入 train.xml、dev.xml、test.xml。`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			splitService, err := service.NewSplitService(afero.NewOsFs(), opts.cfg.SplitConfig)
			if err != nil {
				return err
			}
			if _, err := splitService.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			return nil
		},
	}
	opts.addPersistentFlags(rootCmd)
	rootCmd.Flags().StringVarP(&opts.outputDir, "out-dir", "o", ".", "输出目录")

	rootCmd.AddCommand(NewExportCommand(opts))
	rootCmd.AddCommand(NewVersionCommand())

	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}
