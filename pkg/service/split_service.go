package service

import (
	"context"
	"path/filepath"
	"time"

	"debate-split/config"
	"debate-split/pkg/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SplitResult 一次运行的产物和统计
type SplitResult struct {
	RunID         string
	Parse         ParseStats
	Disqualified  map[Disqualification]int
	Targets       map[model.Target]int
	Corpus        []model.ClassifiedPost // 按时间排序后的全部合格帖子
	Partition     Partition
	Chronological bool                   // false 表示按原始时间字符串排序
	Files         map[model.Split]string // 已写出的文件
}

type SplitService struct {
	fs       afero.Fs
	cfg      *config.SplitConfig
	parser   *RecordParser
	resolver *LabelResolver
	writer   *DatasetWriter
}

func NewSplitService(fs afero.Fs, cfg *config.SplitConfig) (*SplitService, error) {
	threshold, err := model.ParseThreshold(cfg.VoteThreshold)
	if err != nil {
		return nil, err
	}
	return &SplitService{
		fs:       fs,
		cfg:      cfg,
		parser:   NewRecordParser(cfg.StrictParse),
		resolver: NewLabelResolver(threshold),
		writer:   NewDatasetWriter(fs, cfg.Indent),
	}, nil
}

// Build 解析、筛选、分类、排序并切分，不写任何文件
func (s *SplitService) Build(ctx context.Context, inputPath string) (*SplitResult, error) {
	result := &SplitResult{
		RunID:        uuid.NewString(),
		Disqualified: map[Disqualification]int{},
		Targets:      map[model.Target]int{},
		Files:        map[model.Split]string{},
	}

	posts, err := s.readInput(inputPath, result)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "解析完成后运行被取消")
	}

	var qualified []model.ClassifiedPost
	for _, post := range posts {
		classified, reason := s.resolver.Resolve(post)
		if reason != Qualified {
			zap.S().Debugf("推文 %s (第 %d 行): 未通过多数票筛选 (%s)，跳过", post.PostID, post.Line, reason)
			result.Disqualified[reason]++
			continue
		}
		classified.Target = ClassifyTarget(classified.Content)
		result.Targets[classified.Target]++
		qualified = append(qualified, *classified)
	}

	result.Corpus, result.Chronological = SortCorpus(qualified)
	if !result.Chronological {
		zap.S().Warnf("部分时间无法解析，按原始字符串排序")
	}
	result.Partition = PartitionCorpus(result.Corpus)
	return result, nil
}

// Run 执行完整流程并写出三个划分。写入失败立即中止，已写出的文件不会回滚
func (s *SplitService) Run(ctx context.Context, inputPath string) (*SplitResult, error) {
	startTime := time.Now()
	result, err := s.Build(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	for _, split := range model.Splits {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "写入 %s 之前运行被取消", split)
		}
		path := filepath.Join(s.cfg.OutputDir, s.cfg.FileName(split))
		posts := result.Partition.Get(split)
		if err := s.writer.Write(split, path, posts); err != nil {
			return result, err
		}
		result.Files[split] = path
		zap.S().Infof("写入 %s: %d 条 -> %s", split, len(posts), path)
	}

	s.logSummary(result)
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return result, nil
}

func (s *SplitService) readInput(inputPath string, result *SplitResult) ([]model.AnnotatedPost, error) {
	info, err := s.fs.Stat(inputPath)
	if err != nil {
		return nil, &InputNotFoundError{Path: inputPath, Err: err}
	}
	if info.IsDir() {
		return nil, &InputNotFoundError{Path: inputPath, Err: errors.New("是一个目录")}
	}
	f, err := s.fs.Open(inputPath)
	if err != nil {
		return nil, &InputNotFoundError{Path: inputPath, Err: err}
	}
	defer f.Close()

	posts, stats, err := s.parser.Parse(f)
	result.Parse = stats
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *SplitService) logSummary(result *SplitResult) {
	zap.S().Infof("运行 %s: 读取 %d 行, 数据行 %d 条, 格式错误 %d 条",
		result.RunID, result.Parse.Lines, result.Parse.DataLines, result.Parse.Malformed)
	zap.S().Infof("丢弃: 无投票 %d 条, mixed %d 条, 未达阈值 %d 条",
		result.Disqualified[NoVotes], result.Disqualified[MixedLabel], result.Disqualified[BelowThreshold])
	zap.S().Infof("合格 %d 条 (obama %d, mccain %d, both %d, general %d)",
		len(result.Corpus), result.Targets[model.TargetObama], result.Targets[model.TargetMcCain],
		result.Targets[model.TargetBoth], result.Targets[model.TargetGeneral])
	zap.S().Infof("划分: train %d, dev %d, test %d",
		len(result.Partition.Train), len(result.Partition.Dev), len(result.Partition.Test))
}
