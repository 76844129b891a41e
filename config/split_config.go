package config

import (
	"path/filepath"
	"strings"

	"debate-split/pkg/model"

	"github.com/pkg/errors"
)

type SplitConfig struct {
	OutputDir     string `json:"outputDir" yaml:"outputDir"`         // 输出目录
	TrainFile     string `json:"trainFile" yaml:"trainFile"`         // 训练集文件名
	DevFile       string `json:"devFile" yaml:"devFile"`             // 开发集文件名
	TestFile      string `json:"testFile" yaml:"testFile"`           // 测试集文件名
	VoteThreshold string `json:"voteThreshold" yaml:"voteThreshold"` // 多数票阈值，如 "2/3" 或 "0.75"
	StrictParse   bool   `json:"strictParse" yaml:"strictParse"`     // 行格式错误时中止（默认跳过）
	Indent        string `json:"indent" yaml:"indent"`               // XML 缩进
}

func (s *SplitConfig) Validate() []error {
	var errs = make([]error, 0)
	if s.OutputDir == "" {
		errs = append(errs, errors.Errorf("输出目录不能为空"))
	}
	names := map[string]bool{}
	for _, name := range []string{s.TrainFile, s.DevFile, s.TestFile} {
		if name == "" {
			errs = append(errs, errors.Errorf("输出文件名不能为空"))
			continue
		}
		if filepath.Base(name) != name {
			errs = append(errs, errors.Errorf("输出文件名不能包含目录: %s", name))
		}
		if names[name] {
			errs = append(errs, errors.Errorf("输出文件名重复: %s", name))
		}
		names[name] = true
	}
	if _, err := model.ParseThreshold(s.VoteThreshold); err != nil {
		errs = append(errs, err)
	}
	if strings.Trim(s.Indent, " \t") != "" {
		errs = append(errs, errors.Errorf("XML 缩进只能包含空格或制表符"))
	}
	return errs
}

// FileName 返回某个划分对应的输出文件名
func (s *SplitConfig) FileName(split model.Split) string {
	switch split {
	case model.SplitTrain:
		return s.TrainFile
	case model.SplitDev:
		return s.DevFile
	default:
		return s.TestFile
	}
}

func NewDefaultSplitConfig() *SplitConfig {
	return &SplitConfig{
		OutputDir:     ".",
		TrainFile:     "train.xml",
		DevFile:       "dev.xml",
		TestFile:      "test.xml",
		VoteThreshold: model.DefaultThreshold.String(),
		StrictParse:   false,
		Indent:        "  ",
	}
}
