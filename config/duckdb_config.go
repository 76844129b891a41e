package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type DuckDBConfig struct {
	DBPath string `json:"dbPath" yaml:"dbPath"` // DuckDB 数据库文件路径
	Table  string `json:"table" yaml:"table"`   // 语料表名
}

func (d *DuckDBConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.DBPath == "" {
		errs = append(errs, errors.Errorf("DuckDB 数据库路径不能为空"))
		return errs
	}
	if !tableNamePattern.MatchString(d.Table) {
		errs = append(errs, errors.Errorf("DuckDB 表名不合法: %q", d.Table))
	}
	return errs
}

// EnsureDir 确保数据库文件所在目录存在，只在真正导出时调用
func (d *DuckDBConfig) EnsureDir() error {
	dir := filepath.Dir(d.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("创建 DuckDB 目录失败: %v", err)
	}
	return nil
}

func NewDefaultDuckDBConfig() *DuckDBConfig {
	return &DuckDBConfig{
		DBPath: "./data/debate.duckdb",
		Table:  "debate_posts",
	}
}

func (d *DuckDBConfig) DSN() string {
	return d.DBPath
}
