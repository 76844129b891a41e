package db

import (
	"database/sql"
	"sync"

	"debate-split/config"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	corpusDB     *sql.DB
	corpusDBOnce sync.Once
	corpusDBErr  error
)

// InitDuckDB 打开语料库所在的 DuckDB 文件，进程内只打开一次。
// 导出是单线程顺序写入，连接数限制为 1。
func InitDuckDB(cfg *config.DuckDBConfig) error {
	corpusDBOnce.Do(func() {
		corpusDBErr = openCorpusDB(cfg)
	})
	return corpusDBErr
}

func openCorpusDB(cfg *config.DuckDBConfig) error {
	if err := cfg.EnsureDir(); err != nil {
		return err
	}

	conn, err := sql.Open("duckdb", cfg.DSN())
	if err != nil {
		return errors.Wrapf(err, "打开语料库 %s 失败", cfg.DSN())
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return errors.Wrapf(err, "语料库 %s 不可用", cfg.DSN())
	}

	corpusDB = conn
	zap.S().Debugf("语料库已打开: %s", cfg.DSN())
	return nil
}

// GetDuckDB 返回已打开的语料库连接，未初始化时为 nil
func GetDuckDB() *sql.DB {
	return corpusDB
}

// CloseDuckDB 关闭连接，确保数据落盘
func CloseDuckDB() error {
	if corpusDB == nil {
		return nil
	}
	return corpusDB.Close()
}
