package service

import (
	"context"
	"database/sql"
	"fmt"

	"debate-split/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBTX database/sql 中导出需要用到的方法
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type CorpusExporter struct {
	db    DBTX
	table string
}

func NewCorpusExporter(db DBTX, table string) *CorpusExporter {
	return &CorpusExporter{db: db, table: table}
}

// Export 重建语料表并按划分顺序写入全部帖子，返回写入条数
func (e *CorpusExporter) Export(ctx context.Context, result *SplitResult) (int, error) {
	if e.db == nil {
		return 0, errors.New("DuckDB 连接未初始化")
	}
	if err := e.createTable(ctx); err != nil {
		return 0, err
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (run_id, split, position, tweet_id, author_id, username, handle, label, target, content, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.table)

	inserted := 0
	for _, split := range model.Splits {
		for i, p := range result.Partition.Get(split) {
			_, err := e.db.ExecContext(ctx, insertSQL,
				result.RunID,
				string(split),
				i,
				p.PostID,
				p.AuthorID,
				p.AuthorName,
				p.AuthorHandle,
				string(p.Label),
				string(p.Target),
				p.Content,
				p.Timestamp,
			)
			if err != nil {
				return inserted, errors.Wrapf(err, "插入推文 %s (%s #%d) 失败", p.PostID, split, i)
			}
			inserted++
		}
	}
	zap.S().Infof("导出完成: %d 条写入 %s", inserted, e.table)
	return inserted, nil
}

// createTable 删除旧表后重建，保证表结构与当前版本一致
func (e *CorpusExporter) createTable(ctx context.Context) error {
	if _, err := e.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", e.table)); err != nil {
		return errors.Wrap(err, "删除旧表失败")
	}

	createTableSQL := fmt.Sprintf(`
		CREATE TABLE %s (
			run_id TEXT,
			split TEXT,
			position INTEGER,
			tweet_id TEXT,
			author_id TEXT,
			username TEXT,
			handle TEXT,
			label TEXT,
			target TEXT,
			content TEXT,
			ts TEXT,
			PRIMARY KEY (split, position)
		)
	`, e.table)
	if _, err := e.db.ExecContext(ctx, createTableSQL); err != nil {
		return errors.Wrap(err, "创建表失败")
	}
	zap.S().Debugf("DuckDB 表 %s 创建成功", e.table)
	return nil
}

// Count 获取某个划分在表中的条数
func (e *CorpusExporter) Count(ctx context.Context, split model.Split) (int64, error) {
	if e.db == nil {
		return 0, errors.New("DuckDB 连接未初始化")
	}
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE split = ?", e.table)
	if err := e.db.QueryRowContext(ctx, query, string(split)).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "查询数量失败")
	}
	return count, nil
}
