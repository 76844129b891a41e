package service

import (
	"bufio"
	"io"
	"strings"

	"debate-split/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 行首五个固定字段：推文 ID、时间、内容、作者名称、作者昵称
const leadingFields = 5

const maxLineSize = 1024 * 1024

// ParseStats 解析阶段的统计信息
type ParseStats struct {
	Lines     int // 读取的总行数
	DataLines int // 以数字开头的数据行
	Malformed int // 字段不足被跳过的行
}

type RecordParser struct {
	strict bool
}

// NewRecordParser strict 为 true 时遇到格式错误的行立即返回 ParseError，否则跳过该行
func NewRecordParser(strict bool) *RecordParser {
	return &RecordParser{strict: strict}
}

// Parse 读取标注文件，只保留首字符为 ASCII 数字的行，按制表符拆分字段
func (p *RecordParser) Parse(r io.Reader) ([]model.AnnotatedPost, ParseStats, error) {
	var stats ParseStats
	var posts []model.AnnotatedPost

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if !isDataLine(line) {
			continue
		}
		stats.DataLines++

		post, err := parseLine(stats.Lines, line)
		if err != nil {
			if p.strict {
				return nil, stats, err
			}
			zap.S().Warnf("跳过格式错误的行: %v", err)
			stats.Malformed++
			continue
		}
		posts = append(posts, post)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.Wrapf(err, "parse: 读取第 %d 行之后的内容失败", stats.Lines)
	}
	return posts, stats, nil
}

func isDataLine(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

func parseLine(lineNo int, line string) (model.AnnotatedPost, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < leadingFields {
		return model.AnnotatedPost{}, &ParseError{Line: lineNo, Fields: len(fields), Text: line}
	}

	post := model.AnnotatedPost{
		Line:         lineNo,
		PostID:       fields[0],
		Timestamp:    fields[1],
		Content:      fields[2],
		AuthorName:   fields[3],
		AuthorHandle: fields[4],
		Votes:        fields[leadingFields:],
	}
	// 部分作者没有昵称，用名称代替
	if post.AuthorHandle == "" {
		post.AuthorHandle = post.AuthorName
	}
	return post, nil
}
