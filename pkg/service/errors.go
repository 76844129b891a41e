package service

import (
	"fmt"

	"debate-split/pkg/model"
)

// ParseError 数据行的字段数不足
type ParseError struct {
	Line   int    // 行号，从 1 开始
	Fields int    // 实际字段数
	Text   string // 原始行内容
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: 第 %d 行只有 %d 个字段，至少需要 %d 个: %q", e.Line, e.Fields, leadingFields, e.Text)
}

// WriteError 写入某个划分的输出文件失败
type WriteError struct {
	Split model.Split
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write: 写入 %s 划分到 %s 失败: %v", e.Split, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// InputNotFoundError 输入文件不存在或不可读
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input: 无法读取输入文件 %s: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}
