package service

import (
	"bytes"
	"encoding/xml"
	"path/filepath"

	"debate-split/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// datasetDocument 输出文档的根元素 <dataset>
type datasetDocument struct {
	XMLName xml.Name      `xml:"dataset"`
	Items   []datasetItem `xml:"item"`
}

// datasetItem 属性顺序即输出顺序，下游工具依赖这些名字
type datasetItem struct {
	TweetID  string `xml:"tweetid,attr"`
	Username string `xml:"username,attr"`
	Label    string `xml:"label,attr"`
	Target   string `xml:"target,attr"`
	Content  string `xml:"content"`
}

type DatasetWriter struct {
	fs     afero.Fs
	indent string
}

func NewDatasetWriter(fs afero.Fs, indent string) *DatasetWriter {
	return &DatasetWriter{fs: fs, indent: indent}
}

// Encode 将帖子序列化为带缩进的 XML 文档
func (w *DatasetWriter) Encode(posts []model.ClassifiedPost) ([]byte, error) {
	doc := datasetDocument{Items: make([]datasetItem, 0, len(posts))}
	for _, p := range posts {
		doc.Items = append(doc.Items, datasetItem{
			TweetID:  p.PostID,
			Username: p.AuthorName,
			Label:    string(p.Label),
			Target:   string(p.Target),
			Content:  p.Content,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", w.indent)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "序列化 XML 失败")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "序列化 XML 失败")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write 写入某个划分，已存在的文件会被覆盖
func (w *DatasetWriter) Write(split model.Split, path string, posts []model.ClassifiedPost) error {
	data, err := w.Encode(posts)
	if err != nil {
		return &WriteError{Split: split, Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Split: split, Path: path, Err: err}
		}
	}
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return &WriteError{Split: split, Path: path, Err: err}
	}
	return nil
}
