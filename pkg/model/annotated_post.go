package model

// AnnotatedPost 表示标注文件中的一行数据
type AnnotatedPost struct {
	Line         int      `json:"line"`          // 在输入文件中的行号（从 1 开始）
	PostID       string   `json:"post_id"`       // 推文 ID
	Timestamp    string   `json:"timestamp"`     // 发布时间（原始字符串）
	Content      string   `json:"content"`       // 推文内容
	AuthorName   string   `json:"author_name"`   // 作者名称
	AuthorHandle string   `json:"author_handle"` // 作者昵称，缺失时等于作者名称
	Votes        []string `json:"votes"`         // 各标注者的投票代码
}
