package model

// PlaceholderAuthorID 源数据中没有作者 ID，统一使用占位值
const PlaceholderAuthorID = "000000"

// ClassifiedPost 表示通过多数票筛选后的帖子
type ClassifiedPost struct {
	PostID       string `json:"post_id"`
	AuthorID     string `json:"author_id"`
	AuthorName   string `json:"author_name"`
	AuthorHandle string `json:"author_handle"`
	Label        Label  `json:"label"`
	Target       Target `json:"target"` // 由目标分类阶段填写
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
}
