package service

import (
	"debate-split/pkg/model"
)

// VoteTally 投票代码到票数的映射，构造后不再修改
type VoteTally struct {
	order  []string // 代码首次出现的顺序
	counts map[string]int
	total  int
}

// TallyVotes 统计投票
func TallyVotes(votes []string) VoteTally {
	t := VoteTally{counts: make(map[string]int, len(votes))}
	for _, code := range votes {
		if _, seen := t.counts[code]; !seen {
			t.order = append(t.order, code)
		}
		t.counts[code]++
		t.total++
	}
	return t
}

func (t VoteTally) Total() int {
	return t.total
}

func (t VoteTally) Count(code string) int {
	return t.counts[code]
}

// Plurality 返回票数最多的代码；票数相同时先出现的代码优先。没有投票时 ok 为 false
func (t VoteTally) Plurality() (code string, count int, ok bool) {
	for _, c := range t.order {
		if n := t.counts[c]; n > count {
			code, count = c, n
		}
	}
	return code, count, count > 0
}

// Disqualification 帖子被丢弃的原因，空字符串表示合格
type Disqualification string

const (
	Qualified      Disqualification = ""
	NoVotes        Disqualification = "no_votes"
	MixedLabel     Disqualification = "mixed"
	BelowThreshold Disqualification = "below_threshold"
)

type LabelResolver struct {
	threshold model.Threshold
}

func NewLabelResolver(threshold model.Threshold) *LabelResolver {
	return &LabelResolver{threshold: threshold}
}

// Resolve 按多数票确定帖子的情感标签。
// 不合格的帖子返回 nil 和丢弃原因，这不是错误。
func (r *LabelResolver) Resolve(post model.AnnotatedPost) (*model.ClassifiedPost, Disqualification) {
	tally := TallyVotes(post.Votes)
	code, best, ok := tally.Plurality()
	if !ok {
		return nil, NoVotes
	}

	label := model.LabelFromVote(code)
	if label == model.LabelMixed {
		return nil, MixedLabel
	}
	if !r.threshold.Qualifies(best, tally.Total()) {
		return nil, BelowThreshold
	}

	return &model.ClassifiedPost{
		PostID:       post.PostID,
		AuthorID:     model.PlaceholderAuthorID,
		AuthorName:   post.AuthorName,
		AuthorHandle: post.AuthorHandle,
		Label:        label,
		Content:      post.Content,
		Timestamp:    post.Timestamp,
	}, Qualified
}
