package model

// Label 情感标签
type Label string

const (
	LabelNegative Label = "negative"
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	// LabelMixed 表示无法使用的票型，带该标签的帖子一律丢弃
	LabelMixed Label = "mixed"
)

// LabelFromVote 将标注者的投票代码映射为情感标签，"4"（其他）按中性处理
func LabelFromVote(code string) Label {
	switch code {
	case "1":
		return LabelNegative
	case "2":
		return LabelPositive
	case "4":
		return LabelNeutral
	default:
		return LabelMixed
	}
}

// Target 帖子讨论的对象
type Target string

const (
	TargetObama   Target = "obama"
	TargetMcCain  Target = "mccain"
	TargetBoth    Target = "both"
	TargetGeneral Target = "general"
)

// Split 数据集划分
type Split string

const (
	SplitTrain Split = "train"
	SplitDev   Split = "dev"
	SplitTest  Split = "test"
)

// Splits 按时间先后排列的三个划分
var Splits = []Split{SplitTrain, SplitDev, SplitTest}
