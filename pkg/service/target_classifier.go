package service

import (
	"strings"

	"debate-split/pkg/model"
)

const (
	obamaToken  = "obama"
	mccainToken = "mccain"
)

// ClassifyTarget 根据内容中是否出现候选人名字（不区分大小写）判断讨论对象
func ClassifyTarget(content string) model.Target {
	lower := strings.ToLower(content)
	hasObama := strings.Contains(lower, obamaToken)
	hasMcCain := strings.Contains(lower, mccainToken)

	switch {
	case hasObama && hasMcCain:
		return model.TargetBoth
	case hasObama:
		return model.TargetObama
	case hasMcCain:
		return model.TargetMcCain
	default:
		return model.TargetGeneral
	}
}
