package model

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var half = big.NewRat(1, 2)

// DefaultThreshold 至少三分之二的票投给同一个标签
var DefaultThreshold = Threshold{r: big.NewRat(2, 3)}

// Threshold 多数票占比阈值，以有理数精确比较
type Threshold struct {
	r *big.Rat
}

// ParseThreshold 解析 "2/3"、"0.75" 等形式的阈值。
// 阈值必须大于 1/2，这样票数并列第一的情况永远达不到阈值。
func ParseThreshold(v interface{}) (Threshold, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return Threshold{}, errors.Wrapf(err, "阈值类型不合法")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultThreshold, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Threshold{}, errors.Errorf("阈值格式不合法: %q", s)
	}
	if r.Cmp(half) <= 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return Threshold{}, errors.Errorf("阈值必须在 (1/2, 1] 范围内: %s", s)
	}
	return Threshold{r: r}, nil
}

// Qualifies 判断 best/total 是否达到阈值，total 为 0 时不合格
func (t Threshold) Qualifies(best, total int) bool {
	if total <= 0 || best <= 0 {
		return false
	}
	r := t.r
	if r == nil {
		r = DefaultThreshold.r
	}
	return big.NewRat(int64(best), int64(total)).Cmp(r) >= 0
}

func (t Threshold) String() string {
	if t.r == nil {
		return DefaultThreshold.r.RatString()
	}
	return t.r.RatString()
}
