package service

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"debate-split/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// 美式日期格式，cast 不支持，单独尝试
var usTimeLayouts = []string{
	"1/2/06 15:04",
	"1/2/06 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// 紧凑格式 YYYYMMDDhhmmss，全是数字，必须先于 Unix 秒尝试
const compactTimeLayout = "20060102150405"

// ParseTimestamp 将时间字段解析为 UTC 时间，支持紧凑格式、Unix 秒、cast 支持的常见格式以及美式日期
func ParseTimestamp(s string) (time.Time, error) {
	return parseTimestamp(s, true)
}

// parseTimestamp allowUnix 为 false 时纯数字（非紧凑格式）的时间视为无法解析
func parseTimestamp(s string, allowUnix bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(compactTimeLayout) {
		if t, err := time.ParseInLocation(compactTimeLayout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if isUnixSeconds(s) {
		if !allowUnix {
			return time.Time{}, errors.Errorf("无法确定纯数字时间 %q 的含义", s)
		}
		sec, _ := strconv.ParseInt(s, 10, 64)
		return time.Unix(sec, 0).UTC(), nil
	}
	t, castErr := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if castErr == nil {
		return t.UTC(), nil
	}
	for _, layout := range usTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, castErr
}

func isUnixSeconds(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// SortCorpus 返回按时间升序排列的新切片，不修改入参。
// 所有时间都能解析时按真实时间比较，否则按原始字符串的字典序比较。
// 只有全部时间都是纯数字时才按 Unix 秒解析，纯数字与日期混用时按字典序比较。
// 时间相同时依次比较推文 ID、内容、作者名称、作者昵称、标签，保证结果确定。
func SortCorpus(posts []model.ClassifiedPost) (corpus []model.ClassifiedPost, chronological bool) {
	corpus = slices.Clone(posts)

	allUnix := true
	for _, p := range corpus {
		if !isUnixSeconds(p.Timestamp) {
			allUnix = false
			break
		}
	}

	times := make(map[string]time.Time, len(corpus))
	chronological = true
	for _, p := range corpus {
		if _, done := times[p.Timestamp]; done {
			continue
		}
		t, err := parseTimestamp(p.Timestamp, allUnix)
		if err != nil {
			chronological = false
			break
		}
		times[p.Timestamp] = t
	}

	slices.SortStableFunc(corpus, func(a, b model.ClassifiedPost) int {
		if chronological {
			if c := times[a.Timestamp].Compare(times[b.Timestamp]); c != 0 {
				return c
			}
		}
		return cmp.Or(
			strings.Compare(a.Timestamp, b.Timestamp),
			strings.Compare(a.PostID, b.PostID),
			strings.Compare(a.Content, b.Content),
			strings.Compare(a.AuthorName, b.AuthorName),
			strings.Compare(a.AuthorHandle, b.AuthorHandle),
			strings.Compare(string(a.Label), string(b.Label)),
		)
	})
	return corpus, chronological
}

// FirstBoundary 训练集和开发集的大小：round(n/3)，.5 时向上取整
func FirstBoundary(n int) int {
	return int(math.Floor(float64(n)/3.0 + 0.5))
}

// Partition 按时间顺序切分出的三个连续划分
type Partition struct {
	Train []model.ClassifiedPost
	Dev   []model.ClassifiedPost
	Test  []model.ClassifiedPost
}

// PartitionCorpus 将已排序的语料切成三段，边界只由语料长度决定
func PartitionCorpus(corpus []model.ClassifiedPost) Partition {
	first := FirstBoundary(len(corpus))
	second := 2 * first
	return Partition{
		Train: corpus[:first:first],
		Dev:   corpus[first:second:second],
		Test:  corpus[second:],
	}
}

func (p Partition) Get(split model.Split) []model.ClassifiedPost {
	switch split {
	case model.SplitTrain:
		return p.Train
	case model.SplitDev:
		return p.Dev
	default:
		return p.Test
	}
}

func (p Partition) Len() int {
	return len(p.Train) + len(p.Dev) + len(p.Test)
}
