package util

import (
	"strings"
)

// WordsPerMinute 阅读时长估算的基准语速
const WordsPerMinute = 200

// CalcReadingTime 按词数向上取整估算阅读分钟数，非空正文至少为 1
func CalcReadingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// SplitTags 将逗号分隔的标签表达式拆分为去空白后的标签列表
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// StrVal 解引用可空字符串，nil 视为空串
func StrVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
