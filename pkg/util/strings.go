package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// hanNumerals 是 unicode.IsNumber 覆盖不到、但带有数值属性的常用汉字
var hanNumerals = map[rune]struct{}{
	'〇': {}, '零': {}, '一': {}, '二': {}, '三': {}, '四': {}, '五': {},
	'六': {}, '七': {}, '八': {}, '九': {}, '十': {}, '百': {}, '千': {},
	'万': {}, '亿': {}, '兆': {}, '壹': {}, '贰': {}, '叁': {}, '肆': {},
	'伍': {}, '陆': {}, '柒': {}, '捌': {}, '玖': {}, '拾': {}, '佰': {},
	'仟': {}, '萬': {}, '億': {},
}

// IsNumeric 判断字符串是否全部由数字字符组成
// 除阿拉伯数字外，也包括全角数字、罗马数字、分数以及“三十”这类汉字数字
func IsNumeric(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			continue
		}
		if _, ok := hanNumerals[r]; ok {
			continue
		}
		return false
	}
	return len(s) > 0
}

// RuneLen 返回字符串的字符数（按 Unicode 码点计算）
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

func Str2List(str string, sep string) []string {
	list := make([]string, 0)

	if str == "" {
		return list
	}

	listMap := make(map[string]bool)
	for _, elem := range strings.Split(str, sep) {
		elem = strings.TrimSpace(elem)
		if len(elem) == 0 {
			continue
		}
		if _, ok := listMap[elem]; ok {
			continue
		}
		listMap[elem] = true
		list = append(list, elem)
	}

	return list
}
