package parser

import "strings"

var kanjiDigits = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// japaneseNumeral writes n the way chome numbers appear in the gazetteer, e.g. 23 -> 二十三.
// Only 1xx is written with 百; larger hundreds never occur.
func japaneseNumeral(n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	var b strings.Builder
	if n >= 100 {
		b.WriteString("百")
	}
	switch tens := n / 10 % 10; tens {
	case 0:
	case 1:
		b.WriteString("十")
	default:
		b.WriteString(kanjiDigits[tens])
		b.WriteString("十")
	}
	if units := n % 10; units != 0 {
		b.WriteString(kanjiDigits[units])
	}
	return b.String(), true
}
