package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// maxChome is the largest chome number found in the reference data.
const maxChome = 42

const (
	chomeSuffix  = "丁目"
	oazaPrefix   = "大字"
	countySuffix = "郡"
)

// Filter is a pure rewrite of the unconsumed input.
type Filter func(string) string

// townFilters run in order before town matching.
var townFilters = []Filter{
	foldFullwidthDigits,
	canonicalizeChome,
}

func applyFilters(s string, filters []Filter) string {
	for _, f := range filters {
		s = f(s)
	}
	return s
}

var fullwidthDigits = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: '０', Hi: '９', Stride: 1}},
}

// foldFullwidthDigits rewrites ０-９ as ASCII digits and leaves every other rune alone.
func foldFullwidthDigits(s string) string {
	t := runes.If(runes.In(fullwidthDigits), width.Narrow, nil)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

var chomeDigits = regexp.MustCompile(`\D(\d+)丁目`)

// canonicalizeChome rewrites the arabic chome number in "芝公園4丁目" as "芝公園四丁目".
// Only the digits directly before 丁目 change; an identical run earlier in the text is kept.
func canonicalizeChome(s string) string {
	if !strings.Contains(s, chomeSuffix) {
		return s
	}
	loc := chomeDigits.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	kanji, ok := chomeNumeral(s[loc[2]:loc[3]])
	if !ok {
		return s
	}
	return s[:loc[2]] + kanji + s[loc[3]:]
}

// dashes are the code points writers use between block numbers.
var dashes = []rune{
	'\u002D', '\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2015',
	'\u2212', '\u30FC', '\uFF0D', '\uFF70',
}

var blockNumberFormat = regexp.MustCompile(`^(\D+)(\d+)[` + dashClass() + `](.+)$`)

func dashClass() string {
	var b strings.Builder
	for _, r := range dashes {
		fmt.Fprintf(&b, `\x{%04X}`, r)
	}
	return b.String()
}

// expandBlockNumber rewrites "有楽町1-1-1" as "有楽町一丁目1-1". Text that already names its chome is
// left as is.
func expandBlockNumber(s string) string {
	if strings.Contains(s, chomeSuffix) {
		return s
	}
	m := blockNumberFormat.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	kanji, ok := chomeNumeral(m[2])
	if !ok {
		return s
	}
	return m[1] + kanji + chomeSuffix + m[3]
}

func completeOaza(s string) string {
	return oazaPrefix + s
}

func chomeNumeral(digits string) (string, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > maxChome {
		return "", false
	}
	return japaneseNumeral(n)
}
