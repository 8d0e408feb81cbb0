package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var naraCities = []string{
	"奈良市", "大和高田市", "大和郡山市", "天理市", "橿原市", "桜井市", "五條市", "御所市", "生駒市",
	"香芝市", "葛城市", "宇陀市", "山辺郡山添村", "生駒郡平群町", "生駒郡三郷町", "生駒郡斑鳩町",
	"生駒郡安堵町", "磯城郡川西町", "磯城郡三宅町", "磯城郡田原本町", "宇陀郡曽爾村", "宇陀郡御杖村",
	"高市郡高取町", "高市郡明日香村", "北葛城郡上牧町", "北葛城郡王寺町", "北葛城郡広陵町",
	"北葛城郡河合町", "吉野郡吉野町",
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("広陵町", "広陵町"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 0.0, similarity("abc", ""))
	assert.InDelta(t, 2.0/3.0, similarity("abc", "abd"), 1e-9)
	assert.InDelta(t, 3.0/7.0, similarity("広陵町笠168", "北葛城郡広陵町"), 1e-9)
}

func TestClosestCity(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
		ok         bool
	}{
		{
			name:       "county omitted",
			input:      "広陵町笠168",
			candidates: naraCities,
			expected:   "北葛城郡広陵町",
			ok:         true,
		},
		{
			name:       "ties keep earlier candidate",
			input:      "ab",
			candidates: []string{"xa", "ya"},
			expected:   "xa",
			ok:         true,
		},
		{
			name:       "nothing in common",
			input:      "xyz",
			candidates: []string{"abc", "def"},
			ok:         false,
		},
		{
			name:       "no candidates",
			input:      "広陵町",
			candidates: nil,
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := closestCity(tt.input, tt.candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComplementCountyName(t *testing.T) {
	matcher := NewVariantMatcher(cityVariantsFor("奈良県"))

	city, rest, ok := complementCountyName("広陵町笠168", naraCities, matcher)
	assert.True(t, ok)
	assert.Equal(t, "北葛城郡広陵町", city)
	assert.Equal(t, "笠168", rest)

	city, rest, ok = complementCountyName("斑鳩町法隆寺山内1-1", naraCities, matcher)
	assert.True(t, ok)
	assert.Equal(t, "生駒郡斑鳩町", city)
	assert.Equal(t, "法隆寺山内1-1", rest)
}

func TestComplementCountyName_RequiresCounty(t *testing.T) {
	// The best candidate scores highest but has no 郡 to restore.
	candidates := []string{"橿原市", "北葛城郡広陵町"}
	city, rest, ok := complementCountyName("橿原市八木町", candidates, NewVariantMatcher(cityCommonVariants))
	assert.False(t, ok)
	assert.Empty(t, city)
	assert.Empty(t, rest)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "広陵", truncateRunes("広陵町", 2))
	assert.Equal(t, "広陵町", truncateRunes("広陵町", 5))
	assert.Equal(t, "", truncateRunes("広陵町", 0))
}
