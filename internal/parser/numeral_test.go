package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJapaneseNumeral(t *testing.T) {
	tests := []struct {
		n        int
		expected string
		ok       bool
	}{
		{n: 1, expected: "一", ok: true},
		{n: 9, expected: "九", ok: true},
		{n: 10, expected: "十", ok: true},
		{n: 11, expected: "十一", ok: true},
		{n: 20, expected: "二十", ok: true},
		{n: 23, expected: "二十三", ok: true},
		{n: 42, expected: "四十二", ok: true},
		{n: 100, expected: "百", ok: true},
		{n: 110, expected: "百十", ok: true},
		{n: 123, expected: "百二十三", ok: true},
		{n: 0, ok: false},
		{n: -3, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, ok := japaneseNumeral(tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
