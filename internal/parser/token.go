package parser

import (
	"cmp"
	"slices"
)

// TokenKind orders tokens the way they appear in an address.
type TokenKind int

const (
	TokenPrefecture TokenKind = iota
	TokenCity
	TokenTown
	TokenRest
)

func (k TokenKind) String() string {
	switch k {
	case TokenPrefecture:
		return "Prefecture"
	case TokenCity:
		return "City"
	case TokenTown:
		return "Town"
	case TokenRest:
		return "Rest"
	default:
		return "Unknown"
	}
}

// Token is one decomposed piece of an address.
type Token struct {
	Kind  TokenKind
	Value string
}

// sortTokens returns a copy of tokens ordered Prefecture < City < Town < Rest.
func sortTokens(tokens []Token) []Token {
	sorted := slices.Clone(tokens)
	slices.SortStableFunc(sorted, func(a, b Token) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return sorted
}
