package parser

import (
	"slices"
	"strings"
)

// Stage restricts which tokenizer operation may run next.
type Stage int

const (
	StageInit Stage = iota
	StagePrefectureFound
	StageCityNotFound
	StageCityFound
	StageTownFound
	StageEnd
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "Init"
	case StagePrefectureFound:
		return "PrefectureFound"
	case StageCityNotFound:
		return "CityNotFound"
	case StageCityFound:
		return "CityFound"
	case StageTownFound:
		return "TownFound"
	case StageEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Tokenizer is an immutable parse state. Every operation returns a new value and leaves the
// receiver untouched, so a state can be branched freely.
type Tokenizer struct {
	input      string
	prefecture string
	city       string
	town       string
	rest       string
	stage      Stage
	tokens     []Token
}

// NewTokenizer starts a parse of input.
func NewTokenizer(input string) Tokenizer {
	return Tokenizer{input: input, rest: input, stage: StageInit}
}

func (t Tokenizer) Input() string      { return t.input }
func (t Tokenizer) Prefecture() string { return t.prefecture }
func (t Tokenizer) City() string       { return t.city }
func (t Tokenizer) Town() string       { return t.town }
func (t Tokenizer) Rest() string       { return t.rest }
func (t Tokenizer) Stage() Stage       { return t.stage }

// Tokens returns a copy of the tokens emitted so far.
func (t Tokenizer) Tokens() []Token {
	return slices.Clone(t.tokens)
}

// ReadPrefecture consumes the prefecture name at the head of the input. On failure the whole input
// becomes the rest and the tokenizer ends.
func (t Tokenizer) ReadPrefecture() (Tokenizer, error) {
	if t.stage != StageInit {
		return t, ErrStageOrder
	}
	name, rest, ok := findPrefecture(t.rest)
	if !ok {
		return t.drain(), &ParseError{Kind: ParseErrorPrefecture, Input: t.rest}
	}
	next := t.push(Token{Kind: TokenPrefecture, Value: name})
	next.prefecture = name
	next.rest = rest
	next.stage = StagePrefectureFound
	return next, nil
}

// ReadCity consumes the first candidate that prefixes the rest, literally or through the variant
// classes enabled for the prefecture. Candidates are tried in the given order. On failure the
// tokenizer moves to StageCityNotFound with the rest untouched.
func (t Tokenizer) ReadCity(candidates []string) (Tokenizer, error) {
	if t.stage != StagePrefectureFound {
		return t, ErrStageOrder
	}
	matcher := NewVariantMatcher(cityVariantsFor(t.prefecture))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(t.rest, candidate); ok {
			return t.foundCity(candidate, rest), nil
		}
		if name, rest, ok := matcher.Match(t.rest, candidate); ok {
			return t.foundCity(name, rest), nil
		}
	}
	next := t
	next.stage = StageCityNotFound
	return next, &ParseError{Kind: ParseErrorCity, Input: t.rest}
}

// ReadCityWithCountyNameCompletion retries the city stage assuming the writer left out the county.
func (t Tokenizer) ReadCityWithCountyNameCompletion(candidates []string) (Tokenizer, error) {
	if t.stage != StageCityNotFound {
		return t, ErrStageOrder
	}
	name, rest, ok := complementCountyName(t.rest, candidates, NewVariantMatcher(cityVariantsFor(t.prefecture)))
	if !ok {
		return t.drain(), &ParseError{Kind: ParseErrorCity, Input: t.rest}
	}
	return t.foundCity(name, rest), nil
}

// ReadTown normalizes the rest and consumes the first matching town candidate. It tries the text as
// is, then with a bare block number expanded into chome form, then with 大字 prepended. On failure
// the unfiltered rest is kept and the tokenizer ends.
func (t Tokenizer) ReadTown(candidates []string) (Tokenizer, error) {
	if t.stage != StageCityFound {
		return t, ErrStageOrder
	}
	filtered := applyFilters(t.rest, townFilters)
	name, rest, ok := findTown(filtered, candidates)
	if !ok {
		return t.drain(), &ParseError{Kind: ParseErrorTown, Input: t.rest}
	}
	next := t.push(Token{Kind: TokenTown, Value: name})
	next.town = name
	next.rest = rest
	next.stage = StageTownFound
	return next, nil
}

// Finish emits whatever is left as the rest.
func (t Tokenizer) Finish() Tokenizer {
	if t.stage == StageEnd {
		return t
	}
	return t.drain()
}

func (t Tokenizer) foundCity(name, rest string) Tokenizer {
	next := t.push(Token{Kind: TokenCity, Value: name})
	next.city = name
	next.rest = rest
	next.stage = StageCityFound
	return next
}

func (t Tokenizer) drain() Tokenizer {
	next := t.push(Token{Kind: TokenRest, Value: t.rest})
	next.rest = ""
	next.stage = StageEnd
	return next
}

// push copies the token history before appending so branches never share a backing array.
func (t Tokenizer) push(tok Token) Tokenizer {
	t.tokens = append(slices.Clip(t.tokens), tok)
	return t
}

func findTown(input string, candidates []string) (string, string, bool) {
	hypotheses := []string{input}
	if expanded := expandBlockNumber(input); expanded != input {
		hypotheses = append(hypotheses, expanded)
	}
	hypotheses = append(hypotheses, completeOaza(input))

	matcher := NewVariantMatcher(townVariants)
	for _, h := range hypotheses {
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if rest, ok := strings.CutPrefix(h, candidate); ok {
				return candidate, rest, true
			}
			if name, rest, ok := matcher.Match(h, candidate); ok {
				return name, rest, true
			}
		}
	}
	return "", "", false
}
