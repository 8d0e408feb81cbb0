package parser

import (
	"errors"
	"fmt"
)

// ErrStageOrder is returned when a tokenizer operation is called from a stage that does not allow it.
var ErrStageOrder = errors.New("parser: operation not allowed in current stage")

// ParseErrorKind names the stage at which textual matching stopped.
type ParseErrorKind int

const (
	ParseErrorPrefecture ParseErrorKind = iota + 1
	ParseErrorCity
	ParseErrorTown
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorPrefecture:
		return "Prefecture"
	case ParseErrorCity:
		return "City"
	case ParseErrorTown:
		return "Town"
	default:
		return "Unknown"
	}
}

// ParseError reports that no candidate matched the unconsumed input at one stage.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorPrefecture:
		return fmt.Sprintf("parser: failed to parse prefecture name: %q", e.Input)
	case ParseErrorCity:
		return fmt.Sprintf("parser: failed to parse city name: %q", e.Input)
	case ParseErrorTown:
		return fmt.Sprintf("parser: failed to parse town name: %q", e.Input)
	default:
		return fmt.Sprintf("parser: failed to parse %q", e.Input)
	}
}
