package parser

import (
	"context"
	"fmt"

	"jp-address-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

// Gazetteer supplies the canonical names the parser matches against. Candidate order is preserved.
type Gazetteer interface {
	ListCities(ctx context.Context, prefecture string) ([]models.City, error)
	ListTowns(ctx context.Context, prefecture, city string) ([]models.Town, error)
}

// Parser decomposes addresses into prefecture, city, town and rest.
type Parser struct {
	gazetteer      Gazetteer
	completeCounty bool
	verbose        bool
	logger         zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithCountyNameCompletion toggles the fallback that restores an omitted 郡 when no city matches.
func WithCountyNameCompletion(enabled bool) Option {
	return func(p *Parser) { p.completeCounty = enabled }
}

// WithVerbose logs every stage transition at debug level.
func WithVerbose(verbose bool) Option {
	return func(p *Parser) { p.verbose = verbose }
}

// WithLogger replaces the logger used for stage traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New creates a parser backed by g.
func New(g Gazetteer, opts ...Option) *Parser {
	p := &Parser{
		gazetteer:      g,
		completeCounty: true,
		logger:         log.With().Str("component", "parser").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decomposes address. The returned address is always the best effort so far; the error, if
// any, is a *ParseError naming the stage that failed or the gazetteer's error.
func (p *Parser) Parse(ctx context.Context, address string) (models.ParsedAddress, error) {
	t := NewTokenizer(norm.NFC.String(address))

	t, err := t.ReadPrefecture()
	p.trace(t, err)
	if err != nil {
		return assemble(t.Tokens(), nil), err
	}

	cities, err := p.gazetteer.ListCities(ctx, t.Prefecture())
	if err != nil {
		return assemble(t.Finish().Tokens(), nil), fmt.Errorf("parser: failed to list cities of %s: %w", t.Prefecture(), err)
	}
	cityNames := make([]string, len(cities))
	for i, c := range cities {
		cityNames[i] = c.Name
	}

	t, err = t.ReadCity(cityNames)
	p.trace(t, err)
	if err != nil && p.completeCounty {
		t, err = t.ReadCityWithCountyNameCompletion(cityNames)
		p.trace(t, err)
	}
	if err != nil {
		return assemble(t.Finish().Tokens(), nil), err
	}
	point := cityPoint(cities, t.City())

	towns, err := p.gazetteer.ListTowns(ctx, t.Prefecture(), t.City())
	if err != nil {
		return assemble(t.Finish().Tokens(), point), fmt.Errorf("parser: failed to list towns of %s%s: %w", t.Prefecture(), t.City(), err)
	}
	townNames := make([]string, len(towns))
	for i, town := range towns {
		townNames[i] = town.Name
	}

	t, err = t.ReadTown(townNames)
	p.trace(t, err)
	if err != nil {
		return assemble(t.Tokens(), point), err
	}
	point = townPoint(towns, t.Town())

	return assemble(t.Finish().Tokens(), point), nil
}

func (p *Parser) trace(t Tokenizer, err error) {
	if !p.verbose {
		return
	}
	p.logger.Debug().
		Err(err).
		Str("input", t.Input()).
		Stringer("stage", t.Stage()).
		Str("prefecture", t.Prefecture()).
		Str("city", t.City()).
		Str("town", t.Town()).
		Str("rest", t.Rest()).
		Msg("tokenizer stage")
}

func cityPoint(cities []models.City, name string) *models.Coordinate {
	for _, c := range cities {
		if c.Name == name {
			return c.Coordinate
		}
	}
	return nil
}

func townPoint(towns []models.Town, name string) *models.Coordinate {
	for _, t := range towns {
		if t.Name == name {
			return t.Coordinate
		}
	}
	return nil
}
