package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jp-address-api/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyAddress is returned for blank input.
var ErrEmptyAddress = errors.New("service: address cannot be empty")

// AddressService contains the business logic around address decomposition
type AddressService struct {
	parser      AddressParser
	concurrency int
}

// AddressParser interface for dependency injection
type AddressParser interface {
	Parse(ctx context.Context, address string) (models.ParsedAddress, error)
}

// BatchItem is the outcome of one address of a batch.
type BatchItem struct {
	Address models.ParsedAddress
	Err     error
}

// NewAddressService creates a new address service that parses at most concurrency addresses of a
// batch at once.
func NewAddressService(parser AddressParser, concurrency int) *AddressService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AddressService{parser: parser, concurrency: concurrency}
}

// Parse decomposes a single address. The partial result is returned together with any error.
func (s *AddressService) Parse(ctx context.Context, address string) (models.ParsedAddress, error) {
	if strings.TrimSpace(address) == "" {
		return models.ParsedAddress{}, ErrEmptyAddress
	}

	result, err := s.parser.Parse(ctx, address)
	if err != nil {
		return result, fmt.Errorf("service: failed to parse address: %w", err)
	}

	return result, nil
}

// ParseBatch decomposes every address concurrently. Results keep input order and each item carries
// its own error; the call itself only fails for an empty batch or a canceled context.
func (s *AddressService) ParseBatch(ctx context.Context, addresses []string) ([]BatchItem, error) {
	if len(addresses) == 0 {
		return nil, ErrEmptyAddress
	}

	items := make([]BatchItem, len(addresses))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, address := range addresses {
		g.Go(func() error {
			result, err := s.Parse(ctx, address)
			items[i] = BatchItem{Address: result, Err: err}
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return items, fmt.Errorf("service: batch interrupted: %w", err)
	}

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	zerolog.Ctx(ctx).Debug().
		Int("addresses", len(addresses)).
		Int("failed", failed).
		Msg("parsed address batch")

	return items, nil
}
