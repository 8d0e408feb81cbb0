package service

import (
	"context"
	"errors"
	"testing"

	"jp-address-api/internal/models"
	"jp-address-api/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAddressParser is a mock implementation of the AddressParser interface
type MockAddressParser struct {
	mock.Mock
}

// Parse implements AddressParser.
func (m *MockAddressParser) Parse(ctx context.Context, address string) (models.ParsedAddress, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.ParsedAddress), args.Error(1)
}

func TestAddressService_Parse(t *testing.T) {
	parsed := models.ParsedAddress{
		Prefecture: "東京都",
		City:       "千代田区",
		Town:       "丸の内一丁目",
		Rest:       "1-1",
		Metadata:   models.Metadata{Depth: 3},
	}
	partial := models.ParsedAddress{
		Prefecture: "東京都",
		Rest:       "湊区芝公園",
		Metadata:   models.Metadata{Depth: 1},
	}

	tests := []struct {
		name        string
		address     string
		mockResult  models.ParsedAddress
		mockError   error
		expected    models.ParsedAddress
		expectError bool
	}{
		{
			name:        "empty address",
			address:     "",
			expectError: true,
		},
		{
			name:        "blank address",
			address:     "   ",
			expectError: true,
		},
		{
			name:       "successful parse",
			address:    "東京都千代田区丸の内1-1",
			mockResult: parsed,
			expected:   parsed,
		},
		{
			name:        "partial parse",
			address:     "東京都湊区芝公園",
			mockResult:  partial,
			mockError:   &parser.ParseError{Kind: parser.ParseErrorCity, Input: "湊区芝公園"},
			expected:    partial,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockParser := new(MockAddressParser)
			service := NewAddressService(mockParser, 2)

			called := tt.mockResult != (models.ParsedAddress{})
			if called {
				mockParser.On("Parse", mock.Anything, tt.address).Return(tt.mockResult, tt.mockError)
			}

			// Execute
			result, err := service.Parse(context.Background(), tt.address)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)

			if called {
				mockParser.AssertExpectations(t)
			} else {
				assert.ErrorIs(t, err, ErrEmptyAddress)
				mockParser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAddressService_Parse_KeepsErrorKind(t *testing.T) {
	mockParser := new(MockAddressParser)
	mockParser.On("Parse", mock.Anything, "青盛県").Return(models.ParsedAddress{Rest: "青盛県"},
		&parser.ParseError{Kind: parser.ParseErrorPrefecture, Input: "青盛県"})

	_, err := NewAddressService(mockParser, 1).Parse(context.Background(), "青盛県")

	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.ParseErrorPrefecture, perr.Kind)
}

func TestAddressService_ParseBatch(t *testing.T) {
	mockParser := new(MockAddressParser)
	addresses := []string{"東京都千代田区丸の内1-1", "", "青盛県青森市"}
	mockParser.On("Parse", mock.Anything, addresses[0]).Return(models.ParsedAddress{Prefecture: "東京都", City: "千代田区"}, nil)
	mockParser.On("Parse", mock.Anything, addresses[2]).Return(models.ParsedAddress{Rest: addresses[2]},
		&parser.ParseError{Kind: parser.ParseErrorPrefecture, Input: addresses[2]})

	items, err := NewAddressService(mockParser, 2).ParseBatch(context.Background(), addresses)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.NoError(t, items[0].Err)
	assert.Equal(t, "千代田区", items[0].Address.City)
	assert.ErrorIs(t, items[1].Err, ErrEmptyAddress)
	assert.Error(t, items[2].Err)
	assert.Equal(t, addresses[2], items[2].Address.Rest)
	mockParser.AssertExpectations(t)
}

func TestAddressService_ParseBatch_Empty(t *testing.T) {
	_, err := NewAddressService(new(MockAddressParser), 2).ParseBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestAddressService_ParseBatch_Canceled(t *testing.T) {
	mockParser := new(MockAddressParser)
	mockParser.On("Parse", mock.Anything, mock.Anything).Return(models.ParsedAddress{}, context.Canceled).Maybe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAddressService(mockParser, 2).ParseBatch(ctx, []string{"東京都"})
	assert.ErrorIs(t, err, context.Canceled)
}
