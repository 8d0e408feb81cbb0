package handler

import (
	"context"
	"errors"
	"net/http"

	"jp-address-api/internal/gazetteer"
	"jp-address-api/internal/models"
	"jp-address-api/internal/parser"
	"jp-address-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ParseHandler handles address decomposition requests
type ParseHandler struct {
	service AddressService
}

// AddressService interface for dependency injection
type AddressService interface {
	Parse(ctx context.Context, address string) (models.ParsedAddress, error)
	ParseBatch(ctx context.Context, addresses []string) ([]service.BatchItem, error)
}

// ErrorResponse describes why decomposition stopped.
type ErrorResponse struct {
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// ParseResponse is the decomposition of one address.
type ParseResponse struct {
	Address models.ParsedAddress `json:"address"`
	Error   *ErrorResponse       `json:"error,omitempty"`
}

// BatchRequest is the body of POST /parse/batch.
type BatchRequest struct {
	Addresses []string `json:"addresses" binding:"required,min=1,max=100"`
}

// NewParseHandler creates a new parse handler
func NewParseHandler(svc AddressService) *ParseHandler {
	return &ParseHandler{service: svc}
}

// Parse handles GET /parse requests
//
//	@Summary	Decompose an address
//	@Param		q	query		string	true	"address"
//	@Success	200	{object}	ParseResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	502	{object}	ParseResponse
//	@Router		/parse [get]
func (h *ParseHandler) Parse(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	address, err := h.service.Parse(c.Request.Context(), query)
	switch status, resp := classify(err); status {
	case http.StatusBadRequest:
		c.JSON(status, gin.H{"error": resp.ErrorMessage})
	case http.StatusInternalServerError:
		c.JSON(status, gin.H{"error": "internal server error"})
	default:
		c.JSON(status, ParseResponse{Address: address, Error: resp})
	}
}

// ParseBatch handles POST /parse/batch requests
//
//	@Summary	Decompose several addresses
//	@Param		body	body		BatchRequest	true	"addresses"
//	@Success	200		{array}		ParseResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/parse/batch [post]
func (h *ParseHandler) ParseBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.service.ParseBatch(c.Request.Context(), req.Addresses)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "batch interrupted"})
		return
	}

	out := make([]ParseResponse, len(items))
	for i, item := range items {
		_, resp := classify(item.Err)
		out[i] = ParseResponse{Address: item.Address, Error: resp}
	}
	c.JSON(http.StatusOK, out)
}

// classify maps an error from the service to a status code and the error body of a response.
// Textual non-matches are not failures of the request: the partial address is still the answer.
func classify(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	if errors.Is(err, service.ErrEmptyAddress) {
		return http.StatusBadRequest, &ErrorResponse{ErrorType: "InvalidInput", ErrorMessage: err.Error()}
	}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return http.StatusOK, &ErrorResponse{ErrorType: perr.Kind.String(), ErrorMessage: perr.Error()}
	}

	if kind, ok := gazetteer.KindOf(err); ok {
		resp := &ErrorResponse{ErrorType: kind.String(), ErrorMessage: err.Error()}
		if kind == gazetteer.ErrorNotFound {
			return http.StatusOK, resp
		}
		return http.StatusBadGateway, resp
	}

	return http.StatusInternalServerError, nil
}
