package gazetteer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jp-address-api/internal/models"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// HTTPClient reads the gazetteer from a static JSON API laid out as
// {base}/{prefecture}/master.json and {base}/{prefecture}/{city}.json.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type prefectureMaster struct {
	Name   string        `json:"name"`
	Cities []models.City `json:"cities"`
}

type cityMaster struct {
	Name  string        `json:"name"`
	Towns []models.Town `json:"towns"`
}

// NewHTTPClient creates a client that waits at least interval between requests.
func NewHTTPClient(baseURL string, timeout, interval time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// ListCities fetches the city list of prefecture.
func (c *HTTPClient) ListCities(ctx context.Context, prefecture string) ([]models.City, error) {
	op := citiesOp(prefecture)
	var master prefectureMaster
	if err := c.get(ctx, op, &master, prefecture, "master.json"); err != nil {
		return nil, err
	}
	if len(master.Cities) == 0 {
		return nil, &Error{Kind: ErrorNotFound, Op: op}
	}
	return master.Cities, nil
}

// ListTowns fetches the town list of city.
func (c *HTTPClient) ListTowns(ctx context.Context, prefecture, city string) ([]models.Town, error) {
	op := townsOp(prefecture, city)
	var master cityMaster
	if err := c.get(ctx, op, &master, prefecture, city+".json"); err != nil {
		return nil, err
	}
	if len(master.Towns) == 0 {
		return nil, &Error{Kind: ErrorNotFound, Op: op}
	}
	return master.Towns, nil
}

func (c *HTTPClient) get(ctx context.Context, op string, v any, segments ...string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: ErrorFetch, Op: op, Err: fmt.Errorf("rate limit wait failed: %w", err)}
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	endpoint := c.baseURL + "/" + strings.Join(escaped, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Kind: ErrorFetch, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: ErrorFetch, Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: ErrorNotFound, Op: op}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &Error{Kind: ErrorFetch, Op: op, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Kind: ErrorDeserialize, Op: op, Err: err}
	}
	return nil
}
