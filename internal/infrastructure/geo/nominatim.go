package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/amconceito/storefront/internal/domain/shipping"
)

// NominatimClient geocodes street addresses via the OpenStreetMap
// Nominatim search API. Nominatim's usage policy requires an
// identifying User-Agent.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
}

// NewNominatimClient creates a Nominatim client
func NewNominatimClient(baseURL, userAgent string, client *http.Client, logger *zap.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search geocodes an address. An empty result set means the address
// could not be located and maps to shared.ErrPostalCodeNotFound.
func (c *NominatimClient) Search(ctx context.Context, address *Address) (shipping.Coordinates, error) {
	// Some CEPs (whole-city codes) come back from ViaCEP without a
	// street. Leaving the empty field in confuses Nominatim's parser,
	// so it is dropped from the query.
	parts := make([]string, 0, 4)
	if address.Street != "" {
		parts = append(parts, address.Street)
	}
	parts = append(parts, address.City, address.State, "Brasil")
	query := strings.Join(parts, ", ")

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return shipping.Coordinates{}, shared.ErrUpstream
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("nominatim request failed", zap.String("query", query), zap.Error(err))
		return shipping.Coordinates{}, shared.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("nominatim returned unexpected status",
			zap.String("query", query), zap.Int("status", resp.StatusCode))
		return shipping.Coordinates{}, shared.ErrUpstream
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return shipping.Coordinates{}, shared.ErrUpstream
	}
	if len(results) == 0 {
		return shipping.Coordinates{}, shared.ErrPostalCodeNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return shipping.Coordinates{}, shared.ErrUpstream
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return shipping.Coordinates{}, shared.ErrUpstream
	}

	return shipping.Coordinates{Lat: lat, Lon: lon}, nil
}
