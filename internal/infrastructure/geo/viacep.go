// Package geo resolves Brazilian postal codes to coordinates by
// chaining two public services: ViaCEP turns a CEP into a street
// address, Nominatim turns that address into coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/amconceito/storefront/internal/domain/shared"
)

// ViaCEPClient looks up Brazilian postal codes on viacep.com.br
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// Address is the part of a ViaCEP record needed for geocoding
type Address struct {
	Street string
	City   string
	State  string
}

// NewViaCEPClient creates a ViaCEP client. The http.Client carries the
// request timeout.
func NewViaCEPClient(baseURL string, client *http.Client, logger *zap.Logger) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	// ViaCEP marks unknown CEPs with an "erro" field whose type has
	// changed over the years (bool, then "true"). Presence is the
	// signal, not the value.
	Erro json.RawMessage `json:"erro"`
}

// Lookup resolves a digits-only CEP to an address.
// Unknown CEPs return shared.ErrPostalCodeNotFound; transport and
// decoding failures return shared.ErrUpstream.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, shared.ErrUpstream
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("viacep request failed", zap.String("cep", cep), zap.Error(err))
		return nil, shared.ErrUpstream
	}
	defer resp.Body.Close()

	// CEPs are validated to 8 digits before the lookup, so any
	// non-200 here (including ViaCEP's 400 for malformed input) is a
	// provider problem rather than a bad customer address.
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("viacep returned unexpected status",
			zap.String("cep", cep), zap.Int("status", resp.StatusCode))
		return nil, shared.ErrUpstream
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, shared.ErrUpstream
	}
	if len(body.Erro) > 0 {
		return nil, shared.ErrPostalCodeNotFound
	}

	return &Address{
		Street: body.Logradouro,
		City:   body.Localidade,
		State:  body.UF,
	}, nil
}
