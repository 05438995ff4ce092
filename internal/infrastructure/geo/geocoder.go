package geo

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	shippingapp "github.com/amconceito/storefront/internal/application/shipping"
	"github.com/amconceito/storefront/internal/domain/shipping"
	"github.com/amconceito/storefront/internal/infrastructure/config"
)

// Ensure CEPGeocoder implements the shipping geocoder port
var _ shippingapp.Geocoder = (*CEPGeocoder)(nil)

// CEPGeocoder resolves a CEP to coordinates: ViaCEP for the address,
// Nominatim for the coordinates. Calls block the request only; there is
// no retry.
type CEPGeocoder struct {
	viaCEP    *ViaCEPClient
	nominatim *NominatimClient
}

// NewCEPGeocoder builds the chained geocoder from configuration. Both
// providers share one http.Client carrying the configured timeout.
func NewCEPGeocoder(cfg *config.GeocoderConfig, logger *zap.Logger) *CEPGeocoder {
	client := &http.Client{Timeout: cfg.Timeout}
	return &CEPGeocoder{
		viaCEP:    NewViaCEPClient(cfg.ViaCEPBaseURL, client, logger),
		nominatim: NewNominatimClient(cfg.NominatimBaseURL, cfg.UserAgent, client, logger),
	}
}

// Geocode implements shippingapp.Geocoder
func (g *CEPGeocoder) Geocode(ctx context.Context, cep string) (shipping.Coordinates, error) {
	address, err := g.viaCEP.Lookup(ctx, cep)
	if err != nil {
		return shipping.Coordinates{}, err
	}
	return g.nominatim.Search(ctx, address)
}
