package shipping

import (
	"context"
	"errors"
	"regexp"

	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/amconceito/storefront/internal/domain/shipping"
)

// MethodPickup selects in-store pickup, which skips geocoding entirely
const MethodPickup = "pickup"

const pickupMessage = "Retirada no ponto: Frete grátis"
const deliveryMessage = "Chega entre 1 a 7 dias úteis."

var nonDigits = regexp.MustCompile(`\D`)

// Geocoder resolves a Brazilian CEP to coordinates. Implementations
// return shared.ErrPostalCodeNotFound when the CEP does not exist and
// shared.ErrUpstream when a provider fails.
type Geocoder interface {
	Geocode(ctx context.Context, cep string) (shipping.Coordinates, error)
}

// Service computes shipping quotes from the store's pickup point
type Service struct {
	geocoder  Geocoder
	pickupCEP string
}

// NewService creates a shipping Service anchored at the given pickup CEP
func NewService(geocoder Geocoder, pickupCEP string) *Service {
	return &Service{
		geocoder:  geocoder,
		pickupCEP: pickupCEP,
	}
}

// Estimate quotes shipping for a destination CEP. Pickup orders are free
// and never hit the geocoder.
func (s *Service) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error) {
	if req.Method == MethodPickup {
		return &EstimateResponse{
			Success:      true,
			ShippingCost: 0,
			DistanceKm:   0,
			Message:      pickupMessage,
		}, nil
	}

	cep := NormalizeCEP(req.CEP)
	if len(cep) != 8 {
		return nil, shared.ErrInvalidPostalCode
	}

	// Customer CEP first, so an unresolvable destination reports as
	// not-found even when the pickup point itself fails to resolve.
	destination, err := s.geocoder.Geocode(ctx, cep)
	if err != nil {
		return nil, err
	}
	origin, err := s.geocoder.Geocode(ctx, NormalizeCEP(s.pickupCEP))
	if err != nil {
		// The pickup CEP comes from configuration; failing to resolve
		// it is an operator problem, not a bad customer address.
		if errors.Is(err, shared.ErrPostalCodeNotFound) {
			return nil, shared.ErrUpstream
		}
		return nil, err
	}

	distance := shipping.Haversine(origin, destination)
	cost := shipping.DeliveryCost(distance)

	return &EstimateResponse{
		Success:      true,
		ShippingCost: shipping.Round2(cost),
		DistanceKm:   shipping.Round2(distance),
		Message:      deliveryMessage,
	}, nil
}

// NormalizeCEP strips everything but digits from a CEP
func NormalizeCEP(cep string) string {
	return nonDigits.ReplaceAllString(cep, "")
}
