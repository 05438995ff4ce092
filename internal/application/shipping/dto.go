package shipping

// EstimateRequest represents a shipping estimate request from the
// checkout page.
type EstimateRequest struct {
	CEP    string `json:"cep"`
	Method string `json:"method"`
}

// EstimateResponse is the wire shape consumed by the checkout page.
// The field set is fixed; clients rely on it.
type EstimateResponse struct {
	Success      bool    `json:"success"`
	ShippingCost float64 `json:"shipping_cost"`
	DistanceKm   float64 `json:"distance_km"`
	Message      string  `json:"message"`
}
