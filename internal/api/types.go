package api

// OffersResponse is the payload of GET /offers/collection/{slug}.
type OffersResponse struct {
	Offers []Offer `json:"offers"`
}

// Offer is a single open offer on a collection. Only the Seaport protocol
// parameters needed for bid derivation are decoded.
type Offer struct {
	OrderHash    string       `json:"order_hash"`
	ProtocolData ProtocolData `json:"protocol_data"`
}

// ProtocolData carries the Seaport order parameters.
type ProtocolData struct {
	Parameters OrderParameters `json:"parameters"`
}

// OrderParameters holds the offer and consideration sides of an order.
// The offer side carries the bid amount in base units; the consideration
// side's start amount is the number of items the bid covers.
type OrderParameters struct {
	Offer         []OrderItem `json:"offer"`
	Consideration []OrderItem `json:"consideration"`
}

// OrderItem is one entry on either side of an order.
type OrderItem struct {
	Token       string `json:"token"`
	StartAmount string `json:"startAmount"`
	EndAmount   string `json:"endAmount"`
}

// ListingsResponse is the payload of GET /listings/collection/{slug}/best.
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
}

// Listing is a single active listing. The price field is optional.
type Listing struct {
	OrderHash string        `json:"order_hash"`
	Price     *ListingPrice `json:"price"`
}

// ListingPrice wraps the current price of a listing.
type ListingPrice struct {
	Current PriceInfo `json:"current"`
}

// PriceInfo is a base-unit amount with its currency and decimal exponent.
type PriceInfo struct {
	Currency string `json:"currency"`
	Decimals int32  `json:"decimals"`
	Value    string `json:"value"`
}
