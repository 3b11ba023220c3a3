package sim

import "fmt"

// Market is a symbolic identifier for a metro freight market, used as the
// origin or destination of a load offer.
type Market string

const (
	CAStockton     Market = "CA_STK"
	CALosAngeles   Market = "CA_LAX"
	AZPhoenix      Market = "AZ_PHO"
	TXDallas       Market = "TX_DAL"
	TXHouston      Market = "TX_HOU"
	NJElizabeth    Market = "NJ_ELI"
	ILChicago      Market = "IL_CHI"
	INIndianapolis Market = "IN_IND"
	MNMinneapolis  Market = "MN_MIN"
	WIMilwaukee    Market = "WI_MIL"
	FLLakeland     Market = "FL_LAK"
	GAAtlanta      Market = "GA_ATL"
)

// Coordinates is an immutable geographic position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// MarketCoordinates holds the default coordinates of each market's center.
var MarketCoordinates = map[Market]Coordinates{
	CAStockton:     {37.9577, -121.2908},
	CALosAngeles:   {34.0522, -118.2437},
	AZPhoenix:      {33.4484, -112.0740},
	TXDallas:       {32.7767, -96.7970},
	TXHouston:      {29.7604, -95.3698},
	NJElizabeth:    {40.6639, -74.2107},
	ILChicago:      {41.8781, -87.6298},
	INIndianapolis: {39.7684, -86.1581},
	MNMinneapolis:  {44.9778, -93.2650},
	WIMilwaukee:    {43.0389, -87.9065},
	FLLakeland:     {28.0395, -81.9498},
	GAAtlanta:      {33.7490, -84.3880},
}

// Markets returns all known markets in a stable order.
func Markets() []Market {
	return []Market{
		CAStockton, CALosAngeles, AZPhoenix, TXDallas, TXHouston, NJElizabeth,
		ILChicago, INIndianapolis, MNMinneapolis, WIMilwaukee, FLLakeland, GAAtlanta,
	}
}

// IsValidMarket returns true if m is one of the known market codes.
func IsValidMarket(m Market) bool {
	_, ok := MarketCoordinates[m]
	return ok
}

// Location is a market code plus a concrete pickup or delivery position.
// Immutable once constructed.
type Location struct {
	Market Market
	Lat    float64
	Lon    float64
}

// NewLocation creates a Location at the market's default coordinates.
// Fails for unrecognized market codes; decision code downstream assumes
// pre-validated Locations and never re-checks.
func NewLocation(m Market) (Location, error) {
	coords, ok := MarketCoordinates[m]
	if !ok {
		return Location{}, fmt.Errorf("unknown market code %q", m)
	}
	return Location{Market: m, Lat: coords.Lat, Lon: coords.Lon}, nil
}

// NewLocationAt creates a Location within a market at explicit coordinates,
// e.g. a jittered pickup position near the market center.
func NewLocationAt(m Market, lat, lon float64) (Location, error) {
	if !IsValidMarket(m) {
		return Location{}, fmt.Errorf("unknown market code %q", m)
	}
	return Location{Market: m, Lat: lat, Lon: lon}, nil
}
