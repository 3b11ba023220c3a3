package workload

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/carrier-sim/carrier-sim/sim"
)

// Generator synthesizes random load offers. Pure function of its random
// source: deterministic given the same spec and a same-seeded *rand.Rand.
// Implements sim.LoadSource.
type Generator struct {
	spec GenerationSpec
	rng  *rand.Rand
}

// NewGenerator creates a Generator drawing from the given random source.
func NewGenerator(spec GenerationSpec, rng *rand.Rand) *Generator {
	return &Generator{spec: spec, rng: rng}
}

// GenerateDay synthesizes n load offers for the given pickup date.
func (g *Generator) GenerateDay(date time.Time, n int) []sim.Load {
	loads := make([]sim.Load, 0, n)
	for i := 0; i < n; i++ {
		loads = append(loads, g.generateLoad(date))
	}
	return loads
}

// generateLoad builds one offer: distinct random origin and destination
// markets, positions jittered around the market centers, road mileage from
// haversine distance times the road factor, cost from a uniform per-mile
// rate, uniform weight.
func (g *Generator) generateLoad(date time.Time) sim.Load {
	markets := sim.Markets()
	origin := markets[g.rng.Intn(len(markets))]
	destination := origin
	for destination == origin {
		destination = markets[g.rng.Intn(len(markets))]
	}

	originLoc := g.jitteredLocation(origin)
	destLoc := g.jitteredLocation(destination)

	distance := Haversine(originLoc.Lat, originLoc.Lon, destLoc.Lat, destLoc.Lon)
	miles := int(distance * g.spec.RoadFactor)

	ratePerMile := g.spec.MinRatePerMile + g.rng.Float64()*(g.spec.MaxRatePerMile-g.spec.MinRatePerMile)
	cost := roundCents(float64(miles) * ratePerMile)

	weight := g.spec.MinWeightLbs + g.rng.Intn(g.spec.MaxWeightLbs-g.spec.MinWeightLbs+1)

	return sim.Load{
		ID:          uuid.NewString(),
		Origin:      originLoc,
		Destination: destLoc,
		Miles:       miles,
		PickupDate:  date,
		Cost:        cost,
		Weight:      weight,
	}
}

func (g *Generator) jitteredLocation(m sim.Market) sim.Location {
	center := sim.MarketCoordinates[m]
	lat, lon := Jitter(g.rng, center.Lat, center.Lon, g.spec.JitterMiles)
	// Market codes come from sim.Markets(), so construction cannot fail.
	loc, _ := sim.NewLocationAt(m, lat, lon)
	return loc
}

// roundCents rounds a currency amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
