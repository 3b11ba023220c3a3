package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carrier-sim/carrier-sim/sim/trace"
)

// LoadSource produces the offers for one pickup date. Implemented by
// workload.Generator; tests may substitute a canned source.
type LoadSource interface {
	GenerateDay(date time.Time, n int) []Load
}

// Simulator drives a full run: for each weekday in the configured range it
// generates a day's offers, pushes them through one OfferProcessor batch,
// and accumulates metrics, trace records, and the labeled dataset.
//
// Single-threaded by design. All mutable state is owned by this instance;
// the partitioned RNG keeps generation and decision draws on isolated
// deterministic streams.
type Simulator struct {
	Config    RunConfig
	Metrics   *Metrics
	Trace     *trace.SimulationTrace
	Processed []LabeledLoad

	source    LoadSource
	processor *OfferProcessor
	rng       *PartitionedRNG
}

// LabeledLoad pairs an offer with its decision outcome, the record shape
// consumed by downstream forecasting and classification pipelines.
type LabeledLoad struct {
	Load     Load
	Accepted bool
}

// NewSimulator wires a simulator from its collaborators. The load source is
// expected to draw from the same PartitionedRNG's workload subsystem so the
// whole run is reproducible from cfg.Seed.
func NewSimulator(cfg RunConfig, policies *PolicyTable, source LoadSource, rng *PartitionedRNG) *Simulator {
	processor := NewOfferProcessor(policies)
	st := trace.NewSimulationTrace()
	processor.Trace = st
	return &Simulator{
		Config:    cfg,
		Metrics:   NewMetrics(),
		Trace:     st,
		source:    source,
		processor: processor,
		rng:       rng,
	}
}

// Run executes the simulation over every weekday in the configured range.
// Each day is one ProcessBatch call, so capacity accumulates within a day
// and resets naturally when the next day's date is presented.
func (s *Simulator) Run() {
	days := WeekdaysBetween(s.Config.StartDate, s.Config.EndDate)
	logrus.Infof("Simulating %d weekdays from %s to %s, %d offers per day",
		len(days), s.Config.StartDate.Format(time.DateOnly),
		s.Config.EndDate.Format(time.DateOnly), s.Config.LoadsPerDay)

	decisionRNG := s.rng.ForSubsystem(SubsystemDecision)
	for _, day := range days {
		loads := s.source.GenerateDay(day, s.Config.LoadsPerDay)
		accepted, rejected := s.processor.ProcessBatch(loads, decisionRNG)
		s.Metrics.ObserveDay(day, accepted, rejected)
		for _, load := range accepted {
			s.Processed = append(s.Processed, LabeledLoad{Load: load, Accepted: true})
		}
		for _, load := range rejected {
			s.Processed = append(s.Processed, LabeledLoad{Load: load})
		}
		logrus.Debugf("%s: %d/%d accepted", day.Format(time.DateOnly), len(accepted), len(loads))
	}
}
