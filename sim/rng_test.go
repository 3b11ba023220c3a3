package sim

import (
	"math"
	"testing"
)

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 5; i++ {
		v1 := rng1.ForSubsystem(SubsystemDecision).Float64()
		v2 := rng2.ForSubsystem(SubsystemDecision).Float64()
		if v1 != v2 {
			t.Errorf("draw %d: %v vs %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing heavily from the workload stream must not shift the
	// decision stream.
	drained := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 100; i++ {
		drained.ForSubsystem(SubsystemWorkload).Float64()
	}

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	if got, want := drained.ForSubsystem(SubsystemDecision).Float64(), fresh.ForSubsystem(SubsystemDecision).Float64(); got != want {
		t.Errorf("decision stream shifted by workload draws: %v vs %v", got, want)
	}
}

func TestPartitionedRNG_DifferentSubsystemsDiffer(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	w := rng.ForSubsystem(SubsystemWorkload).Float64()
	d := rng.ForSubsystem(SubsystemDecision).Float64()
	if w == d {
		t.Error("workload and decision subsystems drew the same first value")
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemWorkload) != rng.ForSubsystem(SubsystemWorkload) {
		t.Error("ForSubsystem returned different instances for the same name")
	}
}

func TestPartitionedRNG_ExtremeSeeds(t *testing.T) {
	for _, seed := range []int64{0, -1, math.MaxInt64, math.MinInt64} {
		rng := NewPartitionedRNG(NewSimulationKey(seed))
		v := rng.ForSubsystem(SubsystemDecision).Float64()
		if v < 0 || v >= 1 {
			t.Errorf("seed %d: Float64() = %v, want [0, 1)", seed, v)
		}
		if rng.Key() != SimulationKey(seed) {
			t.Errorf("Key() = %v, want %v", rng.Key(), seed)
		}
	}
}

func TestFnv1a64_DistinctSubsystemHashes(t *testing.T) {
	if fnv1a64(SubsystemWorkload) == fnv1a64(SubsystemDecision) {
		t.Error("subsystem hashes collide")
	}
	if fnv1a64(SubsystemWorkload) != fnv1a64(SubsystemWorkload) {
		t.Error("fnv1a64 not deterministic")
	}
}
