package trace

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Decisions []DecisionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{Decisions: make([]DecisionRecord, 0)}
}

// Record appends a decision record.
func (st *SimulationTrace) Record(record DecisionRecord) {
	st.Decisions = append(st.Decisions, record)
}
