package supervisor

import "ChordSim/internal/ring"

// Message is the envelope type accepted by the supervisor actor's inbox.
type Message interface {
	isMessage()
}

// InitResult is the reply to InitializeNodes.
type InitResult struct {
	Failed bool
	Reason string
}

// InitializeNodes broadcasts InitFingerTable to every node and waits for
// the full ack barrier before replying.
type InitializeNodes struct {
	Reply chan<- InitResult
}

// SimResult is the reply to StartSimulation.
type SimResult struct {
	Total      int
	Successful int
	TotalHops  int
	DurationMS int64
}

// StartSimulation drives RequestsPerNode lookups from each participant
// node in turn, in ring order, and aggregates the outcome.
type StartSimulation struct {
	RequestsPerNode int
	Reply           chan<- SimResult
}

// LookupResult is the reply to Lookup.
type LookupResult struct {
	Ok      bool
	FoundID ring.ID
	Hops    int
	Reason  string
}

// Lookup issues a single ad-hoc FindSuccessor from From for Target.
type Lookup struct {
	From   ring.ID
	Target ring.ID
	Reply  chan<- LookupResult
}

// GetNodeCount asks for the number of participants in the ring.
type GetNodeCount struct {
	Reply chan<- int
}

// Shutdown tells every node and the supervisor itself to stop.
type Shutdown struct{}

func (InitializeNodes) isMessage() {}
func (StartSimulation) isMessage() {}
func (Lookup) isMessage()          {}
func (GetNodeCount) isMessage()    {}
func (Shutdown) isMessage()        {}
