// Package supervisor implements the orchestrator actor: it creates node
// actors, drives the finger-table init barrier, runs the workload driver,
// and aggregates lookup statistics.
package supervisor

import (
	"context"
	"math/rand"
	"time"

	"ChordSim/internal/logger"
	"ChordSim/internal/node"
	"ChordSim/internal/ring"

	"golang.org/x/sync/errgroup"
)

const (
	perAckTimeout = 50 * time.Second
	lookupTimeout = 5 * time.Second
)

// Handle is a send-only reference to the supervisor actor's inbox.
type Handle struct {
	inbox chan<- Message
}

// Send delivers m to the supervisor's inbox.
func (h Handle) Send(m Message) {
	h.inbox <- m
}

// Supervisor is the actor's private state.
type Supervisor struct {
	space    ring.Space
	ids      []ring.ID
	registry map[ring.ID]node.Handle

	rng *rand.Rand
	lgr logger.Logger

	inbox chan Message
}

// Spawn creates n node actors evenly distributed over space, starts the
// supervisor actor, and returns its handle. Nodes are not yet
// finger-table-initialized; send InitializeNodes before routing lookups.
func Spawn(space ring.Space, n int, seed int64, lgr logger.Logger) Handle {
	ids := space.EvenlyDistributedIDs(n)
	registry := make(map[ring.ID]node.Handle, n)
	for _, id := range ids {
		registry[id] = node.Spawn(space, id, lgr)
	}

	inbox := make(chan Message)
	s := &Supervisor{
		space:    space,
		ids:      ids,
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
		lgr:      lgr.Named("supervisor"),
		inbox:    inbox,
	}
	go s.run()
	return Handle{inbox: inbox}
}

func (s *Supervisor) run() {
	for msg := range s.inbox {
		switch m := msg.(type) {
		case InitializeNodes:
			m.Reply <- s.initializeNodes()
		case StartSimulation:
			m.Reply <- s.startSimulation(m.RequestsPerNode)
		case Lookup:
			m.Reply <- s.lookup(m.From, m.Target)
		case GetNodeCount:
			m.Reply <- len(s.ids)
		case Shutdown:
			for _, h := range s.registry {
				h.Send(node.Shutdown{})
			}
			return
		}
	}
}

// initializeNodes broadcasts InitFingerTable to every node concurrently
// (one goroutine per node via errgroup, so a slow node never serializes
// the rest of the broadcast) and waits for the full N-ack barrier.
func (s *Supervisor) initializeNodes() InitResult {
	registrySnapshot := make(map[ring.ID]node.Handle, len(s.registry))
	for id, h := range s.registry {
		registrySnapshot[id] = h
	}

	ack := make(chan node.InitAck, len(s.registry))

	var g errgroup.Group
	for _, h := range s.registry {
		h := h
		g.Go(func() error {
			h.Send(node.InitFingerTable{Registry: registrySnapshot, Ack: ack})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return InitResult{Failed: true, Reason: err.Error()}
	}

	for i := 0; i < len(s.registry); i++ {
		select {
		case <-ack:
		case <-time.After(perAckTimeout):
			return InitResult{Failed: true, Reason: "timed out waiting for node init ack"}
		}
	}

	s.lgr.Info("ring initialized", logger.F("nodes", len(s.registry)))
	return InitResult{}
}

// startSimulation runs requestsPerNode lookups from each node in ring
// order, drawing targets from the supervisor's own seeded PRNG so a run
// is fully reproducible given (n, requestsPerNode, seed).
func (s *Supervisor) startSimulation(requestsPerNode int) SimResult {
	start := time.Now()
	var total, successful, totalHops int

	for _, from := range s.ids {
		h := s.registry[from]
		for i := 0; i < requestsPerNode; i++ {
			target := ring.ID(s.rng.Intn(int(s.space.Size)))
			total++

			reply := make(chan node.FoundSuccessor, 1)
			h.Send(node.FindSuccessor{Target: target, Reply: reply})

			select {
			case fs := <-reply:
				successful++
				totalHops += fs.Hops
			case <-time.After(lookupTimeout):
				s.lgr.Warn("lookup timed out", logger.F("from", uint32(from)), logger.F("target", uint32(target)))
			}
		}
	}

	return SimResult{
		Total:      total,
		Successful: successful,
		TotalHops:  totalHops,
		DurationMS: time.Since(start).Milliseconds(),
	}
}

func (s *Supervisor) lookup(from, target ring.ID) LookupResult {
	h, ok := s.registry[from]
	if !ok {
		return LookupResult{Ok: false, Reason: "unknown start node"}
	}

	reply := make(chan node.FoundSuccessor, 1)
	h.Send(node.FindSuccessor{Target: target, Reply: reply})

	select {
	case fs := <-reply:
		return LookupResult{Ok: true, FoundID: fs.ID, Hops: fs.Hops}
	case <-time.After(lookupTimeout):
		return LookupResult{Ok: false, Reason: "lookup timed out"}
	}
}

// InitializeWithContext wraps a synchronous InitializeNodes call in a
// caller-supplied deadline, so cmd/chordsim can bound the whole barrier
// at the 90s external ceiling without the supervisor actor itself
// needing to know about contexts.
func InitializeWithContext(ctx context.Context, h Handle) InitResult {
	reply := make(chan InitResult, 1)
	h.Send(InitializeNodes{Reply: reply})
	select {
	case r := <-reply:
		return r
	case <-ctx.Done():
		return InitResult{Failed: true, Reason: ctx.Err().Error()}
	}
}

// StartSimulationWithContext mirrors InitializeWithContext for the 180s
// simulation ceiling.
func StartSimulationWithContext(ctx context.Context, h Handle, requestsPerNode int) SimResult {
	reply := make(chan SimResult, 1)
	h.Send(StartSimulation{RequestsPerNode: requestsPerNode, Reply: reply})
	select {
	case r := <-reply:
		return r
	case <-ctx.Done():
		return SimResult{}
	}
}
