// Package node implements the Chord node actor: one goroutine per
// participant, owning id/successor/predecessor/finger-table state
// exclusively, reachable only through its inbox channel. State is never
// shared or locked; every transition happens inside the actor's own
// message loop.
package node

import (
	"time"

	"ChordSim/internal/logger"
	"ChordSim/internal/ring"
)

const (
	// getIDTimeout bounds a GetID round-trip during a finger walk.
	getIDTimeout = 100 * time.Millisecond
	// subQueryTimeout bounds a FindSuccessor's GetID query of its own
	// successor's id.
	subQueryTimeout = time.Second
)

// Node is the actor's private state. Only the actor's own goroutine
// (run) ever reads or writes these fields.
type Node struct {
	space ring.Space
	id    ring.ID

	successor   OptionalHandle
	predecessor OptionalHandle
	fingers     []OptionalHandle // len == space.Bits

	self Handle // this node's own handle, for single-node degenerate replies

	registry    map[ring.ID]Handle
	initialized bool

	lgr logger.Logger

	inbox chan Message
}

// Spawn starts a node actor and returns its Handle. The caller is
// responsible for eventually sending Shutdown.
func Spawn(space ring.Space, id ring.ID, lgr logger.Logger) Handle {
	inbox := make(chan Message)
	n := &Node{
		space:   space,
		id:      id,
		fingers: make([]OptionalHandle, space.Bits),
		lgr:     lgr.Named("node").With(logger.F("id", uint32(id))),
		inbox:   inbox,
	}
	h := Handle{inbox: inbox}
	n.self = h
	go n.run()
	return h
}

func (n *Node) run() {
	for msg := range n.inbox {
		switch m := msg.(type) {
		case GetID:
			m.Reply <- n.id
		case GetSuccessor:
			m.Reply <- n.successor
		case SetSuccessor:
			n.successor = OptionalHandle{Handle: m.Successor, Ok: true}
		case SetPredecessor:
			n.predecessor = OptionalHandle{Handle: m.Predecessor, Ok: true}
		case InitFingerTable:
			n.handleInit(m)
		case GetFingerEntry:
			if m.Index >= 0 && m.Index < len(n.fingers) {
				m.Reply <- n.fingers[m.Index]
			} else {
				m.Reply <- OptionalHandle{}
			}
		case FindSuccessor:
			n.handleFindSuccessor(m)
		case ClosestPrecedingFinger:
			m.Reply <- n.closestPrecedingFinger(m.Target)
		case Shutdown:
			return
		}
	}
}

// handleInit builds the finger table against the supplied registry
// snapshot: for each i in [0, m), finger[i] = the participant whose id is
// the first clockwise from (self.id + 2^i) mod RING. Pure computation,
// no messaging between nodes — the global registry is the simulation's
// deliberate stand-in for Chord's live join protocol.
func (n *Node) handleInit(m InitFingerTable) {
	n.registry = m.Registry

	sorted := make([]ring.ID, 0, len(m.Registry))
	for id := range m.Registry {
		sorted = append(sorted, id)
	}
	sorted = ring.SortIDs(sorted)

	for i := 0; i < len(n.fingers); i++ {
		start := n.space.AddMod(n.id, n.space.Pow2(i))
		succID := ring.FindSuccessorInSorted(start, sorted)
		if h, ok := m.Registry[succID]; ok {
			n.fingers[i] = OptionalHandle{Handle: h, Ok: true}
		}
	}

	if n.fingers[0].Ok {
		n.successor = n.fingers[0]
	}
	n.initialized = true

	n.lgr.Debug("finger table initialized", logger.F("fingers", len(n.fingers)))
	m.Ack <- InitAck{NodeID: n.id}
}

// handleFindSuccessor implements the Chord recursive lookup: at most one
// response is ever delivered, directly to the original caller's Reply
// channel, regardless of how many hops the forwarding chain takes.
func (n *Node) handleFindSuccessor(m FindSuccessor) {
	if !n.initialized || !n.successor.Ok {
		// Pre-init or successor-less: degrade gracefully and answer
		// with self rather than block or error.
		m.Reply <- FoundSuccessor{ID: n.id, Handle: n.self, Hops: m.Hops}
		return
	}

	succID, ok := n.idOf(n.successor.Handle, subQueryTimeout)
	if !ok {
		// Successor unresponsive within the bound: best-effort fallback.
		m.Reply <- FoundSuccessor{ID: n.id, Handle: n.successor.Handle, Hops: m.Hops}
		return
	}

	if n.space.Between(m.Target, n.id, succID) {
		m.Reply <- FoundSuccessor{ID: succID, Handle: n.successor.Handle, Hops: m.Hops}
		return
	}

	closest := n.closestPrecedingFinger(m.Target)
	if closest.Ok {
		forwarded := FindSuccessor{Target: m.Target, Hops: m.Hops + 1, Reply: m.Reply}
		closest.Handle.Send(forwarded)
		return
	}

	// No closer node found: fall back to the successor.
	m.Reply <- FoundSuccessor{ID: succID, Handle: n.successor.Handle, Hops: m.Hops}
}

// closestPrecedingFinger walks the finger table from the highest index
// down, returning the first finger strictly between self and target. A
// finger whose owner doesn't answer GetID within the bounded wait is
// skipped rather than failing the whole walk, and a finger pointing back
// at this node is never returned.
func (n *Node) closestPrecedingFinger(target ring.ID) OptionalHandle {
	for i := len(n.fingers) - 1; i >= 0; i-- {
		f := n.fingers[i]
		if !f.Ok || f.Handle.Equal(n.self) {
			continue
		}
		fid, ok := n.idOf(f.Handle, getIDTimeout)
		if !ok {
			continue
		}
		if n.space.BetweenExclusive(fid, n.id, target) {
			return f
		}
	}
	return OptionalHandle{}
}

// askClosestPrecedingFinger sends a ClosestPrecedingFinger request to h
// and waits up to timeout for the reply.
func (n *Node) askClosestPrecedingFinger(h Handle, target ring.ID, timeout time.Duration) OptionalHandle {
	reply := make(chan OptionalHandle, 1)
	h.Send(ClosestPrecedingFinger{Target: target, Reply: reply})
	select {
	case r := <-reply:
		return r
	case <-time.After(timeout):
		return OptionalHandle{}
	}
}

// idOf returns h's id, short-circuiting to local state when h is this
// node's own handle. A node's successor or finger entries routinely
// point back at itself in small rings (the single-node ring is the
// extreme case: every finger is self); messaging yourself from inside
// your own message loop would deadlock, since nothing else is left to
// drain the inbox until this handler returns.
func (n *Node) idOf(h Handle, timeout time.Duration) (ring.ID, bool) {
	if h.Equal(n.self) {
		return n.id, true
	}
	return n.getIDBounded(h, timeout)
}

// getIDBounded sends a GetID request to h and waits up to timeout.
func (n *Node) getIDBounded(h Handle, timeout time.Duration) (ring.ID, bool) {
	reply := make(chan ring.ID, 1)
	h.Send(GetID{Reply: reply})
	select {
	case id := <-reply:
		return id, true
	case <-time.After(timeout):
		return 0, false
	}
}
