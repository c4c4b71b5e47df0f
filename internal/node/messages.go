package node

import "ChordSim/internal/ring"

// Message is the envelope type for everything a node actor's inbox
// accepts. Each concrete message below matches one row of the node
// actor's message table.
type Message interface {
	isMessage()
}

// OptionalHandle models a successor/predecessor/finger slot that may be
// absent (before InitFingerTable, or a single node's predecessor).
type OptionalHandle struct {
	Handle Handle
	Ok     bool
}

// GetID asks the node for its own id.
type GetID struct {
	Reply chan<- ring.ID
}

// GetSuccessor asks the node for its current successor handle.
type GetSuccessor struct {
	Reply chan<- OptionalHandle
}

// SetSuccessor overwrites the node's successor.
type SetSuccessor struct {
	Successor Handle
}

// SetPredecessor overwrites the node's predecessor.
type SetPredecessor struct {
	Predecessor Handle
}

// InitAck is sent on an InitFingerTable's shared ack mailbox once the
// node has finished building its finger table.
type InitAck struct {
	NodeID ring.ID
}

// InitFingerTable builds the node's finger table from the supplied
// registry snapshot and sets successor = finger[0].
type InitFingerTable struct {
	Registry map[ring.ID]Handle
	Ack      chan<- InitAck
}

// GetFingerEntry asks for the finger-table handle at the given index.
type GetFingerEntry struct {
	Index int
	Reply chan<- OptionalHandle
}

// FoundSuccessor is the terminal reply to a FindSuccessor lookup,
// delivered directly to the original requester's Reply channel by
// whichever node in the forwarding chain resolves it.
type FoundSuccessor struct {
	ID     ring.ID
	Handle Handle
	Hops   int
}

// FindSuccessor routes a lookup for Target, forwarding via
// ClosestPrecedingFinger hops until the responsible successor is found.
// Hops counts forwarding steps taken so far and is incremented once per
// hop; Reply is carried along unchanged so any node in the chain can
// deliver the final answer directly back to the original caller.
type FindSuccessor struct {
	Target ring.ID
	Hops   int
	Reply  chan<- FoundSuccessor
}

// ClosestPrecedingFinger asks the node for the highest-index finger
// whose id lies strictly between self and Target.
type ClosestPrecedingFinger struct {
	Target ring.ID
	Reply  chan<- OptionalHandle
}

// Shutdown tells the actor's message loop to exit.
type Shutdown struct{}

func (GetID) isMessage()                  {}
func (GetSuccessor) isMessage()           {}
func (SetSuccessor) isMessage()           {}
func (SetPredecessor) isMessage()         {}
func (InitFingerTable) isMessage()        {}
func (GetFingerEntry) isMessage()         {}
func (FindSuccessor) isMessage()          {}
func (ClosestPrecedingFinger) isMessage() {}
func (Shutdown) isMessage()               {}
