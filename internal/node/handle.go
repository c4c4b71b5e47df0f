package node

// Handle is an opaque, send-only reference to a node actor's inbox.
// It carries no ID of its own, only a mailbox to deliver messages to;
// two handles are the same actor exactly when their inboxes compare
// equal, which is what Equal checks.
type Handle struct {
	inbox chan<- Message
}

// Send delivers m to the node's inbox. The inbox is unbuffered, so Send
// blocks until the actor's message loop picks the message up, matching
// per-sender FIFO delivery; once the actor has handled Shutdown, nothing
// drains the inbox and Send blocks indefinitely.
func (h Handle) Send(m Message) {
	h.inbox <- m
}

// Equal reports whether h and other refer to the same actor's inbox.
func (h Handle) Equal(other Handle) bool {
	return h.inbox == other.inbox
}
