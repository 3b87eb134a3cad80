package runtime

import "fmt"

// Command is one UI-to-demod instruction (e.g. "tune", "set gate",
// "clear hold"). Kind names the command; Payload carries whatever
// typed argument that kind needs.
type Command struct {
	Kind    string
	Payload interface{}
}

// CommandQueue is a bounded multi-producer/single-consumer queue: any
// number of caller goroutines may Send, only the demod thread calls
// Recv. Implemented as a buffered channel, the natural Go MPSC
// primitive — many senders, one receiver, backpressure via the
// buffer.
type CommandQueue struct {
	ch chan Command
}

// NewCommandQueue builds a queue with the given bound.
func NewCommandQueue(capacity int) *CommandQueue {
	return &CommandQueue{ch: make(chan Command, capacity)}
}

// Send enqueues a command, returning an error rather than blocking if
// the queue is full.
func (q *CommandQueue) Send(cmd Command) error {
	select {
	case q.ch <- cmd:
		return nil
	default:
		return fmt.Errorf("command queue full, dropping %q", cmd.Kind)
	}
}

// Recv returns the next command and true, or false if the queue is
// empty right now. The demod thread calls this once per tick rather
// than blocking, so a full decode cycle never stalls on command
// delivery.
func (q *CommandQueue) Recv() (Command, bool) {
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return Command{}, false
	}
}

// Len reports the number of commands currently queued.
func (q *CommandQueue) Len() int { return len(q.ch) }
