package frame

import "sync"

// Mailbox carries work from background goroutines onto the frame loop. Post is
// safe from any goroutine; Drain must only be called from the loop.
type Mailbox struct {
	mu    sync.Mutex
	queue []func()
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Post(fn func()) {
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

// Drain runs everything posted so far, in order, and returns how many ran. Work
// posted while draining waits for the next call.
func (m *Mailbox) Drain() int {
	m.mu.Lock()
	batch := m.queue
	m.queue = nil
	m.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
