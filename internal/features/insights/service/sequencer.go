package service

import "sync"

// Channel separates independent request streams of one client.
type Channel string

const (
	ChannelForecast Channel = "forecast"
	ChannelChat     Channel = "chat"
)

type streamKey struct {
	client  string
	channel Channel
}

// Sequencer hands out increasing request tokens per client and channel so
// that a response finishing after a newer request started can be discarded.
type Sequencer struct {
	mu     sync.Mutex
	latest map[streamKey]uint64
}

// NewSequencer creates an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[streamKey]uint64)}
}

// Ticket identifies one request within its stream.
type Ticket struct {
	seq   *Sequencer
	key   streamKey
	token uint64
}

// Begin registers a new request and returns its ticket.
func (s *Sequencer) Begin(client string, channel Channel) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := streamKey{client: client, channel: channel}
	s.latest[key]++
	return Ticket{seq: s, key: key, token: s.latest[key]}
}

// Current reports whether no newer request began in the ticket's stream.
func (t Ticket) Current() bool {
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	return t.seq.latest[t.key] == t.token
}
