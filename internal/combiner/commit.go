package combiner

import "sync"

// Kind tells a sink whether a commit is still live or final.
type Kind int

const (
	// KindSyllable is a live update; later commits may revise it.
	KindSyllable Kind = iota
	// KindEnd finalizes the current segment.
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindSyllable:
		return "SYLLABLE"
	case KindEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

type Commit struct {
	Kind Kind
	Text string
}

// Sink receives commits synchronously, in the order the combiner emits them.
type Sink interface {
	Commit(Commit)
}

type SinkFunc func(Commit)

func (f SinkFunc) Commit(c Commit) { f(c) }

// Discard drops every commit.
var Discard Sink = SinkFunc(func(Commit) {})

type teeSink []Sink

// Tee delivers every commit to each non-nil sink in turn.
func Tee(sinks ...Sink) Sink {
	var out teeSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (t teeSink) Commit(c Commit) {
	for _, s := range t {
		s.Commit(c)
	}
}

type channelSink struct {
	ch chan<- Commit
}

// ChannelSink forwards commits to ch. Sends block, so the caller must drain
// ch or size its buffer for the commits one event can produce (at most two).
func ChannelSink(ch chan<- Commit) Sink {
	return channelSink{ch: ch}
}

func (s channelSink) Commit(c Commit) { s.ch <- c }

// Recorder keeps every commit it receives.
type Recorder struct {
	mu      sync.Mutex
	commits []Commit
}

func (r *Recorder) Commit(c Commit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, c)
}

func (r *Recorder) Commits() []Commit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Commit, len(r.commits))
	copy(out, r.commits)
	return out
}

// Texts returns the text of every commit of the given kind, in order.
func (r *Recorder) Texts(kind Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.commits {
		if c.Kind == kind {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = nil
}
