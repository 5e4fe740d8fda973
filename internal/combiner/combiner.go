// Package combiner assembles Hangul syllable blocks from a stream of key
// events. A Combiner serves one text session and is not safe for concurrent
// use.
package combiner

import (
	"log/slog"
	"strings"
	"unicode"

	"hancombiner/internal/event"
	"hancombiner/internal/hangul"
)

type Combiner struct {
	sink      Sink
	log       *slog.Logger
	policy    ComposingWordPolicy
	history   []hangul.Syllable
	composing strings.Builder
}

// New returns a combiner that reports commits to sink. A nil sink discards
// them.
func New(sink Sink, opts ...Option) *Combiner {
	if sink == nil {
		sink = Discard
	}
	c := &Combiner{sink: sink, log: discardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Feedback is the rendered syllable under composition.
func (c *Combiner) Feedback() string {
	if len(c.history) == 0 {
		return ""
	}
	return c.history[len(c.history)-1].String()
}

// ComposingWord holds every syllable flushed out of the history so far.
func (c *Combiner) ComposingWord() string {
	return c.composing.String()
}

func (c *Combiner) Current() (hangul.Syllable, bool) {
	if len(c.history) == 0 {
		return hangul.Syllable{}, false
	}
	return c.history[len(c.history)-1], true
}

func (c *Combiner) Depth() int {
	return len(c.history)
}

func (c *Combiner) Reset() {
	c.history = c.history[:0]
	if c.policy == ClearComposingWordOnReset {
		c.composing.Reset()
	}
}

// Process feeds one event through the automaton and returns what the caller
// should act on: ev itself, a consumed marker, or a text chain.
func (c *Combiner) Process(ev *event.Event) *event.Event {
	if ev == nil {
		return nil
	}
	c.log.Debug("process enter",
		slog.Int("code_point", int(ev.CodePoint)),
		slog.String("key", ev.KeyCode.String()),
		slog.Int("depth", len(c.history)),
	)
	out := c.process(ev)
	c.log.Debug("process exit", slog.String("feedback", c.Feedback()))
	return out
}

func (c *Combiner) process(ev *event.Event) *event.Event {
	if ev.KeyCode == event.KeyShift {
		return ev
	}

	if ev.HasCodePoint() && unicode.IsSpace(ev.CodePoint) {
		c.emit(KindEnd, c.Feedback())
		c.clearHistory()
		return ev
	}

	if ev.Functional {
		if ev.KeyCode == event.KeyDelete {
			c.emit(KindEnd, c.Feedback())
			c.Reset()
			return event.Keypress(event.NotACodePoint, event.KeyDelete, ev.Repeat)
		}
		text := c.Feedback()
		c.Reset()
		return event.Chain(text, ev)
	}
	if !ev.HasCodePoint() {
		return ev
	}

	cur, _ := c.Current()
	switch j := hangul.Classify(ev.CodePoint).(type) {
	case hangul.NonHangul:
		prev := c.Feedback()
		c.emit(KindSyllable, prev)
		c.emit(KindSyllable, j.String())
		c.clearHistory()
		return event.Chain(prev+j.String(), ev)
	case hangul.Consonant:
		c.consonant(cur, j)
	case hangul.Vowel:
		c.vowel(cur, j)
	case hangul.Initial:
		c.initial(cur, j)
	case hangul.Medial:
		c.medial(cur, j)
	case hangul.Final:
		c.final(cur, j)
	}
	c.emit(KindSyllable, c.Feedback())
	return event.Consumed(ev)
}

func (c *Combiner) consonant(cur hangul.Syllable, j hangul.Consonant) {
	initial, hasInitial := j.Initial()
	final, hasFinal := j.Final()
	start := hangul.Syllable{}
	if hasInitial {
		start = start.WithInitial(initial)
	}

	curInitial, okI := cur.Initial()
	_, okM := cur.Medial()
	if !okI || !okM {
		c.restart(cur, start)
		return
	}

	curFinal, okF := cur.Final()
	if !okF {
		// A hit rewrites the initial slot; Dubeolsik holds no initial pairs
		// today, so this only fires if the table grows one.
		if hasInitial {
			if merged, ok := c.lookup(hangul.Dubeolsik, curInitial.CodePoint(), initial.CodePoint()); ok {
				c.push(cur.WithInitial(hangul.NewInitial(merged)))
				return
			}
		}
		if hasFinal {
			c.push(cur.WithFinal(final))
			return
		}
		c.restart(cur, start)
		return
	}

	if hasFinal {
		pair := [2]rune{curFinal.CodePoint(), final.CodePoint()}
		if merged, ok := c.lookup(hangul.Dubeolsik, pair[0], pair[1]); ok {
			c.push(cur.WithFinal(hangul.NewCompoundFinal(merged, pair)))
			return
		}
	}
	c.restart(cur, start)
}

func (c *Combiner) vowel(cur hangul.Syllable, j hangul.Vowel) {
	medial, _ := j.Medial()

	curFinal, okF := cur.Final()
	if !okF {
		curMedial, okM := cur.Medial()
		if !okM {
			c.push(cur.WithMedial(medial))
			return
		}
		if merged, ok := c.lookup(hangul.Dubeolsik, curMedial.CodePoint(), medial.CodePoint()); ok {
			c.push(cur.WithMedial(hangul.NewMedial(merged)))
			return
		}
		c.restart(cur, hangul.Syllable{}.WithMedial(medial))
		return
	}

	// The trailing consonant moves to the next syllable. A compound final
	// only gives up its second half.
	kept := cur.WithoutFinal()
	moved := curFinal
	if pair, ok := curFinal.Pair(); ok {
		kept = cur.WithFinal(hangul.NewFinal(pair[0]))
		moved = hangul.NewFinal(pair[1])
		if split, ok := hangul.Dubeolsik.Split(curFinal.CodePoint()); ok {
			c.log.Debug("split final",
				slog.String("table", hangul.Dubeolsik.Name()),
				slog.String("final", string(curFinal.CodePoint())),
				slog.String("kept", string(split[0])),
				slog.String("moved", string(split[1])),
			)
		}
	}
	next := hangul.Syllable{}
	if initial, ok := moved.Initial(); ok {
		next = next.WithInitial(initial)
	}
	c.restart(kept, next)
	c.push(next.WithMedial(medial))
}

func (c *Combiner) initial(cur hangul.Syllable, j hangul.Initial) {
	curInitial, ok := cur.Initial()
	if !ok {
		c.push(cur.WithInitial(j))
		return
	}
	_, hasMedial := cur.Medial()
	_, hasFinal := cur.Final()
	if !hasMedial && !hasFinal {
		if merged, ok := c.lookup(hangul.Sebeolsik, curInitial.CodePoint(), j.CodePoint()); ok {
			c.push(cur.WithInitial(hangul.NewInitial(merged)))
			return
		}
	}
	c.restart(cur, hangul.Syllable{}.WithInitial(j))
}

func (c *Combiner) medial(cur hangul.Syllable, j hangul.Medial) {
	curMedial, ok := cur.Medial()
	if !ok {
		c.push(cur.WithMedial(j))
		return
	}
	if merged, ok := c.lookup(hangul.Sebeolsik, curMedial.CodePoint(), j.CodePoint()); ok {
		c.push(cur.WithMedial(hangul.NewMedial(merged)))
		return
	}
	c.restart(cur, hangul.Syllable{}.WithMedial(j))
}

func (c *Combiner) final(cur hangul.Syllable, j hangul.Final) {
	curFinal, ok := cur.Final()
	if !ok {
		c.push(cur.WithFinal(j))
		return
	}
	if merged, ok := c.lookup(hangul.Sebeolsik, curFinal.CodePoint(), j.CodePoint()); ok {
		c.push(cur.WithFinal(hangul.NewFinal(merged)))
		return
	}
	c.restart(cur, hangul.Syllable{}.WithFinal(j))
}

func (c *Combiner) lookup(t hangul.Table, a, b rune) (rune, bool) {
	merged, ok := t.Lookup(a, b)
	if ok {
		c.log.Debug("merge",
			slog.String("table", t.Name()),
			slog.String("pair", string([]rune{a, b})),
			slog.String("merged", string(merged)),
		)
	}
	return merged, ok
}

// restart flushes done into the composing word and begins a new history
// with next.
func (c *Combiner) restart(done, next hangul.Syllable) {
	c.composing.WriteString(done.String())
	c.clearHistory()
	c.push(next)
}

func (c *Combiner) push(s hangul.Syllable) {
	c.history = append(c.history, s)
}

func (c *Combiner) clearHistory() {
	c.history = c.history[:0]
}

func (c *Combiner) emit(kind Kind, text string) {
	c.sink.Commit(Commit{Kind: kind, Text: text})
}
