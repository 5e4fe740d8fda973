// Package typist drives a combiner from plain text, standing in for the key
// event layer of a real input method.
package typist

import (
	"errors"
	"unicode/utf8"

	"github.com/samber/lo"

	"hancombiner/internal/combiner"
	"hancombiner/internal/event"
)

var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// EventFor translates one input rune into the event a keyboard would send.
func EventFor(r rune) *event.Event {
	switch r {
	case ' ', '\t':
		return event.Keypress(r, event.KeySpace, false)
	case '\b', 0x7f:
		return event.Functional(event.KeyDelete)
	case '\n', '\r':
		return event.Functional(event.KeyEnter)
	default:
		return event.Char(r)
	}
}

// Buffer is the host text field. It takes the segments a combiner ends
// through its sink and applies the events the combiner returns.
type Buffer struct {
	runes []rune
}

var _ combiner.Sink = (*Buffer)(nil)

// Commit appends ended segments. Syllable commits are live previews; their
// text reaches the buffer through returned chain events instead.
func (b *Buffer) Commit(c combiner.Commit) {
	if c.Kind == combiner.KindEnd {
		b.runes = append(b.runes, []rune(c.Text)...)
	}
}

func (b *Buffer) Apply(ev *event.Event) {
	if ev == nil || ev.Consumed {
		return
	}
	switch {
	case ev.KeyCode == event.KeyOutputText:
		b.runes = append(b.runes, []rune(ev.Text)...)
		if next := ev.Next; next != nil && next.Functional && next.KeyCode == event.KeyEnter {
			b.runes = append(b.runes, '\n')
		}
	case ev.KeyCode == event.KeyDelete:
		b.runes = lo.DropRight(b.runes, 1)
	case ev.HasCodePoint():
		b.runes = append(b.runes, ev.CodePoint)
	}
}

func (b *Buffer) Text() string { return string(b.runes) }

func (b *Buffer) Len() int { return len(b.runes) }

// Type feeds input into c rune by rune. c should commit into b, as the
// combiners built by Replay do.
func (b *Buffer) Type(c *combiner.Combiner, input string) error {
	if !utf8.ValidString(input) {
		return ErrInvalidUTF8
	}
	for _, r := range input {
		b.Apply(c.Process(EventFor(r)))
	}
	return nil
}

// Replay types input into a fresh combiner whose commits go to a new buffer
// and to sink, which may be nil.
func Replay(input string, sink combiner.Sink, opts ...combiner.Option) (*Buffer, *combiner.Combiner, error) {
	buf := &Buffer{}
	c := combiner.New(combiner.Tee(buf, sink), opts...)
	if err := buf.Type(c, input); err != nil {
		return nil, nil, err
	}
	return buf, c, nil
}
