package emitter

import (
	"fmt"
	"io"

	"hancombiner/internal/combiner"
)

// Writer prints the commit stream, one commit per line. Syllable updates are
// noisy, so they are only written when ShowSyllable is set.
type Writer struct {
	w            io.Writer
	ShowSyllable bool
	ends         int
	err          error
}

var _ combiner.Sink = (*Writer)(nil)

func NewWriter(w io.Writer, showSyllable bool) *Writer {
	return &Writer{w: w, ShowSyllable: showSyllable}
}

func (w *Writer) Commit(c combiner.Commit) {
	if w.err != nil {
		return
	}
	var prefix string
	switch c.Kind {
	case combiner.KindEnd:
		w.ends++
		prefix = "END"
	case combiner.KindSyllable:
		if !w.ShowSyllable {
			return
		}
		prefix = "SYL"
	default:
		return
	}
	if _, err := fmt.Fprintf(w.w, "%s %s\n", prefix, c.Text); err != nil {
		w.err = fmt.Errorf("write commit: %w", err)
	}
}

// Word prints the session's composing word.
func (w *Writer) Word(word string) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, "WORD %s\n", word); err != nil {
		w.err = fmt.Errorf("write word: %w", err)
	}
}

// Text prints the host text the session produced.
func (w *Writer) Text(text string) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, "TEXT %q\n", text); err != nil {
		w.err = fmt.Errorf("write text: %w", err)
	}
}

// Ends counts the End commits seen so far.
func (w *Writer) Ends() int { return w.ends }

// Err returns the first write error; later commits are dropped after it.
func (w *Writer) Err() error { return w.err }
