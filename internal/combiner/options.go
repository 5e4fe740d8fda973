package combiner

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ComposingWordPolicy decides what Reset does to the composing word.
type ComposingWordPolicy int

const (
	// KeepComposingWord leaves the composing word intact across resets, so it
	// accumulates for the whole session.
	KeepComposingWord ComposingWordPolicy = iota
	// ClearComposingWordOnReset empties it together with the history.
	ClearComposingWordOnReset
)

func (p ComposingWordPolicy) String() string {
	switch p {
	case KeepComposingWord:
		return "keep"
	case ClearComposingWordOnReset:
		return "clear"
	default:
		return "unknown"
	}
}

func ParsePolicy(name string) (ComposingWordPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "keep":
		return KeepComposingWord, nil
	case "clear":
		return ClearComposingWordOnReset, nil
	default:
		return KeepComposingWord, fmt.Errorf("unknown composing word policy %q (want keep or clear)", name)
	}
}

type Option func(*Combiner)

func WithLogger(log *slog.Logger) Option {
	return func(c *Combiner) {
		if log != nil {
			c.log = log
		}
	}
}

func WithComposingWordPolicy(p ComposingWordPolicy) Option {
	return func(c *Combiner) {
		c.policy = p
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
