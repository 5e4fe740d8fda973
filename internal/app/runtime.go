package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eiannone/keyboard"

	"hancombiner/internal/combiner"
	"hancombiner/internal/config"
	"hancombiner/internal/emitter"
	"hancombiner/internal/event"
	"hancombiner/internal/typist"
)

type Runtime struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
}

func NewRuntime(cfg config.Config, log *slog.Logger, out io.Writer) *Runtime {
	return &Runtime{cfg: cfg, log: log, out: out}
}

func (rt *Runtime) options() []combiner.Option {
	return []combiner.Option{
		combiner.WithLogger(rt.log),
		combiner.WithComposingWordPolicy(rt.cfg.Policy()),
	}
}

func (rt *Runtime) Run(in io.Reader) error {
	if strings.EqualFold(rt.cfg.Input.Mode, config.ModeInteractive) {
		return rt.RunInteractive()
	}
	return rt.RunLines(in)
}

// RunLines starts a fresh session for every input line, ends it with a
// space, and prints the commit stream, the composing word and the resulting
// text.
func (rt *Runtime) RunLines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	lines := 0
	for scanner.Scan() {
		lines++
		w := emitter.NewWriter(rt.out, rt.cfg.Input.ShowSyllable)
		buf, c, err := typist.Replay(scanner.Text()+" ", w, rt.options()...)
		if err != nil {
			return fmt.Errorf("line %d: %w", lines, err)
		}
		w.Word(c.ComposingWord())
		w.Text(buf.Text())
		if err := w.Err(); err != nil {
			return err
		}
		rt.log.Debug("line done", slog.Int("line", lines), slog.Int("ends", w.Ends()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// RunInteractive reads raw keystrokes until Esc or Ctrl-C and redraws the
// composing word and live syllable after every key.
func (rt *Runtime) RunInteractive() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	buf := &typist.Buffer{}
	trace := combiner.SinkFunc(func(commit combiner.Commit) {
		rt.log.Debug("commit", slog.String("kind", commit.Kind.String()), slog.String("text", commit.Text))
	})
	c := combiner.New(combiner.Tee(buf, trace), rt.options()...)

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		ev, quit := keyEvent(char, key)
		if quit {
			fmt.Fprintln(rt.out)
			return nil
		}
		if ev == nil {
			continue
		}
		buf.Apply(c.Process(ev))
		fmt.Fprintf(rt.out, "\r\033[K%s | %s[%s]", buf.Text(), c.ComposingWord(), c.Feedback())
	}
}

func keyEvent(char rune, key keyboard.Key) (*event.Event, bool) {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return nil, true
	case keyboard.KeySpace:
		return typist.EventFor(' '), false
	case keyboard.KeyTab:
		return typist.EventFor('\t'), false
	case keyboard.KeyEnter:
		return typist.EventFor('\n'), false
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return typist.EventFor('\b'), false
	}
	if char == 0 {
		return nil, false
	}
	return typist.EventFor(char), false
}
