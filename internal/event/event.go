package event

// KeyCode identifies non-character keys.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyShift
	KeyDelete
	KeySpace
	KeyEnter
	KeySwitchLanguage
	KeyOutputText
)

func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyShift:
		return "shift"
	case KeyDelete:
		return "delete"
	case KeySpace:
		return "space"
	case KeyEnter:
		return "enter"
	case KeySwitchLanguage:
		return "switch-language"
	case KeyOutputText:
		return "output-text"
	default:
		return "unknown"
	}
}

// NotACodePoint marks events that carry no character.
const NotACodePoint rune = -1

// Event is one keystroke as seen by a combiner. Chain events carry Text and
// link the event that produced them through Next.
type Event struct {
	CodePoint  rune
	KeyCode    KeyCode
	Functional bool
	Repeat     bool
	Consumed   bool
	Text       string
	Next       *Event
}

// Char builds an ordinary character event.
func Char(cp rune) *Event {
	return &Event{CodePoint: cp, KeyCode: KeyNone}
}

// Functional builds a functional key event such as delete or enter.
func Functional(code KeyCode) *Event {
	return &Event{CodePoint: NotACodePoint, KeyCode: code, Functional: true}
}

// Keypress builds a hardware key event.
func Keypress(cp rune, code KeyCode, repeat bool) *Event {
	return &Event{CodePoint: cp, KeyCode: code, Functional: code == KeyDelete, Repeat: repeat}
}

// Consumed marks ev as absorbed: it produced no output of its own.
func Consumed(ev *Event) *Event {
	return &Event{
		CodePoint: NotACodePoint,
		KeyCode:   ev.KeyCode,
		Repeat:    ev.Repeat,
		Consumed:  true,
		Next:      ev,
	}
}

// Chain wraps literal text followed by the event that triggered it.
func Chain(text string, ev *Event) *Event {
	return &Event{
		CodePoint: NotACodePoint,
		KeyCode:   KeyOutputText,
		Text:      text,
		Next:      ev,
	}
}

func (e *Event) HasCodePoint() bool {
	return e != nil && e.CodePoint != NotACodePoint
}
