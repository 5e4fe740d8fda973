package hangul

import "strings"

const (
	syllableBase = 0xAC00
	medialCount  = 21
	finalCount   = 28
)

// Syllable is one syllable block under composition. It is a value: the With
// methods return modified copies and never touch the receiver.
type Syllable struct {
	initial    Initial
	medial     Medial
	final      Final
	hasInitial bool
	hasMedial  bool
	hasFinal   bool
}

func (s Syllable) Initial() (Initial, bool) { return s.initial, s.hasInitial }
func (s Syllable) Medial() (Medial, bool)   { return s.medial, s.hasMedial }
func (s Syllable) Final() (Final, bool)     { return s.final, s.hasFinal }

func (s Syllable) Empty() bool {
	return !s.hasInitial && !s.hasMedial && !s.hasFinal
}

func (s Syllable) WithInitial(j Initial) Syllable {
	s.initial, s.hasInitial = j, true
	return s
}

func (s Syllable) WithMedial(j Medial) Syllable {
	s.medial, s.hasMedial = j, true
	return s
}

func (s Syllable) WithFinal(j Final) Syllable {
	s.final, s.hasFinal = j, true
	return s
}

func (s Syllable) WithoutFinal() Syllable {
	s.final, s.hasFinal = Final{}, false
	return s
}

// Combinable reports whether the block has a precomposed code point: a modern
// initial and medial, and a modern final if any.
func (s Syllable) Combinable() bool {
	if !s.hasInitial || !s.initial.Modern() {
		return false
	}
	if !s.hasMedial || !s.medial.Modern() {
		return false
	}
	return !s.hasFinal || s.final.Modern()
}

// Combined computes the precomposed syllable. Absent slots count as ordinal 0;
// the result is only meaningful when Combinable holds.
func (s Syllable) Combined() rune {
	var i, m, f int
	if s.hasInitial {
		i = s.initial.Ordinal()
	}
	if s.hasMedial {
		m = s.medial.Ordinal()
	}
	if s.hasFinal {
		f = s.final.Ordinal()
	}
	return rune(syllableBase + (i*medialCount+m)*finalCount + f)
}

// Uncombined concatenates the raw conjoining code points.
func (s Syllable) Uncombined() string {
	var b strings.Builder
	if s.hasInitial {
		b.WriteRune(s.initial.CodePoint())
	}
	if s.hasMedial {
		b.WriteRune(s.medial.CodePoint())
	}
	if s.hasFinal {
		b.WriteRune(s.final.CodePoint())
	}
	return b.String()
}

// UncombinedCompat renders every slot as a standalone compatibility jamo.
// Slots without a compatibility form are dropped.
func (s Syllable) UncombinedCompat() string {
	var b strings.Builder
	if s.hasInitial {
		if c, ok := s.initial.Consonant(); ok {
			b.WriteRune(c.CodePoint())
		}
	}
	if s.hasMedial {
		if v, ok := s.medial.Vowel(); ok {
			b.WriteRune(v.CodePoint())
		}
	}
	if s.hasFinal {
		if c, ok := s.final.Consonant(); ok {
			b.WriteRune(c.CodePoint())
		}
	}
	return b.String()
}

func (s Syllable) String() string {
	if s.Combinable() {
		return string(s.Combined())
	}
	return s.UncombinedCompat()
}
