package hangul

import "testing"

func TestClassifyBlocks(t *testing.T) {
	tests := []struct {
		cp   rune
		want string
	}{
		{'ㄱ', "consonant"},
		{'ㅎ', "consonant"},
		{'ㅏ', "vowel"},
		{'ㅣ', "vowel"},
		{0x1100, "initial"},
		{0x115F, "initial"},
		{0x1160, "medial"},
		{0x11A7, "medial"},
		{0x11A8, "final"},
		{0x11FF, "final"},
		{'a', "non-hangul"},
		{'가', "non-hangul"},
		{0x3130, "non-hangul"},
		{0x3164, "non-hangul"},
	}
	for _, tt := range tests {
		var got string
		switch Classify(tt.cp).(type) {
		case Consonant:
			got = "consonant"
		case Vowel:
			got = "vowel"
		case Initial:
			got = "initial"
		case Medial:
			got = "medial"
		case Final:
			got = "final"
		case NonHangul:
			got = "non-hangul"
		}
		if got != tt.want {
			t.Errorf("Classify(%U) = %s, want %s", tt.cp, got, tt.want)
		}
	}
}

func TestConsonantConversions(t *testing.T) {
	g := NewConsonant('ㄱ')
	initial, ok := g.Initial()
	if !ok || initial.CodePoint() != 0x1100 {
		t.Fatalf("expected ㄱ to map to initial U+1100, got %U (ok=%v)", initial.CodePoint(), ok)
	}
	final, ok := g.Final()
	if !ok || final.CodePoint() != 0x11A8 {
		t.Fatalf("expected ㄱ to map to final U+11A8, got %U (ok=%v)", final.CodePoint(), ok)
	}

	if _, ok := NewConsonant('ㄳ').Initial(); ok {
		t.Fatalf("compound consonant ㄳ must not have an initial form")
	}
	if f, ok := NewConsonant('ㄳ').Final(); !ok || f.CodePoint() != 0x11AA {
		t.Fatalf("expected ㄳ to map to final U+11AA, got %U (ok=%v)", f.CodePoint(), ok)
	}
	for _, r := range []rune{'ㄸ', 'ㅃ', 'ㅉ'} {
		if _, ok := NewConsonant(r).Final(); ok {
			t.Fatalf("expected %c to have no final form", r)
		}
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, r := range compatConsonants {
		c := NewConsonant(r)
		if i, ok := c.Initial(); ok {
			back, ok := i.Consonant()
			if !ok || back != c {
				t.Fatalf("initial round trip for %c gave %c (ok=%v)", r, back.CodePoint(), ok)
			}
		}
		if f, ok := c.Final(); ok {
			back, ok := f.Consonant()
			if !ok || back != c {
				t.Fatalf("final round trip for %c gave %c (ok=%v)", r, back.CodePoint(), ok)
			}
		}
	}
	for _, r := range compatVowels {
		m, ok := NewVowel(r).Medial()
		if !ok {
			t.Fatalf("expected %c to have a medial form", r)
		}
		back, ok := m.Vowel()
		if !ok || back.CodePoint() != r {
			t.Fatalf("medial round trip for %c gave %c (ok=%v)", r, back.CodePoint(), ok)
		}
	}
}

func TestFinalToInitial(t *testing.T) {
	initial, ok := NewFinal(0x11BA).Initial()
	if !ok || initial.CodePoint() != 0x1109 {
		t.Fatalf("expected final ㅅ to become initial U+1109, got %U (ok=%v)", initial.CodePoint(), ok)
	}
	if _, ok := NewFinal(0x11AA).Initial(); ok {
		t.Fatalf("compound final ㄳ must not move to the initial position whole")
	}
	if _, ok := NewFinal(0x11D0).Consonant(); ok {
		t.Fatalf("archaic final must not have a compatibility form")
	}
}

func TestModernRanges(t *testing.T) {
	if !NewInitial(0x1112).Modern() || NewInitial(0x1113).Modern() {
		t.Fatalf("modern initials end at U+1112")
	}
	if NewMedial(0x1160).Modern() || !NewMedial(0x1161).Modern() || NewMedial(0x1176).Modern() {
		t.Fatalf("modern medials span U+1161..U+1175")
	}
	if !NewFinal(0x11C2).Modern() || NewFinal(0x11C3).Modern() {
		t.Fatalf("modern finals end at U+11C2")
	}
	if NewNonHangul('a').Modern() {
		t.Fatalf("non-hangul is never modern")
	}
}

func TestCompoundFinalPair(t *testing.T) {
	f := NewCompoundFinal(0x11B9, [2]rune{0x11B8, 0x11BA})
	pair, ok := f.Pair()
	if !ok || pair != [2]rune{0x11B8, 0x11BA} {
		t.Fatalf("expected recorded pair, got %v (ok=%v)", pair, ok)
	}
	if _, ok := NewFinal(0x11B9).Pair(); ok {
		t.Fatalf("plain final must not carry a pair")
	}
}
