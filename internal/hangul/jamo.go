package hangul

// Jamo is a single classified code point. The concrete types are NonHangul,
// Consonant, Vowel, Initial, Medial and Final.
type Jamo interface {
	CodePoint() rune
	Modern() bool
	String() string
	jamo()
}

const (
	consonantFirst = 0x3131
	consonantLast  = 0x314E
	vowelFirst     = 0x314F
	vowelLast      = 0x3163
	initialFirst   = 0x1100
	initialLast    = 0x115F
	medialFirst    = 0x1160
	medialLast     = 0x11A7
	finalFirst     = 0x11A8
	finalLast      = 0x11FF

	modernInitialLast = 0x1112
	modernMedialFirst = 0x1161
	modernMedialLast  = 0x1175
	modernFinalLast   = 0x11C2
	finalOrdinalBase  = 0x11A7
)

// Parallel conversion tables. Index i of compatConsonants maps to index i of
// conjoiningInitials and conjoiningFinals; a zero entry has no counterpart.
var (
	compatConsonants   = []rune("ㄱㄲㄳㄴㄵㄶㄷㄸㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅃㅄㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	compatVowels       = []rune("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
	conjoiningInitials = []rune{
		0x1100, 0x1101, 0, 0x1102, 0, 0, 0x1103, 0x1104, 0x1105, 0, 0, 0, 0, 0, 0, 0,
		0x1106, 0x1107, 0x1108, 0, 0x1109, 0x110A, 0x110B, 0x110C, 0x110D, 0x110E,
		0x110F, 0x1110, 0x1111, 0x1112,
	}
	conjoiningMedials = []rune{
		0x1161, 0x1162, 0x1163, 0x1164, 0x1165, 0x1166, 0x1167, 0x1168, 0x1169, 0x116A,
		0x116B, 0x116C, 0x116D, 0x116E, 0x116F, 0x1170, 0x1171, 0x1172, 0x1173, 0x1174,
		0x1175,
	}
	conjoiningFinals = []rune{
		0x11A8, 0x11A9, 0x11AA, 0x11AB, 0x11AC, 0x11AD, 0x11AE, 0, 0x11AF, 0x11B0,
		0x11B1, 0x11B2, 0x11B3, 0x11B4, 0x11B5, 0x11B6, 0x11B7, 0x11B8, 0, 0x11B9,
		0x11BA, 0x11BB, 0x11BC, 0x11BD, 0, 0x11BE, 0x11BF, 0x11C0, 0x11C1, 0x11C2,
	}
)

// Classify maps a code point to its jamo role by block.
func Classify(cp rune) Jamo {
	switch {
	case cp >= consonantFirst && cp <= consonantLast:
		return Consonant{cp: cp}
	case cp >= vowelFirst && cp <= vowelLast:
		return Vowel{cp: cp}
	case cp >= initialFirst && cp <= initialLast:
		return Initial{cp: cp}
	case cp >= medialFirst && cp <= medialLast:
		return Medial{cp: cp}
	case cp >= finalFirst && cp <= finalLast:
		return Final{cp: cp}
	default:
		return NonHangul{cp: cp}
	}
}

func convert(from, to []rune, cp rune) (rune, bool) {
	if cp == 0 {
		return 0, false
	}
	for i, r := range from {
		if r != cp {
			continue
		}
		if i >= len(to) || to[i] == 0 {
			return 0, false
		}
		return to[i], true
	}
	return 0, false
}

type NonHangul struct{ cp rune }

func NewNonHangul(cp rune) NonHangul { return NonHangul{cp: cp} }
func (j NonHangul) CodePoint() rune  { return j.cp }
func (NonHangul) Modern() bool       { return false }
func (j NonHangul) String() string   { return string(j.cp) }
func (NonHangul) jamo()              {}

// Consonant is a compatibility consonant (ㄱ..ㅎ).
type Consonant struct{ cp rune }

func NewConsonant(cp rune) Consonant { return Consonant{cp: cp} }
func (j Consonant) CodePoint() rune  { return j.cp }
func (j Consonant) Modern() bool     { return j.cp >= consonantFirst && j.cp <= consonantLast }
func (j Consonant) Ordinal() int     { return int(j.cp - consonantFirst) }
func (j Consonant) String() string   { return string(j.cp) }
func (Consonant) jamo()              {}

// Initial returns the conjoining leading form. Compound consonants such as
// ㄳ have none.
func (j Consonant) Initial() (Initial, bool) {
	cp, ok := convert(compatConsonants, conjoiningInitials, j.cp)
	if !ok {
		return Initial{}, false
	}
	return Initial{cp: cp}, true
}

// Final returns the conjoining trailing form. ㄸ, ㅃ and ㅉ have none.
func (j Consonant) Final() (Final, bool) {
	cp, ok := convert(compatConsonants, conjoiningFinals, j.cp)
	if !ok {
		return Final{}, false
	}
	return Final{cp: cp}, true
}

// Vowel is a compatibility vowel (ㅏ..ㅣ).
type Vowel struct{ cp rune }

func NewVowel(cp rune) Vowel    { return Vowel{cp: cp} }
func (j Vowel) CodePoint() rune { return j.cp }
func (j Vowel) Modern() bool    { return j.cp >= vowelFirst && j.cp <= vowelLast }
func (j Vowel) Ordinal() int    { return int(j.cp - vowelFirst) }
func (j Vowel) String() string  { return string(j.cp) }
func (Vowel) jamo()             {}

func (j Vowel) Medial() (Medial, bool) {
	cp, ok := convert(compatVowels, conjoiningMedials, j.cp)
	if !ok {
		return Medial{}, false
	}
	return Medial{cp: cp}, true
}

// Initial is a conjoining leading consonant.
type Initial struct{ cp rune }

func NewInitial(cp rune) Initial  { return Initial{cp: cp} }
func (j Initial) CodePoint() rune { return j.cp }
func (j Initial) Modern() bool    { return j.cp >= initialFirst && j.cp <= modernInitialLast }
func (j Initial) Ordinal() int    { return int(j.cp - initialFirst) }
func (j Initial) String() string  { return string(j.cp) }
func (Initial) jamo()             {}

func (j Initial) Consonant() (Consonant, bool) {
	cp, ok := convert(conjoiningInitials, compatConsonants, j.cp)
	if !ok {
		return Consonant{}, false
	}
	return Consonant{cp: cp}, true
}

// Medial is a conjoining vowel.
type Medial struct{ cp rune }

func NewMedial(cp rune) Medial   { return Medial{cp: cp} }
func (j Medial) CodePoint() rune { return j.cp }
func (j Medial) Modern() bool    { return j.cp >= modernMedialFirst && j.cp <= modernMedialLast }
func (j Medial) Ordinal() int    { return int(j.cp - modernMedialFirst) }
func (j Medial) String() string  { return string(j.cp) }
func (Medial) jamo()             {}

func (j Medial) Vowel() (Vowel, bool) {
	cp, ok := convert(conjoiningMedials, compatVowels, j.cp)
	if !ok {
		return Vowel{}, false
	}
	return Vowel{cp: cp}, true
}

// Final is a conjoining trailing consonant. When it was produced by merging
// two finals, Pair holds the merged code points in input order.
type Final struct {
	cp      rune
	pair    [2]rune
	hasPair bool
}

func NewFinal(cp rune) Final { return Final{cp: cp} }

// NewCompoundFinal records the pair that produced cp so it can be split again.
func NewCompoundFinal(cp rune, pair [2]rune) Final {
	return Final{cp: cp, pair: pair, hasPair: true}
}

func (j Final) CodePoint() rune { return j.cp }
func (j Final) Modern() bool    { return j.cp >= finalFirst && j.cp <= modernFinalLast }
func (j Final) Ordinal() int    { return int(j.cp - finalOrdinalBase) }
func (j Final) String() string  { return string(j.cp) }
func (Final) jamo()             {}

func (j Final) Pair() ([2]rune, bool) { return j.pair, j.hasPair }

func (j Final) Consonant() (Consonant, bool) {
	cp, ok := convert(conjoiningFinals, compatConsonants, j.cp)
	if !ok {
		return Consonant{}, false
	}
	return Consonant{cp: cp}, true
}

// Initial moves a trailing consonant to the leading position of the next
// syllable by way of its compatibility form.
func (j Final) Initial() (Initial, bool) {
	c, ok := j.Consonant()
	if !ok {
		return Initial{}, false
	}
	return c.Initial()
}
