package hangul

// Table merges an ordered pair of conjoining jamo into one compound jamo.
type Table struct {
	name    string
	compose map[[2]rune]rune
	split   map[rune][2]rune
}

func newTable(name string, compose map[[2]rune]rune) Table {
	return Table{name: name, compose: compose, split: invertDouble(compose)}
}

func (t Table) Name() string { return t.name }
func (t Table) Len() int     { return len(t.compose) }

// Lookup returns the merged code point for (a, b). Only exact pairs match.
func (t Table) Lookup(a, b rune) (rune, bool) {
	merged, ok := t.compose[[2]rune{a, b}]
	return merged, ok
}

// Split returns the pair that merges into merged.
func (t Table) Split(merged rune) ([2]rune, bool) {
	pair, ok := t.split[merged]
	return pair, ok
}

var (
	// Dubeolsik holds the compound vowels and compound finals reachable
	// from two-set input.
	Dubeolsik = newTable("dubeolsik", map[[2]rune]rune{
		{0x1169, 0x1161}: 0x116A, // ㅘ
		{0x1169, 0x1162}: 0x116B, // ㅙ
		{0x1169, 0x1175}: 0x116C, // ㅚ
		{0x116E, 0x1165}: 0x116F, // ㅝ
		{0x116E, 0x1166}: 0x1170, // ㅞ
		{0x116E, 0x1175}: 0x1171, // ㅟ
		{0x1173, 0x1175}: 0x1174, // ㅢ

		{0x11A8, 0x11BA}: 0x11AA, // ㄳ
		{0x11AB, 0x11BD}: 0x11AC, // ㄵ
		{0x11AB, 0x11C2}: 0x11AD, // ㄶ
		{0x11AF, 0x11A8}: 0x11B0, // ㄺ
		{0x11AF, 0x11B7}: 0x11B1, // ㄻ
		{0x11AF, 0x11B8}: 0x11B2, // ㄼ
		{0x11AF, 0x11BA}: 0x11B3, // ㄽ
		{0x11AF, 0x11C0}: 0x11B4, // ㄾ
		{0x11AF, 0x11C1}: 0x11B5, // ㄿ
		{0x11AF, 0x11C2}: 0x11B6, // ㅀ
		{0x11B8, 0x11BA}: 0x11B9, // ㅄ
	})

	// Sebeolsik adds doubled initials and doubled finals for three-set input,
	// where every key already produces a conjoining jamo.
	Sebeolsik = newTable("sebeolsik", map[[2]rune]rune{
		{0x1100, 0x1100}: 0x1101, // ㄲ
		{0x1103, 0x1103}: 0x1104, // ㄸ
		{0x1107, 0x1107}: 0x1108, // ㅃ
		{0x1109, 0x1109}: 0x110A, // ㅆ
		{0x110C, 0x110C}: 0x110D, // ㅉ

		{0x1169, 0x1161}: 0x116A, // ㅘ
		{0x1169, 0x1162}: 0x116B, // ㅙ
		{0x1169, 0x1175}: 0x116C, // ㅚ
		{0x116E, 0x1165}: 0x116F, // ㅝ
		{0x116E, 0x1166}: 0x1170, // ㅞ
		{0x116E, 0x1175}: 0x1171, // ㅟ
		{0x1173, 0x1175}: 0x1174, // ㅢ

		{0x11A8, 0x11A8}: 0x11A9, // ㄲ
		{0x11A8, 0x11BA}: 0x11AA, // ㄳ
		{0x11AB, 0x11BD}: 0x11AC, // ㄵ
		{0x11AB, 0x11C2}: 0x11AD, // ㄶ
		{0x11AF, 0x11A8}: 0x11B0, // ㄺ
		{0x11AF, 0x11B7}: 0x11B1, // ㄻ
		{0x11AF, 0x11B8}: 0x11B2, // ㄼ
		{0x11AF, 0x11BA}: 0x11B3, // ㄽ
		{0x11AF, 0x11C0}: 0x11B4, // ㄾ
		{0x11AF, 0x11C1}: 0x11B5, // ㄿ
		{0x11AF, 0x11C2}: 0x11B6, // ㅀ
		{0x11B8, 0x11BA}: 0x11B9, // ㅄ
		{0x11BA, 0x11BA}: 0x11BB, // ㅆ
	})
)

func invertDouble(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}
