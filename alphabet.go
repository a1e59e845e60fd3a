package img2ascii

// Alphabet selects one of the predefined candidate character sets.
// The set is closed: index 0 is the compact 10-character set and index
// 1 the extended ~70-character set. Both are stored light-to-dark, so
// the darkest glyph is always the last rune. Iteration order is fixed
// and drives the matcher's tie-break, so it must never be reordered.
type Alphabet int

const (
	// AlphabetCompact is the default 10-character ramp.
	AlphabetCompact Alphabet = iota

	// AlphabetExtended is the ~70-character ramp for finer gradation.
	AlphabetExtended
)

var (
	compactRunes = []rune(" .:-=+*#%@")

	extendedRunes = []rune(" .'`^\",:;Il!i><~+_-?][}{1)(|\\/" +
		"tfjrxnuvczXYULJCQ0OZmwqpdbkhao*?$%&8BMW#@")
)

// Runes returns the alphabet's characters in canonical light-to-dark
// order. Unknown indices fall back to the compact set.
func (a Alphabet) Runes() []rune {
	var src []rune
	switch a {
	case AlphabetExtended:
		src = extendedRunes
	default:
		src = compactRunes
	}
	out := make([]rune, len(src))
	copy(out, src)
	return out
}

func (a Alphabet) String() string {
	switch a {
	case AlphabetExtended:
		return "extended"
	default:
		return "compact"
	}
}
