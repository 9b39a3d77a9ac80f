package hangul

// CharRef is a non-owning handle to one character of a String,
// expressed as a (string, index) pair. Mutations write through to the
// parent string. A reference must not outlive the next structural
// mutation (append, prepend, clear) of its string.
type CharRef struct {
	str *String
	idx int
}

// Valid reports whether the reference currently addresses a character.
func (r CharRef) Valid() bool {
	return r.str != nil && r.idx >= 0 && r.idx < len(r.str.cps)
}

// Index returns the codepoint index the reference addresses.
func (r CharRef) Index() int { return r.idx }

// Char returns a copy of the referenced character.
func (r CharRef) Char() Character {
	return Character(r.str.cps[r.idx])
}

// Type classifies the referenced character.
func (r CharRef) Type() CharType { return r.Char().Type() }

// Codepoint returns the referenced codepoint.
func (r CharRef) Codepoint() uint32 { return r.str.cps[r.idx] }

// SetCodepoint writes a codepoint through the reference, with the same
// positional jamo normalization as Character.SetCodepoint.
func (r CharRef) SetCodepoint(cp uint32) {
	r.str.cps[r.idx] = normalize(cp)
}

func (r CharRef) mutate(f func(*Character) error) error {
	c := r.Char()
	if err := f(&c); err != nil {
		return err
	}
	r.str.cps[r.idx] = c.Codepoint()
	return nil
}

// Choseong returns the lead consonant of the referenced syllable.
func (r CharRef) Choseong() (Jamo, error) { return r.Char().Choseong() }

// SetChoseong mutates the referenced syllable's lead consonant.
func (r CharRef) SetChoseong(j Jamo) error {
	return r.mutate(func(c *Character) error { return c.SetChoseong(j) })
}

// Jungseong returns the vowel of the referenced syllable.
func (r CharRef) Jungseong() (Jamo, error) { return r.Char().Jungseong() }

// SetJungseong mutates the referenced syllable's vowel.
func (r CharRef) SetJungseong(j Jamo) error {
	return r.mutate(func(c *Character) error { return c.SetJungseong(j) })
}

// Jongseong returns the trailing consonant of the referenced syllable.
func (r CharRef) Jongseong() (Jamo, error) { return r.Char().Jongseong() }

// SetJongseong mutates the referenced syllable's trailing consonant.
func (r CharRef) SetJongseong(j Jamo) error {
	return r.mutate(func(c *Character) error { return c.SetJongseong(j) })
}

// Jamo returns the identity of the referenced standalone jamo.
func (r CharRef) Jamo() (Jamo, error) { return r.Char().Jamo() }

// SetJamo mutates the referenced standalone jamo.
func (r CharRef) SetJamo(j Jamo) error {
	return r.mutate(func(c *Character) error { return c.SetJamo(j) })
}

// SetSyllableCode replaces the referenced character by syllable code.
func (r CharRef) SetSyllableCode(code SyllableCode) error {
	return r.mutate(func(c *Character) error { return c.SetSyllableCode(code) })
}

// Next returns a reference one character forward.
func (r CharRef) Next() CharRef { return CharRef{str: r.str, idx: r.idx + 1} }

// Prev returns a reference one character backward.
func (r CharRef) Prev() CharRef { return CharRef{str: r.str, idx: r.idx - 1} }

// Add returns a reference k characters forward.
func (r CharRef) Add(k int) CharRef { return CharRef{str: r.str, idx: r.idx + k} }

// Sub returns a reference k characters backward.
func (r CharRef) Sub(k int) CharRef { return CharRef{str: r.str, idx: r.idx - k} }

// Distance returns the offset of r from other. Both references must
// address the same string.
func (r CharRef) Distance(other CharRef) int { return r.idx - other.idx }

// Equal reports whether both references address the same character of
// the same string.
func (r CharRef) Equal(other CharRef) bool {
	return r.str == other.str && r.idx == other.idx
}
