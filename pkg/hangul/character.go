package hangul

import (
	"fmt"
	"unicode/utf8"
)

// EncapCodepoint is the reserved sentinel standing in for a run of
// non-Hangul symbols hidden by EncapsulateNonHangul. It is a
// within-alphabet reservation, deliberately distinct from any Unicode
// noncharacter.
const EncapCodepoint uint32 = 0xFFFFFFFE

// Syllable block boundaries.
const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3

	choseongSpan  = 0x24C // 588 = 21 vowels x 28 trails
	jungseongSpan = 0x1C  // 28 trails
)

// CharType classifies a Character.
type CharType int

const (
	// TypeCharacter is any codepoint outside the Hangul ranges below.
	TypeCharacter CharType = iota

	// TypeSyllable is a precomposed Hangul syllable, U+AC00..U+D7A3.
	TypeSyllable

	// TypeJamo is a standalone compatibility jamo, U+3131..U+3163.
	TypeJamo

	// TypeEncapsulated is the sentinel hiding a non-Hangul run.
	TypeEncapsulated
)

// String returns the type name, for debugging.
func (t CharType) String() string {
	switch t {
	case TypeCharacter:
		return "Character"
	case TypeSyllable:
		return "HangulSyllable"
	case TypeJamo:
		return "HangulJamo"
	case TypeEncapsulated:
		return "EncapsulatedNonHangulSyllable"
	}
	return "<unknown>"
}

// SyllableCode is the compact 16-bit form of a Hangul syllable used by
// downstream sequence models: the syllable's offset into the U+AC00
// block, with the top codes reserved for the symbol placeholder and the
// sequence delimiters.
type SyllableCode uint16

const (
	SyllableCodeSymbol SyllableCode = 0xFFFF
	SyllableCodeBOS    SyllableCode = 0xFFFE
	SyllableCodeEOS    SyllableCode = 0xFFFD
)

// Character is a single codepoint with jamo-level accessors. Positional
// jamo codepoints are never held; every constructor and setter
// normalizes them to the compatibility block.
type Character uint32

// NewCharacter creates a Character from a Unicode codepoint.
func NewCharacter(cp uint32) Character {
	var c Character
	c.SetCodepoint(cp)
	return c
}

// CharacterFromString creates a Character from the first codepoint of a
// UTF-8 string. The zero Character is returned for an empty string.
func CharacterFromString(s string) Character {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return NewCharacter(uint32(r))
}

// CharacterFromJamo creates a compatibility jamo Character.
func CharacterFromJamo(j Jamo) Character {
	return Character(compatJamoBase + uint32(j))
}

// Compose builds a Hangul syllable from its three jamo. JamoNone is the
// jongseong of an open syllable. Returns ErrInvalidJamo when a jamo is
// not a member of its position.
func Compose(choseong, jungseong, jongseong Jamo) (Character, error) {
	cho := choseongIndex(choseong)
	if cho == invalidPos {
		return 0, fmt.Errorf("composing syllable: choseong %d: %w", choseong, ErrInvalidJamo)
	}
	jung := jungseongIndex(jungseong)
	if jung == invalidPos {
		return 0, fmt.Errorf("composing syllable: jungseong %d: %w", jungseong, ErrInvalidJamo)
	}
	jong := jongseongIndex(jongseong)
	if jong == invalidPos {
		return 0, fmt.Errorf("composing syllable: jongseong %d: %w", jongseong, ErrInvalidJamo)
	}
	return Character(syllableBase + uint32(cho)*choseongSpan + uint32(jung)*jungseongSpan + uint32(jong)), nil
}

// CharacterFromSyllableCode creates a Character from a SyllableCode.
// SyllableCodeSymbol yields the encapsulation sentinel.
func CharacterFromSyllableCode(code SyllableCode) Character {
	if code == SyllableCodeSymbol {
		return Character(EncapCodepoint)
	}
	return Character(syllableBase + uint32(code))
}

// Type classifies the character by its stored codepoint.
func (c Character) Type() CharType {
	cp := uint32(c)
	switch {
	case cp >= syllableBase && cp <= syllableLast:
		return TypeSyllable
	case cp >= compatJamoBase && cp <= compatJamoLast:
		return TypeJamo
	case cp == EncapCodepoint:
		return TypeEncapsulated
	default:
		return TypeCharacter
	}
}

// Codepoint returns the stored Unicode codepoint.
func (c Character) Codepoint() uint32 { return uint32(c) }

// SetCodepoint stores a codepoint. A positional jamo is retargeted to
// the compatibility jamo with the same phonetic identity; this is the
// single point enforcing the no-positional-jamo invariant.
func (c *Character) SetCodepoint(cp uint32) {
	if IsPositionalJamo(cp) {
		j, _ := JamoFromPositionalUnicode(cp)
		*c = CharacterFromJamo(j)
		return
	}
	*c = Character(cp)
}

func (c Character) syllableOffset() uint32 { return uint32(c) - syllableBase }

// Choseong returns the lead consonant of a syllable.
func (c Character) Choseong() (Jamo, error) {
	if c.Type() != TypeSyllable {
		return 0, fmt.Errorf("choseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	return Jamo(choseongToComp[c.syllableOffset()/choseongSpan]), nil
}

// SetChoseong recomposes the syllable with a new lead consonant.
func (c *Character) SetChoseong(j Jamo) error {
	if c.Type() != TypeSyllable {
		return fmt.Errorf("set choseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	cho := choseongIndex(j)
	if cho == invalidPos {
		return fmt.Errorf("set choseong %d: %w", j, ErrInvalidJamo)
	}
	cp := uint32(*c)
	cp -= (c.syllableOffset() / choseongSpan) * choseongSpan
	cp += uint32(cho) * choseongSpan
	c.SetCodepoint(cp)
	return nil
}

// Jungseong returns the vowel of a syllable.
func (c Character) Jungseong() (Jamo, error) {
	if c.Type() != TypeSyllable {
		return 0, fmt.Errorf("jungseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	return Jamo(jungseongToComp[(c.syllableOffset()%choseongSpan)/jungseongSpan]), nil
}

// SetJungseong recomposes the syllable with a new vowel.
func (c *Character) SetJungseong(j Jamo) error {
	if c.Type() != TypeSyllable {
		return fmt.Errorf("set jungseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	jung := jungseongIndex(j)
	if jung == invalidPos {
		return fmt.Errorf("set jungseong %d: %w", j, ErrInvalidJamo)
	}
	cp := uint32(*c)
	cp -= ((c.syllableOffset() % choseongSpan) / jungseongSpan) * jungseongSpan
	cp += uint32(jung) * jungseongSpan
	c.SetCodepoint(cp)
	return nil
}

// Jongseong returns the trailing consonant of a syllable, JamoNone for
// an open syllable.
func (c Character) Jongseong() (Jamo, error) {
	if c.Type() != TypeSyllable {
		return 0, fmt.Errorf("jongseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	return Jamo(jongseongToComp[(c.syllableOffset()%choseongSpan)%jungseongSpan]), nil
}

// SetJongseong recomposes the syllable with a new trailing consonant.
func (c *Character) SetJongseong(j Jamo) error {
	if c.Type() != TypeSyllable {
		return fmt.Errorf("set jongseong of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	jong := jongseongIndex(j)
	if jong == invalidPos {
		return fmt.Errorf("set jongseong %d: %w", j, ErrInvalidJamo)
	}
	cp := uint32(*c)
	cp -= (c.syllableOffset() % choseongSpan) % jungseongSpan
	cp += uint32(jong)
	c.SetCodepoint(cp)
	return nil
}

// Jamo returns the identity of a standalone compatibility jamo.
func (c Character) Jamo() (Jamo, error) {
	if c.Type() != TypeJamo {
		return 0, fmt.Errorf("jamo of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	return Jamo(uint32(c) - compatJamoBase), nil
}

// SetJamo replaces a standalone jamo character.
func (c *Character) SetJamo(j Jamo) error {
	if c.Type() != TypeJamo {
		return fmt.Errorf("set jamo of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
	c.SetCodepoint(compatJamoBase + uint32(j))
	return nil
}

// SyllableCode returns the 16-bit syllable code. Supported on syllable
// and encapsulated characters only.
func (c Character) SyllableCode() (SyllableCode, error) {
	switch c.Type() {
	case TypeEncapsulated:
		return SyllableCodeSymbol, nil
	case TypeSyllable:
		return SyllableCode(c.syllableOffset()), nil
	default:
		return 0, fmt.Errorf("syllable code of %v: %w", c.Type(), ErrUnsupportedOperation)
	}
}

// SetSyllableCode replaces the character by the one the code denotes.
// Supported on syllable and encapsulated characters only.
func (c *Character) SetSyllableCode(code SyllableCode) error {
	t := c.Type()
	if t != TypeSyllable && t != TypeEncapsulated {
		return fmt.Errorf("set syllable code of %v: %w", t, ErrUnsupportedOperation)
	}
	*c = CharacterFromSyllableCode(code)
	return nil
}
