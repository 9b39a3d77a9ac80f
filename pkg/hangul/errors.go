package hangul

import "errors"

var (
	// ErrInvalidJamo is returned when a jamo is used in a syllable
	// position it cannot occupy, e.g. a vowel passed as a choseong.
	ErrInvalidJamo = errors.New("hangul: jamo is not valid for this position")

	// ErrUnsupportedOperation is returned when a variant-specific
	// operation is called on a character of the wrong variant.
	ErrUnsupportedOperation = errors.New("hangul: operation not supported on this character type")

	// ErrNotHangul is returned when a String containing codepoints other
	// than Hangul syllables or the encapsulation sentinel is converted
	// to a HangulString.
	ErrNotHangul = errors.New("hangul: string contains non-Hangul syllable symbols")

	// ErrInvalidPositional is returned by JamoFromPositionalUnicode for
	// codepoints outside the three positional jamo blocks.
	ErrInvalidPositional = errors.New("hangul: codepoint is not a positional jamo")

	// ErrInvalidRange is returned for index pairs with start > end or
	// indices outside the addressed sequence.
	ErrInvalidRange = errors.New("hangul: invalid index range")
)
