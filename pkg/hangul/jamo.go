package hangul

// Jamo identifies a single Hangul phonetic unit. The numeric order
// matches the Unicode compatibility jamo block: 30 consonants, then 21
// vowels, then the two pseudo-values JamoNone and JamoAny.
type Jamo uint8

const (
	Giyeok Jamo = iota
	SsangGiyeok
	GiyeokSiot
	Nieun
	NieunJieut
	NieunHieut
	Digeut
	SsangDigeut
	Rieul
	RieulGiyeok
	RieulMieum
	RieulBieup
	RieulSiot
	RieulTieut
	RieulPieup
	RieulHieut
	Mieum
	Bieup
	SsangBieup
	BieupSiot
	Siot
	SsangSiot
	Ieung
	Jieut
	SsangJieut
	Chieut
	Kieuk
	Tieut
	Pieup
	Hieut

	A
	Ae
	Ya
	Yae
	Eo
	E
	Yeo
	Ye
	O
	OA
	OAe
	OI
	Yo
	U
	UEo
	UE
	UI
	Yu
	Eu
	EuI
	I

	// JamoNone is the placeholder for an absent trailing consonant.
	JamoNone

	// JamoAny is a query wildcard reserved for downstream pattern
	// matching. It is never stored in a syllable.
	JamoAny
)

// jamoCount is the size of the conversion tables below.
const jamoCount = 53

// invalidPos marks compatibility indices that are not members of a
// given syllable position.
const invalidPos = 0xFF

// Conversion tables between the compatibility jamo order and the
// positional (choseong/jungseong/jongseong) indices used by syllable
// composition arithmetic. Derived from the Unicode Hangul blocks.
var compToChoseong = [jamoCount]uint8{
	0, 1, invalidPos, 2, invalidPos, invalidPos, 3, 4, 5,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	6, 7, 8, invalidPos, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos,
}

var choseongToComp = [19]uint8{
	0, 1, 3, 6, 7, 8, 16, 17, 18, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
}

var compToJungseong = [jamoCount]uint8{
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	invalidPos, invalidPos,
}

var jungseongToComp = [21]uint8{
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
}

var compToJongseong = [jamoCount]uint8{
	1, 2, 3, 4, 5, 6, 7, invalidPos, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
	invalidPos, 18, 19, 20, 21, 22, invalidPos, 23, 24, 25, 26, 27,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos, invalidPos, invalidPos, invalidPos,
	invalidPos, invalidPos, invalidPos,
	0, invalidPos,
}

var jongseongToComp = [28]uint8{
	51, 0, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13,
	14, 15, 16, 17, 19, 20, 21, 22, 23, 25, 26, 27, 28, 29,
}

// Positional jamo Unicode blocks.
const (
	choseongBase  = 0x1100
	choseongLast  = 0x1112
	jungseongBase = 0x1161
	jungseongLast = 0x1175
	jongseongBase = 0x11A8
	jongseongLast = 0x11C2
)

// compatJamoBase is the first codepoint of the compatibility jamo block.
const (
	compatJamoBase = 0x3131
	compatJamoLast = 0x3163
)

// IsPositionalJamo reports whether cp falls in one of the three Unicode
// positional jamo blocks.
func IsPositionalJamo(cp uint32) bool {
	return (cp >= choseongBase && cp <= choseongLast) ||
		(cp >= jungseongBase && cp <= jungseongLast) ||
		(cp >= jongseongBase && cp <= jongseongLast)
}

// JamoFromPositionalUnicode converts a positional jamo codepoint to the
// Jamo carrying the same phonetic identity. Returns
// ErrInvalidPositional for codepoints outside the positional blocks.
func JamoFromPositionalUnicode(cp uint32) (Jamo, error) {
	switch {
	case cp >= choseongBase && cp <= choseongLast:
		return Jamo(choseongToComp[cp-choseongBase]), nil
	case cp >= jungseongBase && cp <= jungseongLast:
		return Jamo(jungseongToComp[cp-jungseongBase]), nil
	case cp >= jongseongBase && cp <= jongseongLast:
		// "no trail" has no positional codepoint, hence the +1.
		return Jamo(jongseongToComp[cp-jongseongBase+1]), nil
	default:
		return 0, ErrInvalidPositional
	}
}

// choseongIndex returns the positional lead index of j, or invalidPos.
func choseongIndex(j Jamo) uint8 {
	if int(j) >= jamoCount {
		return invalidPos
	}
	return compToChoseong[j]
}

func jungseongIndex(j Jamo) uint8 {
	if int(j) >= jamoCount {
		return invalidPos
	}
	return compToJungseong[j]
}

func jongseongIndex(j Jamo) uint8 {
	if int(j) >= jamoCount {
		return invalidPos
	}
	return compToJongseong[j]
}
