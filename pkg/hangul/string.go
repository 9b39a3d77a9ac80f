package hangul

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// String is a mutable sequence of codepoints with Hangul-aware
// operations. Indexing is by codepoint, never by byte. Instances are
// not safe for concurrent mutation.
type String struct {
	cps []uint32
}

// NewString decodes a UTF-8 string, normalizing positional jamo.
func NewString(s string) *String {
	str := &String{cps: make([]uint32, 0, len(s)/2)}
	for _, r := range s {
		str.cps = append(str.cps, normalize(uint32(r)))
	}
	return str
}

// StringFromCharacter creates a String of length 1.
func StringFromCharacter(c Character) *String {
	return &String{cps: []uint32{normalize(c.Codepoint())}}
}

// StringFromHangulString decodes the one-byte-per-jamo form back into
// syllables. Byte 29 becomes the encapsulation sentinel.
func StringFromHangulString(h HangulString) *String {
	str := &String{cps: make([]uint32, 0, len(h)/3)}
	var jamos [3]uint32
	n := 0
	for _, b := range h {
		if b == NonHangulCode {
			str.cps = append(str.cps, EncapCodepoint)
			continue
		}
		jamos[n] = uint32(b - 1)
		n++
		if n == 3 {
			str.cps = append(str.cps,
				syllableBase+jamos[0]*choseongSpan+jamos[1]*jungseongSpan+jamos[2])
			n = 0
		}
	}
	return str
}

func normalize(cp uint32) uint32 {
	if IsPositionalJamo(cp) {
		j, _ := JamoFromPositionalUnicode(cp)
		return compatJamoBase + uint32(j)
	}
	return cp
}

func isSyllableCodepoint(cp uint32) bool {
	return cp >= syllableBase && cp <= syllableLast
}

// Len returns the length in codepoints.
func (s *String) Len() int { return len(s.cps) }

// Clear removes all characters.
func (s *String) Clear() *String {
	s.cps = s.cps[:0]
	return s
}

// Append appends another string.
func (s *String) Append(other *String) *String {
	s.cps = append(s.cps, other.cps...)
	return s
}

// AppendChar appends a single character.
func (s *String) AppendChar(c Character) *String {
	s.cps = append(s.cps, normalize(c.Codepoint()))
	return s
}

// Prepend inserts another string at the front.
func (s *String) Prepend(other *String) *String {
	s.cps = append(append(make([]uint32, 0, len(other.cps)+len(s.cps)), other.cps...), s.cps...)
	return s
}

// PrependChar inserts a single character at the front.
func (s *String) PrependChar(c Character) *String {
	s.cps = append([]uint32{normalize(c.Codepoint())}, s.cps...)
	return s
}

// Substring returns a copy of the characters from start to end,
// inclusive on both ends.
func (s *String) Substring(start, end int) (*String, error) {
	if start < 0 || end < start || end >= len(s.cps) {
		return nil, fmt.Errorf("substring [%d,%d] of length %d: %w", start, end, len(s.cps), ErrInvalidRange)
	}
	sub := &String{cps: make([]uint32, end-start+1)}
	copy(sub.cps, s.cps[start:end+1])
	return sub, nil
}

// Equal reports whether both strings hold the same codepoint sequence.
func (s *String) Equal(other *String) bool {
	if len(s.cps) != len(other.cps) {
		return false
	}
	for i, cp := range s.cps {
		if other.cps[i] != cp {
			return false
		}
	}
	return true
}

// Hash returns a hash of the codepoint sequence, consistent with Equal.
func (s *String) Hash() uint64 {
	h := fnv.New64a()
	var b [4]byte
	for _, cp := range s.cps {
		b[0] = byte(cp)
		b[1] = byte(cp >> 8)
		b[2] = byte(cp >> 16)
		b[3] = byte(cp >> 24)
		h.Write(b[:])
	}
	return h.Sum64()
}

// At returns a reference to the character at index i. The reference
// aliases the string's storage: it reads and writes through to the
// string, and stays meaningful only until the next structural mutation.
func (s *String) At(i int) CharRef {
	return CharRef{str: s, idx: i}
}

// StartsWith reports whether the string begins with prefix.
func (s *String) StartsWith(prefix *String) bool {
	if len(prefix.cps) > len(s.cps) {
		return false
	}
	for i, cp := range prefix.cps {
		if s.cps[i] != cp {
			return false
		}
	}
	return true
}

// IsPureHangul reports whether every codepoint is a Hangul syllable or
// the encapsulation sentinel.
func (s *String) IsPureHangul() bool {
	for _, cp := range s.cps {
		if !isSyllableCodepoint(cp) && cp != EncapCodepoint {
			return false
		}
	}
	return true
}

// String renders the sequence as UTF-8. The encapsulation sentinel is
// rendered as the ASCII letter S.
func (s *String) String() string {
	var b strings.Builder
	b.Grow(len(s.cps) * 3)
	for _, cp := range s.cps {
		if cp == EncapCodepoint {
			b.WriteByte('S')
			continue
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}

// ToHangulString serializes the string into the one-byte-per-jamo trie
// key form. Fails with ErrNotHangul when a codepoint is neither a
// syllable nor the encapsulation sentinel.
func (s *String) ToHangulString() (HangulString, error) {
	h := make(HangulString, 0, len(s.cps)*3)
	for _, cp := range s.cps {
		if cp == EncapCodepoint {
			h = append(h, NonHangulCode)
			continue
		}
		if !isSyllableCodepoint(cp) {
			return nil, fmt.Errorf("codepoint U+%04X: %w", cp, ErrNotHangul)
		}
		off := cp - syllableBase
		h = append(h,
			byte(off/choseongSpan)+1,
			byte((off%choseongSpan)/jungseongSpan)+1,
			byte((off%choseongSpan)%jungseongSpan)+1)
	}
	return h, nil
}

// FindMatchesEndingWithJamo scans from start and collects every
// character whose vowel, trailing consonant, or standalone jamo
// identity equals jamo. The returned offsets are relative to start, not
// absolute indices; callers rely on that.
func (s *String) FindMatchesEndingWithJamo(start int, jamo Jamo) []int {
	var result []int
	for i := start; i < len(s.cps); i++ {
		c := Character(s.cps[i])
		switch c.Type() {
		case TypeSyllable:
			jung, _ := c.Jungseong()
			jong, _ := c.Jongseong()
			if jung == jamo || jong == jamo {
				result = append(result, i-start)
			}
		case TypeJamo:
			j, _ := c.Jamo()
			if j == jamo {
				result = append(result, i-start)
			}
		}
	}
	return result
}

// Encapsulated holds the non-Hangul runs removed from a String, in
// order of appearance. It carries no reference to its source string and
// can be replayed into any string with matching sentinels.
type Encapsulated struct {
	runs [][]uint32
}

// Runs returns the number of stored runs.
func (e *Encapsulated) Runs() int { return len(e.runs) }

// EncapsulateNonHangul replaces every maximal run of non-syllable
// codepoints with a single encapsulation sentinel and returns the
// removed runs as a sidecar.
func (s *String) EncapsulateNonHangul() *Encapsulated {
	enc := &Encapsulated{}
	out := make([]uint32, 0, len(s.cps))
	var run []uint32
	for _, cp := range s.cps {
		if isSyllableCodepoint(cp) {
			if len(run) > 0 {
				enc.runs = append(enc.runs, run)
				out = append(out, EncapCodepoint)
				run = nil
			}
			out = append(out, cp)
			continue
		}
		run = append(run, cp)
	}
	if len(run) > 0 {
		enc.runs = append(enc.runs, run)
		out = append(out, EncapCodepoint)
	}
	s.cps = out
	return enc
}

// RestoreNonHangul replays the sidecar runs into the sentinels in
// order. Sentinels beyond the stored run count are left in place;
// stored runs beyond the sentinel count are dropped.
func (s *String) RestoreNonHangul(enc *Encapsulated) *String {
	out := make([]uint32, 0, len(s.cps))
	k := 0
	for _, cp := range s.cps {
		if cp == EncapCodepoint && k < len(enc.runs) {
			out = append(out, enc.runs[k]...)
			k++
			continue
		}
		out = append(out, cp)
	}
	s.cps = out
	return s
}
