/*
Package hangul provides the character-level primitives for Korean text
processing: a codec unifying Hangul syllable blocks, compatibility jamo
and an encapsulation sentinel into a single 32-bit character type, a
codepoint-indexed String with Hangul-aware operations, and the compact
one-byte-per-jamo HangulString encoding used as the trie key alphabet.

Positional jamo codepoints (U+1100.., U+1161.., U+11A8..) are never
stored; every entry point normalizes them to the compatibility jamo with
the same phonetic identity.
*/
package hangul
