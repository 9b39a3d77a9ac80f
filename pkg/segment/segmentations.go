/*
Package segment builds word-segmentation lattices: for a sentence of N
characters, the set of (start, end) intervals that are valid vocabulary
words according to a frozen trie.
*/
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
	"github.com/danielslee/nansae-corelib/pkg/trie"
)

// ErrInvalidRange is returned for interval queries with start greater
// than end or positions outside the sentence.
var ErrInvalidRange = errors.New("segment: invalid word interval")

// Segmentations is a square bit matrix over sentence positions; bit
// (i, j) set means the characters from i through j inclusive form a
// vocabulary word. Only cells with j >= i are meaningful.
type Segmentations struct {
	n    int
	bits []uint64
}

// New creates an empty lattice for a sentence of n characters.
func New(n int) *Segmentations {
	return &Segmentations{n: n, bits: make([]uint64, (n*n+63)/64)}
}

// ForSentence probes the trie at every sentence position and records
// each prefix hit as a word interval. An encapsulated non-Hangul
// character is always a one-character word. The sentence must convert
// to a HangulString.
func ForSentence(sentence *hangul.String, t *trie.Trie) (*Segmentations, error) {
	s := New(sentence.Len())
	for i := 0; i < sentence.Len(); i++ {
		if sentence.At(i).Type() == hangul.TypeEncapsulated {
			s.AddWord(i, i)
		}
		rest, err := sentence.Substring(i, sentence.Len()-1)
		if err != nil {
			return nil, err
		}
		prefixes, err := t.FindWordPrefixes(rest)
		if err != nil {
			return nil, fmt.Errorf("probing position %d: %w", i, err)
		}
		for _, p := range prefixes {
			s.AddWord(i, i+p.Word.Len()-1)
		}
	}
	return s, nil
}

// SentenceLen returns the lattice's sentence length.
func (s *Segmentations) SentenceLen() int { return s.n }

func (s *Segmentations) bitFor(start, end int) (int, error) {
	if start > end || start < 0 || end >= s.n {
		return 0, fmt.Errorf("interval (%d,%d) in sentence of %d: %w", start, end, s.n, ErrInvalidRange)
	}
	return start*s.n + end, nil
}

// Word reports whether (start, end) is marked as a word.
func (s *Segmentations) Word(start, end int) (bool, error) {
	bit, err := s.bitFor(start, end)
	if err != nil {
		return false, err
	}
	return s.bits[bit/64]&(1<<(bit%64)) != 0, nil
}

// AddWord marks (start, end) as a word.
func (s *Segmentations) AddWord(start, end int) error {
	bit, err := s.bitFor(start, end)
	if err != nil {
		return err
	}
	s.bits[bit/64] |= 1 << (bit % 64)
	return nil
}

// RemoveWord clears the (start, end) word mark.
func (s *Segmentations) RemoveWord(start, end int) error {
	bit, err := s.bitFor(start, end)
	if err != nil {
		return err
	}
	s.bits[bit/64] &^= 1 << (bit % 64)
	return nil
}

// WordsStartingAt lists the end positions of words starting at start,
// in ascending order.
func (s *Segmentations) WordsStartingAt(start int) []int {
	var ends []int
	for j := start; j < s.n; j++ {
		if ok, _ := s.Word(start, j); ok {
			ends = append(ends, j)
		}
	}
	return ends
}

// WordsEndingAt lists the start positions of words ending at end, in
// descending order. The ordering is part of the contract:
// WordsStartingAt lists ascending, WordsEndingAt descending.
func (s *Segmentations) WordsEndingAt(end int) []int {
	var starts []int
	for i := end; i >= 0; i-- {
		if ok, _ := s.Word(i, end); ok {
			starts = append(starts, i)
		}
	}
	return starts
}

// DebugString renders the upper-triangular word grid with x marking
// set cells.
func (s *Segmentations) DebugString() string {
	var b strings.Builder
	b.WriteString("  ")
	for e := 0; e < s.n; e++ {
		fmt.Fprintf(&b, "%d", e)
		if e < s.n-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for i := 0; i < s.n; i++ {
		fmt.Fprintf(&b, "%d ", i)
		for e := 0; e < s.n; e++ {
			if e < i {
				b.WriteString("  ")
				continue
			}
			if ok, _ := s.Word(i, e); ok {
				b.WriteString("x")
			} else {
				b.WriteString(" ")
			}
			if e < s.n-1 {
				b.WriteString(" ")
			}
		}
		if i < s.n-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
