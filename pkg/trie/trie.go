package trie

import (
	"encoding/binary"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
)

// nodeHeaderLen is the fixed part of a node record: children count byte
// plus the u32 payload.
const nodeHeaderLen = 1 + 4

// WordIDPair is a word found in the trie together with its identifier.
type WordIDPair struct {
	Word *hangul.String
	ID   uint32
}

// Trie is the frozen, query-only shape: a single serialized node array.
// Instances are immutable and cheap to share.
type Trie struct {
	sna []byte
}

// node accessors over the serialized array. Offset 0 addresses the
// pseudo root, which has only a children count.

func (t *Trie) childCount(off int) int {
	return int(t.sna[off])
}

func (t *Trie) payload(off int) uint32 {
	return binary.LittleEndian.Uint32(t.sna[off+1:])
}

func (t *Trie) label(off int) []byte {
	start := off + nodeHeaderLen
	end := start
	for t.sna[end] != 0 {
		end++
	}
	return t.sna[start:end]
}

func (t *Trie) nodeLen(off int) int {
	return nodeHeaderLen + len(t.label(off)) + 1
}

func (t *Trie) childrenStart(off int) int {
	if off == 0 {
		return 1
	}
	return off + int(t.payload(off))
}

// FindWord looks up a word and returns its id, or NotFound. The word
// must convert to a HangulString.
func (t *Trie) FindWord(s *hangul.String) (uint32, error) {
	key, err := s.ToHangulString()
	if err != nil {
		return NotFound, err
	}

	off := 0
	offset := 0
	for offset < len(key) {
		count := t.childCount(off)
		start := t.childrenStart(off)
		read := 0
		descended := false
		for i := 0; i < count; i++ {
			child := start + read
			lab := t.label(child)
			common := hangul.HangulString(key[offset:]).CommonPrefixLen(lab)
			if common == len(lab) && len(lab) > 0 {
				offset += common
				off = child
				descended = true
				break
			}
			read += t.nodeLen(child)
		}
		if !descended {
			return NotFound, nil
		}
	}

	count := t.childCount(off)
	if count == 0 {
		if off == 0 {
			return NotFound, nil
		}
		return t.payload(off), nil
	}
	start := t.childrenStart(off)
	read := 0
	for i := 0; i < count; i++ {
		child := start + read
		if len(t.label(child)) == 0 {
			return t.payload(child), nil
		}
		read += t.nodeLen(child)
	}
	return NotFound, nil
}

// FindWordPrefixes returns every vocabulary word that is a prefix of s,
// with its id, in the order encountered during descent (shortest
// first).
func (t *Trie) FindWordPrefixes(s *hangul.String) ([]WordIDPair, error) {
	key, err := s.ToHangulString()
	if err != nil {
		return nil, err
	}

	var prefixes []WordIDPair
	off := 0
	offset := 0
	for offset < len(key) {
		count := t.childCount(off)
		start := t.childrenStart(off)
		read := 0
		descendTo := -1
		newOffset := 0
		foundTerminator := false
		for i := 0; i < count; i++ {
			child := start + read
			lab := t.label(child)
			common := hangul.HangulString(key[offset:]).CommonPrefixLen(lab)
			if common == len(lab) && len(lab) > 0 {
				newOffset = offset + common
				descendTo = child
			} else if len(lab) == 0 {
				prefixes = append(prefixes, WordIDPair{
					Word: hangul.StringFromHangulString(key[:offset]),
					ID:   t.payload(child),
				})
				foundTerminator = true
			}
			read += t.nodeLen(child)
		}

		if descendTo < 0 {
			if foundTerminator {
				return prefixes, nil
			}
			break
		}
		off = descendTo
		offset = newOffset
	}

	count := t.childCount(off)
	if count == 0 {
		if off != 0 {
			prefixes = append(prefixes, WordIDPair{
				Word: hangul.StringFromHangulString(key[:offset]),
				ID:   t.payload(off),
			})
		}
		return prefixes, nil
	}
	start := t.childrenStart(off)
	read := 0
	for i := 0; i < count; i++ {
		child := start + read
		if len(t.label(child)) == 0 {
			prefixes = append(prefixes, WordIDPair{
				Word: hangul.StringFromHangulString(key[:offset]),
				ID:   t.payload(child),
			})
		}
		read += t.nodeLen(child)
	}
	return prefixes, nil
}

// Walk visits every word in the trie in depth-first sibling order,
// reconstructing each word from the edge labels along its path. The
// walk stops early when fn returns false.
func (t *Trie) Walk(fn func(word *hangul.String, id uint32) bool) {
	if len(t.sna) == 0 || t.sna[0] == 0 {
		return
	}

	// Descent state is an explicit stack of sibling-run frames rather
	// than per-node pointers.
	type frame struct {
		child     int // offset of the next unvisited sibling record
		remaining int // siblings left at this level
		prefixLen int // label prefix length on entry to this level
	}

	prefix := make([]byte, 0, 64)
	stack := []frame{{child: 1, remaining: int(t.sna[0])}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.remaining == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		off := f.child
		f.child += t.nodeLen(off)
		f.remaining--

		prefix = prefix[:f.prefixLen]
		lab := t.label(off)
		count := t.childCount(off)
		if count == 0 {
			word := hangul.StringFromHangulString(append(prefix, lab...))
			if !fn(word, t.payload(off)) {
				return
			}
			continue
		}
		prefix = append(prefix, lab...)
		stack = append(stack, frame{
			child:     off + int(t.payload(off)),
			remaining: count,
			prefixLen: len(prefix),
		})
	}
}

// Builder reconstructs the editing tree from the frozen buffer so the
// vocabulary can be amended. The trie itself is left untouched.
func (t *Trie) Builder() *Builder {
	b := &Builder{}
	if len(t.sna) == 0 {
		return b
	}
	count := int(t.sna[0])
	off := 1
	for i := 0; i < count; i++ {
		b.children = append(b.children, t.readNode(off))
		off += t.nodeLen(off)
	}
	return b
}

func (t *Trie) readNode(off int) node {
	n := node{label: append([]byte(nil), t.label(off)...)}
	count := t.childCount(off)
	if count == 0 {
		n.id = t.payload(off)
		return n
	}
	start := off + int(t.payload(off))
	read := 0
	for i := 0; i < count; i++ {
		n.children = append(n.children, t.readNode(start+read))
		read += t.nodeLen(start + read)
	}
	return n
}

// Size returns the serialized node array size in bytes.
func (t *Trie) Size() int { return len(t.sna) }
