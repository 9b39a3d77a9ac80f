package trie

import (
	"encoding/binary"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
)

// NotFound is the identifier returned for words absent from the trie.
const NotFound uint32 = 0xFFFFFFFF

// node is one editing-tree node: an edge label, children in insertion
// order, and an identifier that is meaningful only on leaves. An
// empty-label child marks a word ending at its parent while longer
// words continue below.
type node struct {
	label    []byte
	children []node
	id       uint32
}

// Builder is the mutable editing shape of the trie.
type Builder struct {
	children []node
}

// NewBuilder returns an empty editing trie.
func NewBuilder() *Builder { return &Builder{} }

// AddWord inserts a word with the given id. If the word is already
// present its id is overwritten only when replace is true; the id in
// effect after the call is returned. The word must convert to a
// HangulString.
func (b *Builder) AddWord(s *hangul.String, id uint32, replace bool) (uint32, error) {
	key, err := s.ToHangulString()
	if err != nil {
		return NotFound, err
	}

	children := &b.children
	var current *node
	offset := 0

	for offset < len(key) {
		descended := false
		for i := range *children {
			n := &(*children)[i]
			common := hangul.HangulString(key[offset:]).CommonPrefixLen(hangul.HangulString(n.label))

			// full label match: descend
			if common == len(n.label) && len(n.label) > 0 {
				offset += common
				current = n
				children = &n.children
				descended = true
				break
			}

			// partial label match: split the edge
			if common > 0 {
				original := n.label
				n.label = append([]byte(nil), key[offset:offset+common]...)
				offset += common

				existing := node{
					label:    original[common:],
					children: n.children,
					id:       n.id,
				}
				fresh := node{
					label: append([]byte(nil), key[offset:]...),
					id:    id,
				}
				n.children = []node{fresh, existing}
				return id, nil
			}
		}

		if !descended {
			// The current node terminates a word of its own: demote its
			// id into an empty-label child so both words stay
			// retrievable.
			if current != nil && len(*children) == 0 {
				*children = append(*children, node{id: current.id})
			}
			*children = append(*children, node{
				label: append([]byte(nil), key[offset:]...),
				id:    id,
			})
			return id, nil
		}
	}

	if current == nil {
		// empty key never lands anywhere
		return id, nil
	}

	if len(current.children) > 0 {
		for i := range current.children {
			n := &current.children[i]
			if len(n.label) == 0 {
				if replace {
					n.id = id
				}
				return n.id, nil
			}
		}
		current.children = append(current.children, node{id: id})
		return id, nil
	}

	if replace {
		current.id = id
	}
	return current.id, nil
}

// Freeze linearizes the editing tree into its immutable queryable
// shape. An empty builder freezes to a trie that finds nothing.
func (b *Builder) Freeze() *Trie {
	if len(b.children) == 0 {
		return &Trie{sna: []byte{0}}
	}
	sna := make([]byte, 1+branchLen(b.children))
	sna[0] = byte(len(b.children))
	writeChildren(sna, 1, b.children)
	return &Trie{sna: sna}
}

// branchLen is the serialized size of a child list with all its
// descendants.
func branchLen(children []node) int {
	n := 0
	for i := range children {
		n += nodeHeaderLen + len(children[i].label) + 1
		n += branchLen(children[i].children)
	}
	return n
}

// writeChildren serializes a sibling run at na, then each sibling's
// child block behind the run, patching the child offsets as it goes.
// Returns the number of bytes written.
func writeChildren(sna []byte, na int, children []node) int {
	size := 0
	for i := range children {
		c := &children[i]
		sna[na+size] = byte(len(c.children))
		if len(c.children) == 0 {
			binary.LittleEndian.PutUint32(sna[na+size+1:], c.id)
		}
		copy(sna[na+size+nodeHeaderLen:], c.label)
		size += nodeHeaderLen + len(c.label) + 1
	}

	offset := 0
	for i := range children {
		c := &children[i]
		if len(c.children) > 0 {
			binary.LittleEndian.PutUint32(sna[na+offset+1:], uint32(size-offset))
			size += writeChildren(sna, na+size, c.children)
		}
		offset += nodeHeaderLen + len(c.label) + 1
	}
	return size
}
