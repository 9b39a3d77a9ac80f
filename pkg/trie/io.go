package trie

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo serializes the frozen trie: a u32 little-endian size prefix
// followed by the raw serialized node array.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.sna))); err != nil {
		return 0, fmt.Errorf("writing trie size: %w", err)
	}
	n, err := w.Write(t.sna)
	if err != nil {
		return int64(4 + n), fmt.Errorf("writing trie data: %w", err)
	}
	return int64(4 + n), nil
}

// ReadTrie deserializes a frozen trie written by WriteTo.
func ReadTrie(r io.Reader) (*Trie, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("reading trie size: %w", err)
	}
	sna := make([]byte, size)
	if _, err := io.ReadFull(r, sna); err != nil {
		return nil, fmt.Errorf("reading trie data: %w", err)
	}
	return &Trie{sna: sna}, nil
}
