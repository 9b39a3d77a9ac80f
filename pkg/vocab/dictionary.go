package vocab

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
	"github.com/danielslee/nansae-corelib/pkg/scores"
	"github.com/danielslee/nansae-corelib/pkg/segment"
	"github.com/danielslee/nansae-corelib/pkg/trie"
)

// Dictionary is a frozen vocabulary: the jamo trie, the id-to-score
// table, and the container manifest.
type Dictionary struct {
	manifest Manifest
	trie     *trie.Trie
	scores   *scores.Table[uint32]
}

// Manifest returns the container manifest.
func (d *Dictionary) Manifest() Manifest { return d.manifest }

// Trie exposes the frozen trie for direct segmentation probes.
func (d *Dictionary) Trie() *trie.Trie { return d.trie }

// Lookup finds a word's id and score by its UTF-8 surface form.
func (d *Dictionary) Lookup(word string) (uint32, float64, bool) {
	id, err := d.trie.FindWord(hangul.NewString(word))
	if err != nil || id == trie.NotFound {
		return trie.NotFound, 0, false
	}
	return id, d.scores.Retrieve(id), true
}

// Score returns the score stored for a word id.
func (d *Dictionary) Score(id uint32) (float64, bool) {
	if !d.scores.Exists(id) {
		return 0, false
	}
	return d.scores.Retrieve(id), true
}

// Segment builds the word-segmentation lattice of a sentence against
// this dictionary's vocabulary.
func (d *Dictionary) Segment(sentence *hangul.String) (*segment.Segmentations, error) {
	return segment.ForSentence(sentence, d.trie)
}

// WriteTo serializes the dictionary container: magic, u32 little-endian
// manifest length, msgpack manifest, trie blob, score table blob.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	var written int64

	n, err := w.Write(dictMagic[:])
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing dictionary magic: %w", err)
	}

	header, err := msgpack.Marshal(&d.manifest)
	if err != nil {
		return written, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(header))); err != nil {
		return written, fmt.Errorf("writing manifest length: %w", err)
	}
	written += 4
	n, err = w.Write(header)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing manifest: %w", err)
	}

	tn, err := d.trie.WriteTo(w)
	written += tn
	if err != nil {
		return written, err
	}
	sn, err := d.scores.WriteTo(w)
	written += sn
	if err != nil {
		return written, err
	}
	return written, nil
}

// ReadDictionary deserializes a container written by WriteTo.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("reading dictionary magic: %w", err)
	}
	if !bytes.Equal(magic[:], dictMagic[:]) {
		return nil, fmt.Errorf("not a dictionary container (magic %q)", magic)
	}

	var headerLen uint32
	if err := binary.Read(r, binary.LittleEndian, &headerLen); err != nil {
		return nil, fmt.Errorf("reading manifest length: %w", err)
	}
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var manifest Manifest
	if err := msgpack.Unmarshal(header, &manifest); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if manifest.Version > FormatVersion {
		return nil, fmt.Errorf("dictionary format version %d is newer than supported %d", manifest.Version, FormatVersion)
	}

	t, err := trie.ReadTrie(r)
	if err != nil {
		return nil, err
	}
	table, err := scores.ReadTable[uint32](r)
	if err != nil {
		return nil, err
	}

	log.Debugf("Dictionary loaded: %d words, trie %d bytes", manifest.WordCount, t.Size())
	return &Dictionary{manifest: manifest, trie: t, scores: table}, nil
}

// SaveFile writes the dictionary container to a file.
func (d *Dictionary) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dictionary file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := d.WriteTo(w); err != nil {
		return fmt.Errorf("writing dictionary file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing dictionary file %s: %w", path, err)
	}
	log.Debugf("Dictionary saved to %s: %d words", path, d.manifest.WordCount)
	return nil
}

// LoadFile reads a dictionary container from a file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary file %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDictionary(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("loading dictionary file %s: %w", path, err)
	}
	return d, nil
}
