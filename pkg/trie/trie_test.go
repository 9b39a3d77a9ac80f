package trie

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
)

func colorTrie(t *testing.T) *Trie {
	t.Helper()
	b := NewBuilder()
	words := []struct {
		word string
		id   uint32
	}{
		{"빨", 7},
		{"빨갛", 0},
		{"빨간", 1},
		{"빨개", 2},
		{"파랗", 3},
		{"파란", 4},
		{"빨래", 5},
		{"빨리", 6},
	}
	for _, w := range words {
		_, err := b.AddWord(hangul.NewString(w.word), w.id, true)
		require.NoError(t, err)
	}
	return b.Freeze()
}

func find(t *testing.T, tr *Trie, word string) uint32 {
	t.Helper()
	id, err := tr.FindWord(hangul.NewString(word))
	require.NoError(t, err)
	return id
}

func TestFindWord(t *testing.T) {
	tr := colorTrie(t)

	assert.Equal(t, uint32(1), find(t, tr, "빨간"))
	assert.Equal(t, uint32(3), find(t, tr, "파랗"))
	assert.Equal(t, uint32(7), find(t, tr, "빨"))
	assert.Equal(t, NotFound, find(t, tr, "빨가"))
	assert.Equal(t, NotFound, find(t, tr, "빨간색"))
	assert.Equal(t, NotFound, find(t, tr, "글"))
}

func TestFindWordNonHangul(t *testing.T) {
	tr := colorTrie(t)
	_, err := tr.FindWord(hangul.NewString("red"))
	assert.ErrorIs(t, err, hangul.ErrNotHangul)
}

func TestFindWordPrefixes(t *testing.T) {
	b := NewBuilder()
	for _, w := range []struct {
		word string
		id   uint32
	}{
		{"빨", 7}, {"빨갛", 0}, {"빨간", 1}, {"빨개", 2},
		{"파랗", 3}, {"파란", 4}, {"빨래", 5}, {"빨리", 6}, {"파", 9},
	} {
		_, err := b.AddWord(hangul.NewString(w.word), w.id, true)
		require.NoError(t, err)
	}
	tr := b.Freeze()

	prefixes, err := tr.FindWordPrefixes(hangul.NewString("빨간색"))
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	assert.True(t, prefixes[0].Word.Equal(hangul.NewString("빨")))
	assert.Equal(t, uint32(7), prefixes[0].ID)
	assert.True(t, prefixes[1].Word.Equal(hangul.NewString("빨간")))
	assert.Equal(t, uint32(1), prefixes[1].ID)

	prefixes, err = tr.FindWordPrefixes(hangul.NewString("파랗다"))
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	assert.True(t, prefixes[0].Word.Equal(hangul.NewString("파")))
	assert.True(t, prefixes[1].Word.Equal(hangul.NewString("파랗")))
}

func TestFindWordPrefixesOrder(t *testing.T) {
	// prefix hits come shortest first, in descent order
	b := NewBuilder()
	vocab := map[string]uint32{"한": 1, "한글": 2, "글": 3, "단": 4, "단어": 5}
	for word, id := range vocab {
		_, err := b.AddWord(hangul.NewString(word), id, true)
		require.NoError(t, err)
	}
	tr := b.Freeze()

	prefixes, err := tr.FindWordPrefixes(hangul.NewString("한글단어"))
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	assert.True(t, prefixes[0].Word.Equal(hangul.NewString("한")))
	assert.Equal(t, uint32(1), prefixes[0].ID)
	assert.True(t, prefixes[1].Word.Equal(hangul.NewString("한글")))
	assert.Equal(t, uint32(2), prefixes[1].ID)
}

func TestWriteLoad(t *testing.T) {
	tr := colorTrie(t)

	var buf bytes.Buffer
	_, err := tr.WriteTo(&buf)
	require.NoError(t, err)

	tr2, err := ReadTrie(&buf)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), find(t, tr2, "빨간"))
	assert.Equal(t, uint32(3), find(t, tr2, "파랗"))
	assert.Equal(t, NotFound, find(t, tr2, "빨가"))
	assert.Equal(t, NotFound, find(t, tr2, "빨간색"))
}

func TestReadTrieTruncated(t *testing.T) {
	tr := colorTrie(t)
	var buf bytes.Buffer
	_, err := tr.WriteTo(&buf)
	require.NoError(t, err)

	truncated := buf.Bytes()[:buf.Len()/2]
	_, err = ReadTrie(bytes.NewReader(truncated))
	assert.Error(t, err)
}

func TestDoubleInsert(t *testing.T) {
	b := NewBuilder()
	for _, w := range []struct {
		word string
		id   uint32
	}{
		{"빨갛", 0}, {"빨간", 1}, {"빨개", 2}, {"파랗", 3},
		{"파란", 4}, {"빨래", 5}, {"빨리", 6},
	} {
		_, err := b.AddWord(hangul.NewString(w.word), w.id, true)
		require.NoError(t, err)
	}

	// replace=false returns the id already in place
	for _, w := range []struct {
		word string
		id   uint32
	}{
		{"빨개", 2}, {"파랗", 3}, {"빨래", 5}, {"빨리", 6},
	} {
		id, err := b.AddWord(hangul.NewString(w.word), 0, false)
		require.NoError(t, err)
		assert.Equal(t, w.id, id, "replace=false on %s", w.word)
	}

	tr := b.Freeze()
	assert.Equal(t, uint32(1), find(t, tr, "빨간"))
	assert.Equal(t, uint32(3), find(t, tr, "파랗"))
	assert.Equal(t, NotFound, find(t, tr, "빨가"))
}

func TestDoubleInsertViaTerminator(t *testing.T) {
	// re-inserting words that live in empty-label children keeps their ids
	b := NewBuilder()
	insert := func(word string, id uint32) uint32 {
		got, err := b.AddWord(hangul.NewString(word), id, false)
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, uint32(0), insert("자기완성", 0))
	assert.Equal(t, uint32(1), insert("자", 1))
	assert.Equal(t, uint32(2), insert("자기", 2))

	assert.Equal(t, uint32(0), insert("자기완성", 9))
	assert.Equal(t, uint32(1), insert("자", 9))
	assert.Equal(t, uint32(2), insert("자기", 9))

	tr := b.Freeze()
	assert.Equal(t, uint32(1), find(t, tr, "자"))
	assert.Equal(t, uint32(2), find(t, tr, "자기"))
	assert.Equal(t, uint32(0), find(t, tr, "자기완성"))
}

func TestReplace(t *testing.T) {
	b := NewBuilder()
	_, err := b.AddWord(hangul.NewString("한"), 1, true)
	require.NoError(t, err)

	id, err := b.AddWord(hangul.NewString("한"), 9, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), id)

	tr := b.Freeze()
	assert.Equal(t, uint32(9), find(t, tr, "한"))
}

func TestLeafDemotion(t *testing.T) {
	// inserting an extension of an existing leaf keeps both retrievable
	b := NewBuilder()
	_, err := b.AddWord(hangul.NewString("한"), 1, true)
	require.NoError(t, err)
	_, err = b.AddWord(hangul.NewString("한글"), 2, true)
	require.NoError(t, err)

	tr := b.Freeze()
	assert.Equal(t, uint32(1), find(t, tr, "한"))
	assert.Equal(t, uint32(2), find(t, tr, "한글"))
}

func TestWalk(t *testing.T) {
	tr := colorTrie(t)

	// indexed by the ids colorTrie assigns
	words := []string{"빨갛", "빨간", "빨개", "파랗", "파란", "빨래", "빨리", "빨"}
	seen := make(map[uint32]bool)
	tr.Walk(func(word *hangul.String, id uint32) bool {
		require.Less(t, int(id), len(words))
		assert.True(t, word.Equal(hangul.NewString(words[id])),
			"id %d reconstructed as %q", id, word)
		seen[id] = true
		return true
	})
	assert.Len(t, seen, len(words))
}

func TestWalkEarlyStop(t *testing.T) {
	tr := colorTrie(t)
	visited := 0
	tr.Walk(func(word *hangul.String, id uint32) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestEmptyTrie(t *testing.T) {
	tr := NewBuilder().Freeze()
	assert.Equal(t, NotFound, find(t, tr, "한"))

	prefixes, err := tr.FindWordPrefixes(hangul.NewString("한"))
	require.NoError(t, err)
	assert.Empty(t, prefixes)

	tr.Walk(func(word *hangul.String, id uint32) bool {
		t.Fatal("walk of an empty trie should not visit anything")
		return false
	})

	var buf bytes.Buffer
	_, err = tr.WriteTo(&buf)
	require.NoError(t, err)
	tr2, err := ReadTrie(&buf)
	require.NoError(t, err)
	assert.Equal(t, NotFound, find(t, tr2, "한"))
}

func TestThaw(t *testing.T) {
	tr := colorTrie(t)

	b := tr.Builder()
	_, err := b.AddWord(hangul.NewString("하양"), 8, true)
	require.NoError(t, err)
	tr2 := b.Freeze()

	assert.Equal(t, uint32(8), find(t, tr2, "하양"))
	assert.Equal(t, uint32(1), find(t, tr2, "빨간"))
	assert.Equal(t, uint32(7), find(t, tr2, "빨"))

	// the original frozen trie is untouched
	assert.Equal(t, NotFound, find(t, tr, "하양"))
}

func TestAddWordNonHangul(t *testing.T) {
	b := NewBuilder()
	_, err := b.AddWord(hangul.NewString("latin"), 1, true)
	assert.True(t, errors.Is(err, hangul.ErrNotHangul))
}
