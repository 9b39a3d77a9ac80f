package segment

import (
	"errors"
	"testing"

	"github.com/danielslee/nansae-corelib/pkg/hangul"
	"github.com/danielslee/nansae-corelib/pkg/trie"
)

func dictTrie(t *testing.T) *trie.Trie {
	t.Helper()
	b := trie.NewBuilder()
	for _, w := range []struct {
		word string
		id   uint32
	}{
		{"한", 1}, {"한글", 2}, {"글", 3}, {"단", 4}, {"단어", 5},
	} {
		if _, err := b.AddWord(hangul.NewString(w.word), w.id, true); err != nil {
			t.Fatalf("AddWord(%s): %v", w.word, err)
		}
	}
	return b.Freeze()
}

func TestForSentence(t *testing.T) {
	str := hangul.NewString("symbol한글단어")
	str.EncapsulateNonHangul()

	s, err := ForSentence(str, dictTrie(t))
	if err != nil {
		t.Fatalf("ForSentence: %v", err)
	}

	want := "" +
		"  0 1 2 3 4\n" +
		"0 x        \n" +
		"1   x x    \n" +
		"2     x    \n" +
		"3       x x\n" +
		"4          "
	if got := s.DebugString(); got != want {
		t.Errorf("lattice:\n%s\nwant:\n%s", got, want)
	}
}

func TestForSentenceCells(t *testing.T) {
	str := hangul.NewString("symbol한글단어")
	str.EncapsulateNonHangul()

	s, err := ForSentence(str, dictTrie(t))
	if err != nil {
		t.Fatalf("ForSentence: %v", err)
	}

	set := map[[2]int]bool{
		{0, 0}: true, {1, 1}: true, {1, 2}: true,
		{2, 2}: true, {3, 3}: true, {3, 4}: true,
	}
	for i := 0; i < s.SentenceLen(); i++ {
		for j := i; j < s.SentenceLen(); j++ {
			got, err := s.Word(i, j)
			if err != nil {
				t.Fatalf("Word(%d,%d): %v", i, j, err)
			}
			if got != set[[2]int{i, j}] {
				t.Errorf("Word(%d,%d) = %v, want %v", i, j, got, set[[2]int{i, j}])
			}
		}
	}
}

func TestAccess(t *testing.T) {
	s := New(10)
	if ok, _ := s.Word(3, 4); ok {
		t.Error("fresh lattice should have no words")
	}
}

func TestAddWord(t *testing.T) {
	s := New(10)
	if err := s.AddWord(3, 4); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if ok, _ := s.Word(3, 4); !ok {
		t.Error("Word(3,4) should be set")
	}
}

func TestRemoveWord(t *testing.T) {
	s := New(10)
	s.AddWord(3, 4)
	s.RemoveWord(3, 4)
	if ok, _ := s.Word(3, 4); ok {
		t.Error("Word(3,4) should be cleared")
	}
}

func TestInvalidRange(t *testing.T) {
	s := New(10)
	if err := s.AddWord(4, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("start > end: err = %v, want ErrInvalidRange", err)
	}
	if err := s.AddWord(-1, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("negative start: err = %v, want ErrInvalidRange", err)
	}
	if err := s.AddWord(3, 10); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("end out of bounds: err = %v, want ErrInvalidRange", err)
	}
	if _, err := s.Word(5, 4); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Word with bad range: err = %v, want ErrInvalidRange", err)
	}
}

func TestWordsStartingAt(t *testing.T) {
	s := New(10)
	want := []int{2, 3, 5, 7}
	for _, end := range want {
		s.AddWord(2, end)
	}

	got := s.WordsStartingAt(2)
	if len(got) != len(want) {
		t.Fatalf("WordsStartingAt(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WordsStartingAt(2) = %v, want %v", got, want)
		}
	}
}

func TestWordsEndingAt(t *testing.T) {
	s := New(10)
	want := []int{7, 5, 3, 2} // descending start order is part of the contract
	for _, start := range want {
		s.AddWord(start, 9)
	}

	got := s.WordsEndingAt(9)
	if len(got) != len(want) {
		t.Fatalf("WordsEndingAt(9) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WordsEndingAt(9) = %v, want %v", got, want)
		}
	}
}

func TestDebugString(t *testing.T) {
	s := New(10)
	s.AddWord(0, 2)
	s.AddWord(0, 1)
	s.AddWord(1, 2)
	for _, e := range []int{2, 3, 5, 7} {
		s.AddWord(2, e)
	}
	s.AddWord(3, 7)
	s.AddWord(5, 7)
	s.AddWord(7, 9)

	want := "" +
		"  0 1 2 3 4 5 6 7 8 9\n" +
		"0   x x              \n" +
		"1     x              \n" +
		"2     x x   x   x    \n" +
		"3               x    \n" +
		"4                    \n" +
		"5               x    \n" +
		"6                    \n" +
		"7                   x\n" +
		"8                    \n" +
		"9                    "
	if got := s.DebugString(); got != want {
		t.Errorf("debug string:\n%q\nwant:\n%q", got, want)
	}
}
