/*
Package vocab assembles vocabularies and persists them as dictionaries:
a frozen jamo trie for segmentation, a score table keyed by word id,
and a msgpack manifest describing the container.
*/
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/danielslee/nansae-corelib/internal/logger"
	"github.com/danielslee/nansae-corelib/pkg/config"
	"github.com/danielslee/nansae-corelib/pkg/hangul"
	"github.com/danielslee/nansae-corelib/pkg/scores"
	"github.com/danielslee/nansae-corelib/pkg/trie"
)

var log = logger.New("vocab")

// Builder accumulates words with scores. Surface forms are tracked in a
// patricia trie for duplicate detection and prefix listing; the
// jamo-level radix trie is built alongside and frozen by Build.
type Builder struct {
	cfg    config.Build
	index  *patricia.Trie
	words  *trie.Builder
	scores *scores.Table[uint32]
	nextID uint32
	count  int
}

// NewBuilder creates a builder with the given build options.
func NewBuilder(cfg config.Build) *Builder {
	capacity := cfg.TableCapacity
	if capacity <= 0 {
		capacity = config.Default().Build.TableCapacity
	}
	return &Builder{
		cfg:    cfg,
		index:  patricia.NewTrie(),
		words:  trie.NewBuilder(),
		scores: scores.New[uint32](capacity),
	}
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int { return b.count }

// Add records a word with a score and returns its id. A word seen
// before keeps its id; its score is overwritten only when the builder
// was configured with ReplaceExisting.
func (b *Builder) Add(word string, score float64) (uint32, error) {
	if item := b.index.Get(patricia.Prefix(word)); item != nil {
		id := item.(uint32)
		if b.cfg.ReplaceExisting {
			b.scores.Insert(id, score)
		}
		return id, nil
	}

	id := b.nextID
	if _, err := b.words.AddWord(hangul.NewString(word), id, true); err != nil {
		return trie.NotFound, fmt.Errorf("adding %q: %w", word, err)
	}
	b.index.Insert(patricia.Prefix(word), id)
	b.scores.Insert(id, score)
	b.nextID++
	b.count++
	return id, nil
}

// WordsWithPrefix lists the surface forms sharing a UTF-8 prefix, in
// patricia visit order.
func (b *Builder) WordsWithPrefix(prefix string) []string {
	var words []string
	_ = b.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	return words
}

// ReadWordList ingests a word list, one entry per line: the word,
// optionally followed by a score column separated by whitespace. Blank
// lines and lines starting with # are skipped. Returns the number of
// entries added.
func (b *Builder) ReadWordList(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := fields[0]
		score := b.cfg.DefaultScore
		if len(fields) > 1 {
			parsed, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				log.Warnf("Line %d: unparsable score %q, using default", lineNo, fields[1])
			} else {
				score = parsed
			}
		}

		if score < b.cfg.MinScore {
			continue
		}

		if _, err := b.Add(word, score); err != nil {
			if b.cfg.SkipInvalid {
				log.Warnf("Line %d: skipping %q: %v", lineNo, word, err)
				continue
			}
			return added, fmt.Errorf("line %d: %w", lineNo, err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("reading word list: %w", err)
	}
	log.Debugf("Word list ingested: %d entries added, %d total", added, b.count)
	return added, nil
}

// Build freezes the vocabulary into a queryable dictionary. The builder
// remains usable; a later Build produces an independent dictionary.
func (b *Builder) Build(label string) *Dictionary {
	return &Dictionary{
		manifest: Manifest{
			Version:   FormatVersion,
			WordCount: b.count,
			Label:     label,
		},
		trie:   b.words.Freeze(),
		scores: b.scores.Clone(),
	}
}
