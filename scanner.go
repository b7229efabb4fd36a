package wordcount

import (
	"bufio"
	"errors"
	"io"

	lru "github.com/hashicorp/golang-lru"
)

const MAX_WORD_LEN = 64
const WORD_LRU_SZ = 4096

// ErrNilArgument is returned by CollectWords when it is handed a nil
// table or a nil stream. Words inserted before the failure are not
// rolled back.
var ErrNilArgument = errors.New(
	"wordcount: nil table or nil stream")

// A word is a maximal run of ASCII alphabetic bytes of length two or
// more. Runs of length one are discarded, and anything past
// MAX_WORD_LEN bytes of a run is dropped on the floor.

type Tokenizer struct {
	Cache      *lru.ARCCache
	MaxWordLen int
	LruHits    int
	LruMisses  int
}

// NewTokenizer
// Returns a Tokenizer with its normalization cache initialized.
func NewTokenizer() *Tokenizer {
	cache, _ := lru.NewARC(WORD_LRU_SZ)
	return &Tokenizer{
		Cache:      cache,
		MaxWordLen: MAX_WORD_LEN,
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// CountWords
// Scans the stream and returns the number of words it contains. The
// scan is a single pass in constant space; no words are materialized.
// An empty or unreadable stream counts zero words, and a read error
// mid-stream ends the scan as if the stream had ended there.
func CountWords(r io.Reader) int {
	if r == nil {
		return 0
	}
	br := byteReader(r)
	numWords := 0
	runLength := 0
	for {
		c, err := br.ReadByte()
		if err != nil {
			break
		}
		if isAlpha(c) {
			runLength++
		} else {
			if runLength > 1 {
				numWords++
			}
			runLength = 0
		}
	}
	// The stream may end mid-word.
	if runLength > 1 {
		numWords++
	}
	return numWords
}

// fold lowercases a raw run, going through the LRU so that repeated
// words share one normalized string. The run is already truncated to
// MaxWordLen by the scan loop.
func (tokenizer *Tokenizer) fold(run []byte) string {
	key := string(run)
	if lookup, ok := tokenizer.Cache.Get(key); ok {
		tokenizer.LruHits++
		return lookup.(string)
	}
	tokenizer.LruMisses++
	folded := make([]byte, len(run))
	for idx := range run {
		folded[idx] = toLower(run[idx])
	}
	word := string(folded)
	tokenizer.Cache.Add(key, word)
	return word
}

// CollectWords
// Scans the stream and folds every word into the table via
// Table.Increment. Words are lowercased and truncated to
// tokenizer.MaxWordLen bytes, so words that differ only past the
// truncation point land in the same entry. Returns ErrNilArgument if
// table or r is nil.
func (tokenizer *Tokenizer) CollectWords(table *Table, r io.Reader) error {
	if table == nil || r == nil {
		return ErrNilArgument
	}
	br := byteReader(r)
	run := make([]byte, 0, tokenizer.MaxWordLen)
	runLength := 0
	for {
		c, err := br.ReadByte()
		if err != nil {
			break
		}
		if isAlpha(c) {
			runLength++
			if len(run) < tokenizer.MaxWordLen {
				run = append(run, c)
			}
		} else {
			if runLength > 1 {
				table.Increment(tokenizer.fold(run))
			}
			run = run[:0]
			runLength = 0
		}
	}
	if runLength > 1 {
		table.Increment(tokenizer.fold(run))
	}
	return nil
}
