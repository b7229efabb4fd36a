package wordcount

import (
	"sort"
)

// Entry is one word and its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// LessFunc is a total order over entries, supplied by the caller to
// Table.Sort.
type LessFunc func(a, b Entry) bool

// ByCountThenWord orders by ascending count, breaking ties by
// ascending byte-wise word comparison. This is the order the
// frequency report is printed in.
func ByCountThenWord(a, b Entry) bool {
	if a.Count == b.Count {
		return a.Word < b.Word
	}
	return a.Count < b.Count
}

// Table
// Maps each distinct word to its occurrence count. Entries keep
// first-occurrence order until Sort reorders them. A Table is an
// owned value; create one with NewTable and pass it explicitly.
type Table struct {
	entries []Entry
	index   map[string]int
}

func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// Increment bumps the count for word, inserting a new entry with
// count 1 if the word has not been seen. New entries append.
func (table *Table) Increment(word string) {
	if at, ok := table.index[word]; ok {
		table.entries[at].Count++
		return
	}
	table.index[word] = len(table.entries)
	table.entries = append(table.entries, Entry{Word: word, Count: 1})
}

// Sort reorders the table in place under the supplied order and
// rebuilds the word index.
func (table *Table) Sort(less LessFunc) {
	sort.SliceStable(table.entries, func(i, j int) bool {
		return less(table.entries[i], table.entries[j])
	})
	for at := range table.entries {
		table.index[table.entries[at].Word] = at
	}
}

// ForEach visits every entry in current table order.
func (table *Table) ForEach(visit func(word string, count int)) {
	for at := range table.entries {
		visit(table.entries[at].Word, table.entries[at].Count)
	}
}

// Len returns the number of distinct words.
func (table *Table) Len() int {
	return len(table.entries)
}

// Total returns the sum of all counts, which equals the number of
// words fed through Increment.
func (table *Table) Total() int {
	total := 0
	for at := range table.entries {
		total += table.entries[at].Count
	}
	return total
}
