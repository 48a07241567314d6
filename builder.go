package morse

import (
	"fmt"
	"io"
	"strings"
)

// EntryReader yields code table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (char rune, code string, err error)
}

// LoadEntries builds a trie from a streaming, format-agnostic source.
//
// Codes must consist of dots and dashes only. The word separator "/" is
// accepted but skipped, as spaces are handled by encoding directly. Any
// other code is rejected with an error.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package codetable to parse concrete formats and feed this API.
func LoadEntries(name string, reader EntryReader) (tree *Trie, err error) {
	tree = NewTrie(name)
	var char rune
	var code string
	for {
		char, code, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if code == WordSeparator {
			tracer().Debugf("skipping word separator entry for %q", char)
			continue
		}
		if !validCode(code) {
			err = fmt.Errorf("invalid code %q for character %q", code, char)
			tracer().Errorf("%v", err)
			return nil, err
		}
		tree.Insert(char, code)
	}
	stats := tree.Stats()
	tracer().Infof("morse trie %q: nodes=%d assigned=%d depth=%d fill=%.2f",
		name, stats.Nodes, stats.Assigned, stats.MaxDepth, stats.FillRatio())
	return tree, nil
}

func validCode(code string) bool {
	return code != "" && strings.Trim(code, ".-") == ""
}

// BuildDefaultTree returns a trie holding all entries of the default table.
func BuildDefaultTree() *Trie {
	return buildTree("default", DefaultEntries())
}

// BuildTreeForCharacters returns a trie restricted to chars. Characters
// without a code are ignored.
func BuildTreeForCharacters(chars ...rune) *Trie {
	return buildTree(fmt.Sprintf("subset %q", string(chars)), EntriesFor(chars...))
}

// buildTree inserts entries literally, as Insert would. The word separator
// creates the root but is never assigned.
func buildTree(name string, entries []Entry) *Trie {
	tree := NewTrie(name)
	for _, e := range entries {
		tree.Insert(e.Char, e.Code)
	}
	tracer().Debugf("built %s", tree)
	return tree
}

// UniqueCharacters returns the characters of text which have a code, in
// order of first occurrence. text is upper-cased first.
//
// Example:
//
//	"Hello, World" => [ H E L O ' ' W R D ].
func UniqueCharacters(text string) []rune {
	seen := make(map[rune]bool)
	var chars []rune
	for _, r := range strings.ToUpper(text) {
		if _, ok := CodeFor(r); !ok || seen[r] {
			continue
		}
		seen[r] = true
		chars = append(chars, r)
	}
	return chars
}

// EntrySlice adapts a slice of entries to EntryReader.
type EntrySlice struct {
	entries []Entry
	index   int
}

// NewEntrySlice creates an EntryReader for entries.
func NewEntrySlice(entries []Entry) *EntrySlice {
	return &EntrySlice{entries: entries}
}

// Next is part of interface EntryReader.
func (s *EntrySlice) Next() (rune, string, error) {
	if s.index >= len(s.entries) {
		return 0, "", io.EOF
	}
	e := s.entries[s.index]
	s.index++
	return e.Char, e.Code, nil
}
