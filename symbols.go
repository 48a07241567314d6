package morse

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// WordSeparator is the code for a space between words.
const WordSeparator = "/"

// Entry pairs a character with its dot/dash code.
type Entry struct {
	Char rune
	Code string
}

// defaultEntries is the ITU table for letters, digits and space.
// Every code maps to exactly one character.
var defaultEntries = [...]Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
	{' ', WordSeparator},
}

// codeIndex maps codes back to table entries. It is filled once at package
// initialization and only read afterwards.
var codeIndex = newCodeIndex()

func newCodeIndex() *trie.Trie {
	index := trie.New()
	for _, e := range defaultEntries {
		index.Add(e.Code, e)
	}
	return index
}

// CodeFor returns the code for character r. It reports false if r is not
// one of A–Z, 0–9 or space.
func CodeFor(r rune) (string, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return defaultEntries[r-'A'].Code, true
	case r >= '0' && r <= '9':
		return defaultEntries[26+r-'0'].Code, true
	case r == ' ':
		return WordSeparator, true
	}
	return "", false
}

// DefaultEntries returns all 37 entries of the symbol table: letters,
// digits and space, in this order.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries[:])
	return entries
}

// EntriesFor returns the table entries for chars, in table order.
// Characters without a code are dropped silently.
func EntriesFor(chars ...rune) []Entry {
	wanted := make(map[rune]bool, len(chars))
	for _, r := range chars {
		wanted[r] = true
	}
	entries := make([]Entry, 0, len(wanted))
	for _, e := range defaultEntries {
		if wanted[e.Char] {
			entries = append(entries, e)
		}
	}
	return entries
}

// CharacterFor returns the character for a complete code.
func CharacterFor(code string) (rune, bool) {
	if code == "" {
		return 0, false
	}
	node, ok := codeIndex.Find(code)
	if !ok {
		return 0, false
	}
	return node.Meta().(Entry).Char, true
}

// CodesWithPrefix returns every entry whose code starts with prefix, shortest
// codes first. An empty prefix selects the whole table.
//
// Example:
//
//	"--." => [ G(--.), Q(--.-), Z(--..), 7(--...) ].
func CodesWithPrefix(prefix string) []Entry {
	var entries []Entry
	if prefix == "" {
		entries = DefaultEntries()
	} else {
		for _, code := range codeIndex.PrefixSearch(prefix) {
			if node, ok := codeIndex.Find(code); ok {
				entries = append(entries, node.Meta().(Entry))
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Code) != len(entries[j].Code) {
			return len(entries[i].Code) < len(entries[j].Code)
		}
		return strings.Compare(entries[i].Code, entries[j].Code) < 0
	})
	return entries
}
