/*
Package codetable reads Morse code tables in a plain text format.

A table holds one entry per line, a character followed by its code:

	% name: itu-basic
	A .-
	B -...
	space /

Lines starting with '%' are comments; a comment of the form "% name: …"
names the table. The character field "space" stands for the blank.
Lower-case letters are upper-cased.
*/
package codetable

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/morse"
)

const nameTag = "% name: "

// Reader streams code table entries from a text source.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

// LoadTrie parses table data and returns a ready-to-use trie.
// If the table names itself, this name is used instead of name.
func LoadTrie(name string, reader io.Reader) (*morse.Trie, error) {
	r := NewReader(reader)
	tree, err := morse.LoadEntries(name, r)
	if err != nil {
		return nil, err
	}
	if r.Identifier() != "" {
		tree.Identifier = r.Identifier()
	}
	return tree, nil
}

// NewReader creates a Reader for table data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the table name, if the table has one and it has been
// read already.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (character, code).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (rune, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, nameTag) {
			r.identifier = strings.TrimSpace(line[len(nameTag):])
			continue
		}
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, "", fmt.Errorf("line %d: expected character and code, have %q", r.line, line)
		}
		char, err := decodeCharField(fields[0])
		if err != nil {
			return 0, "", fmt.Errorf("line %d: %w", r.line, err)
		}
		return char, fields[1], nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", err
	}
	return 0, "", io.EOF
}

func decodeCharField(field string) (rune, error) {
	if strings.EqualFold(field, "space") {
		return ' ', nil
	}
	if utf8.RuneCountInString(field) != 1 {
		return 0, fmt.Errorf("character field must hold a single character, have %q", field)
	}
	r, _ := utf8.DecodeRuneInString(field)
	return unicode.ToUpper(r), nil
}
