package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/morse"
)

var errBlankInput = errors.New("please enter some text")

// session ties a trie to the characters processed last. Structure dumps
// show only these characters, or the whole trie if nothing has been
// processed yet.
type session struct {
	tree   *morse.Trie
	subset func(chars ...rune) *morse.Trie
	last   []rune // characters of the last processed text
}

func newSession(tree *morse.Trie, subset func(chars ...rune) *morse.Trie) *session {
	return &session{tree: tree, subset: subset}
}

// subsetOf builds partial tries from the codes stored in tree.
func subsetOf(tree *morse.Trie) func(chars ...rune) *morse.Trie {
	return func(chars ...rune) *morse.Trie {
		sub := morse.NewTrie(fmt.Sprintf("subset %q of %s", string(chars), tree.Identifier))
		for _, r := range chars {
			if r == ' ' {
				sub.Insert(r, morse.WordSeparator) // creates the root only
				continue
			}
			if code := tree.EncodeChar(r); code != "" {
				sub.Insert(r, code)
			}
		}
		return sub
	}
}

func (s *session) encode(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errBlankInput
	}
	encoded := s.tree.EncodeWord(text)
	s.last = morse.UniqueCharacters(text)
	return encoded, nil
}

func (s *session) decode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", errBlankInput
	}
	decoded := s.tree.DecodeWord(code)
	s.last = morse.UniqueCharacters(decoded)
	return decoded, nil
}

// structure returns a header and the structural dump of the trie in scope.
func (s *session) structure() (string, string) {
	if len(s.last) > 0 {
		return "Trie structure (processed characters)", s.subset(s.last...).RenderStructure()
	}
	return "Trie structure (complete)", s.tree.RenderStructure()
}

func (s *session) reset() {
	s.last = nil
}

func completions(prefix string) string {
	var sb strings.Builder
	for _, e := range morse.CodesWithPrefix(prefix) {
		char := string(e.Char)
		if e.Char == ' ' {
			char = "space"
		}
		fmt.Fprintf(&sb, "%-6s %s\n", e.Code, char)
	}
	return sb.String()
}

const shellHelp = `commands:
  encode TEXT      encode text to Morse code
  decode CODE      decode Morse code, codes separated by blanks
  tree             show the trie for the last processed text
  complete PREFIX  list codes starting with PREFIX
  reset            forget the last processed text
  help             show this help
  quit             leave the shell
`

var errQuit = errors.New("quit")

// exec runs one shell command line and returns its output.
func (s *session) exec(line string) (string, error) {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(command) {
	case "":
		return "", nil
	case "encode", "e":
		out, err := s.encode(arg)
		return out + "\n", err
	case "decode", "d":
		out, err := s.decode(arg)
		return out + "\n", err
	case "tree", "t":
		header, dump := s.structure()
		return header + "\n\n" + dump + "\n", nil
	case "complete", "c":
		return completions(arg), nil
	case "reset":
		s.reset()
		return "", nil
	case "help", "?":
		return shellHelp, nil
	case "quit", "exit", "q":
		return "", errQuit
	}
	return "", fmt.Errorf("unknown command %q, try 'help'", command)
}
