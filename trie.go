package morse

import (
	"fmt"
	"strings"
)

// NotFound is the result of decoding a code which does not lead to a character.
const NotFound = '?'

const (
	dot  = '.'
	dash = '-'
)

const (
	absent = 0 // child index denoting "no child"
	root   = 1 // arena index of the root node
)

// node is one position in dot/dash space. Children are arena indices,
// with 0 meaning "no child".
type node struct {
	char     rune
	code     string // code leading from the root to this node
	assigned bool   // true if some inserted code ends here
	left     int32  // reached by a dot
	right    int32  // reached by a dash
}

// Trie is a binary Morse trie. The zero value is an empty trie, ready to use.
//
// A trie is built once and read many times. Reads may run concurrently as
// long as no Insert is running at the same time.
type Trie struct {
	nodes      []node // arena; slot 0 is unused, the root lives at slot 1
	Identifier string // names the source of the entries
}

// NewTrie creates an empty trie.
func NewTrie(name string) *Trie {
	return &Trie{Identifier: name}
}

// Empty reports whether nothing has been inserted yet.
func (t *Trie) Empty() bool {
	return t == nil || len(t.nodes) <= root
}

func (t *Trie) newNode() int32 {
	t.nodes = append(t.nodes, node{})
	return int32(len(t.nodes) - 1)
}

// Insert stores character r under code. Each '.' descends left and each '-'
// descends right, creating nodes as needed. Inserting an empty code assigns r
// to the root; inserting a code twice overwrites the earlier character.
//
// A symbol other than '.' or '-' aborts the walk and nothing is assigned.
// Insert returns false in this case.
func (t *Trie) Insert(r rune, code string) bool {
	if t.Empty() {
		t.nodes = make([]node, root, 64)
		t.newNode()
	}
	n := int32(root)
	for i, symbol := range code {
		var next int32
		switch symbol {
		case dot:
			if next = t.nodes[n].left; next == absent {
				next = t.newNode()
				t.nodes[n].left = next
			}
		case dash:
			if next = t.nodes[n].right; next == absent {
				next = t.newNode()
				t.nodes[n].right = next
			}
		default:
			tracer().Debugf("cannot insert %q: invalid symbol %q at position %d in %q", r, symbol, i, code)
			return false
		}
		n = next
	}
	if t.nodes[n].assigned && t.nodes[n].char != r {
		tracer().Debugf("code %q re-assigned from %q to %q", code, t.nodes[n].char, r)
	}
	t.nodes[n].char = r
	t.nodes[n].code = code
	t.nodes[n].assigned = true
	return true
}

// walk follows code from the root and returns the arena index of the node
// reached, or absent.
func (t *Trie) walk(code string) int32 {
	if t.Empty() {
		return absent
	}
	n := int32(root)
	for _, symbol := range code {
		switch symbol {
		case dot:
			n = t.nodes[n].left
		case dash:
			n = t.nodes[n].right
		default:
			return absent
		}
		if n == absent {
			return absent
		}
	}
	return n
}

// DecodeChar returns the character for code. It returns NotFound if code
// contains a symbol other than '.' or '-', leaves the trie, or ends at a node
// without a character.
func (t *Trie) DecodeChar(code string) rune {
	n := t.walk(code)
	if n == absent || !t.nodes[n].assigned {
		return NotFound
	}
	return t.nodes[n].char
}

// DecodeWord decodes a sequence of codes separated by ASCII whitespace.
// Tokens are decoded independently and concatenated; unknown tokens show up
// as NotFound. Other Unicode spaces are part of a token.
//
// Example:
//
//	"... --- ..." => "SOS".
func (t *Trie) DecodeWord(input string) string {
	tokens := strings.FieldsFunc(input, isASCIISpace)
	var sb strings.Builder
	sb.Grow(len(tokens))
	for _, token := range tokens {
		sb.WriteRune(t.DecodeChar(token))
	}
	return sb.String()
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// EncodeChar returns the code for character r, or "" if r is not in the trie.
// A character assigned to the root (empty code) is never found.
func (t *Trie) EncodeChar(r rune) string {
	if t.Empty() {
		return ""
	}
	return t.findCode(root, r)
}

// findCode searches the subtree at n in pre-order, left before right.
func (t *Trie) findCode(n int32, r rune) string {
	if n == absent {
		return ""
	}
	nd := &t.nodes[n]
	if nd.assigned && nd.char == r && nd.code != "" {
		return nd.code
	}
	if code := t.findCode(nd.left, r); code != "" {
		return code
	}
	return t.findCode(nd.right, r)
}

// EncodeWord encodes text, which is upper-cased first. Codes of adjacent
// characters are separated by a single space, a space character becomes
// " / ". Characters without a code are skipped.
//
// Example:
//
//	"Hi there" => ".... .. / - .... . .-. .".
func (t *Trie) EncodeWord(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	upper := []rune(strings.ToUpper(text))
	var sb strings.Builder
	for i, r := range upper {
		if r == ' ' {
			sb.WriteString(" " + WordSeparator + " ")
			continue
		}
		code := t.EncodeChar(r)
		if code == "" {
			tracer().Debugf("no code for %q, skipped", r)
			continue
		}
		sb.WriteString(code)
		if i+1 < len(upper) && upper[i+1] != ' ' {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

func (t *Trie) String() string {
	stats := t.Stats()
	return fmt.Sprintf("MorseTrie(%s: nodes=%d,assigned=%d,depth=%d)",
		t.name(), stats.Nodes, stats.Assigned, stats.MaxDepth)
}

func (t *Trie) name() string {
	if t == nil || t.Identifier == "" {
		return "unnamed"
	}
	return t.Identifier
}
