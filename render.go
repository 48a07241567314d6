package morse

import (
	"fmt"
	"strings"
)

// Glyphs for drawing the trie structure.
const (
	branchLast  = "└── "
	branchInner = "├── "
	indentLast  = "    "
	indentInner = "│   "
)

const internalNode = "[internal node]"

// RenderStructure draws the trie as an indented tree, one node per line,
// depth first with the dot child before the dash child. Nodes carrying a
// character are drawn as
//
//	'E' (.)
//
// all other nodes as "[internal node]". An empty trie renders as "empty tree".
//
// The dot child counts as the last child of its parent only if there is no
// dash child.
func (t *Trie) RenderStructure() string {
	if t.Empty() {
		return "empty tree"
	}
	var sb strings.Builder
	t.render(&sb, root, "", true)
	return sb.String()
}

func (t *Trie) render(sb *strings.Builder, n int32, prefix string, isLast bool) {
	if n == absent {
		return
	}
	nd := &t.nodes[n]
	sb.WriteString(prefix)
	if isLast {
		sb.WriteString(branchLast)
	} else {
		sb.WriteString(branchInner)
	}
	if nd.assigned && nd.char != ' ' && nd.code != "" {
		fmt.Fprintf(sb, "'%c' (%s)\n", nd.char, nd.code)
	} else {
		sb.WriteString(internalNode + "\n")
	}
	if nd.left == absent && nd.right == absent {
		return
	}
	if isLast {
		prefix += indentLast
	} else {
		prefix += indentInner
	}
	t.render(sb, nd.left, prefix, nd.right == absent)
	t.render(sb, nd.right, prefix, true)
}
