/*
Package morse converts text to and from Morse code.

Codes are kept in a binary trie: every dot descends to the left child, every
dash to the right child. The node reached by walking a code carries the
character for that code, if one has been inserted. Nodes without a character
are pure routing nodes.

A trie is built once and read many times:

	tree := morse.BuildDefaultTree()
	tree.EncodeWord("sos")        // "... --- ..."
	tree.DecodeWord("... --- ...") // "SOS"

Decoding is best effort. A code which does not lead to a character decodes
to '?', so a partly garbled message still decodes for all intact tokens.
Characters without a code are dropped during encoding.

The default symbol table covers the letters A–Z, the digits 0–9 and space.
Space is encoded as the word separator "/" and never enters the trie.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package morse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morse'
func tracer() tracing.Trace {
	return tracing.Select("morse")
}
