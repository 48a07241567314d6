package morse

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuildDefaultTreeStats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "morse")
	defer teardown()
	//
	stats := BuildDefaultTree().Stats()
	if stats.Nodes != 40 || stats.Assigned != 36 || stats.MaxDepth != 5 {
		t.Errorf("unexpected default trie stats %+v", stats)
	}
	if fill := stats.FillRatio(); fill <= 0.85 || fill > 1 {
		t.Errorf("expected fill ratio of 0.9, got %f", fill)
	}
}

func TestBuildTreeForCharacters(t *testing.T) {
	tree := BuildTreeForCharacters('A', 'B')
	if code := tree.EncodeChar('A'); code != ".-" {
		t.Errorf("expected code for A, got %q", code)
	}
	if code := tree.EncodeChar('B'); code != "-..." {
		t.Errorf("expected code for B, got %q", code)
	}
	if code := tree.EncodeChar('C'); code != "" {
		t.Errorf("expected no code for C, got %q", code)
	}
	if r := tree.DecodeChar("."); r != NotFound {
		t.Errorf("E is not part of the subset, decoded %q", r)
	}
}

func TestLoadEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "morse")
	defer teardown()
	//
	tree, err := LoadEntries("slice", NewEntrySlice(DefaultEntries()))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Identifier != "slice" {
		t.Errorf("identifier not set: %q", tree.Identifier)
	}
	if got := tree.EncodeWord("sos now"); got != "... --- ... / -. --- .--" {
		t.Errorf("unexpected encoding %q", got)
	}
	if !reflect.DeepEqual(tree.Stats(), BuildDefaultTree().Stats()) {
		t.Errorf("loaded trie differs from default trie")
	}
}

func TestLoadEntriesRejectsInvalidCode(t *testing.T) {
	_, err := LoadEntries("broken", NewEntrySlice([]Entry{{'A', ".-"}, {'B', "-_.."}}))
	if err == nil {
		t.Fatalf("expected error for invalid code")
	}
	_, err = LoadEntries("blank", NewEntrySlice([]Entry{{'A', ""}}))
	if err == nil {
		t.Fatalf("expected error for empty code")
	}
}

type failingReader struct{}

var errBroken = errors.New("broken stream")

func (failingReader) Next() (rune, string, error) {
	return 0, "", errBroken
}

func TestLoadEntriesReaderError(t *testing.T) {
	if _, err := LoadEntries("failing", failingReader{}); !errors.Is(err, errBroken) {
		t.Errorf("expected reader error, got %v", err)
	}
	r := NewEntrySlice(nil)
	if _, _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF from empty slice, got %v", err)
	}
}

func TestUniqueCharacters(t *testing.T) {
	got := UniqueCharacters("Hello, World")
	want := []rune("HELO WRD")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", string(got), string(want))
	}
	if got := UniqueCharacters("#!?"); len(got) != 0 {
		t.Errorf("expected no characters, got %q", string(got))
	}
}
