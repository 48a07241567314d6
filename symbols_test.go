package morse

import (
	"reflect"
	"testing"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		char rune
		code string
		ok   bool
	}{
		{'A', ".-", true},
		{'Z', "--..", true},
		{'0', "-----", true},
		{'9', "----.", true},
		{' ', "/", true},
		{'a', "", false},
		{'#', "", false},
	}
	for _, tt := range tests {
		code, ok := CodeFor(tt.char)
		if code != tt.code || ok != tt.ok {
			t.Errorf("CodeFor(%q) = %q,%v; want %q,%v", tt.char, code, ok, tt.code, tt.ok)
		}
	}
}

func TestDefaultEntriesBijective(t *testing.T) {
	entries := DefaultEntries()
	if len(entries) != 37 {
		t.Fatalf("expected 37 entries, have %d", len(entries))
	}
	chars := make(map[rune]bool)
	codes := make(map[string]bool)
	for _, e := range entries {
		if chars[e.Char] || codes[e.Code] {
			t.Errorf("duplicate entry %q => %q", e.Char, e.Code)
		}
		chars[e.Char], codes[e.Code] = true, true
		if code, _ := CodeFor(e.Char); code != e.Code {
			t.Errorf("CodeFor(%q) disagrees with table: %q", e.Char, code)
		}
	}
	entries[0].Code = "changed"
	if DefaultEntries()[0].Code != ".-" {
		t.Errorf("DefaultEntries must return a copy")
	}
}

func TestEntriesFor(t *testing.T) {
	got := EntriesFor('B', 'a', 'A', '#', 'B')
	want := []Entry{{'A', ".-"}, {'B', "-..."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EntriesFor: got %v, want %v", got, want)
	}
	if got := EntriesFor(); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestCharacterFor(t *testing.T) {
	if r, ok := CharacterFor("...--"); !ok || r != '3' {
		t.Errorf("expected '3', got %q,%v", r, ok)
	}
	if r, ok := CharacterFor("/"); !ok || r != ' ' {
		t.Errorf("expected space, got %q,%v", r, ok)
	}
	for _, code := range []string{"", "..--", "......"} {
		if _, ok := CharacterFor(code); ok {
			t.Errorf("expected no character for %q", code)
		}
	}
}

func TestCodesWithPrefix(t *testing.T) {
	got := CodesWithPrefix("--.")
	want := []Entry{{'G', "--."}, {'Q', "--.-"}, {'Z', "--.."}, {'7', "--..."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CodesWithPrefix: got %v, want %v", got, want)
	}
	if got := CodesWithPrefix("x"); len(got) != 0 {
		t.Errorf("expected no completions, got %v", got)
	}
	all := CodesWithPrefix("")
	if len(all) != 37 || all[0].Code != "-" || all[1].Code != "." {
		t.Errorf("unexpected full listing %v", all)
	}
}
