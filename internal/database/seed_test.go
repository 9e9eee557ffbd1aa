package database

import (
	"strings"
	"testing"
)

func TestDecodeWordsNewFormat(t *testing.T) {
	input := `[
		{"word": "kitab", "transliteration": "kitab", "meaning": "kitap", "example": "bir kitab", "category": "isim"},
		{"word": "kalem", "transliteration": "kalem", "meaning": "kalem"}
	]`

	words, err := decodeWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decodeWords: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("word count: got %d, want 2", len(words))
	}
	if words[0].Ottoman != "kitab" || words[0].Pronunciation != "kitab" || words[0].Turkish != "kitap" {
		t.Errorf("unexpected first word %+v", words[0])
	}
	if words[0].Example != "bir kitab" || words[0].Category != "isim" {
		t.Errorf("optional fields not carried: %+v", words[0])
	}
}

func TestDecodeWordsOldFormat(t *testing.T) {
	input := `[{"ottoman": "su", "pronunciation": "su", "turkish": "su"}]`

	words, err := decodeWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decodeWords: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("word count: got %d, want 1", len(words))
	}
	if words[0].Ottoman != "su" {
		t.Errorf("ottoman: got %q, want %q", words[0].Ottoman, "su")
	}
}

func TestDecodeWordsSkipsIncomplete(t *testing.T) {
	// Entries missing any required field are dropped, not fatal
	input := `[
		{"word": "kitab", "transliteration": "kitab", "meaning": "kitap"},
		{"word": "eksik"},
		{"transliteration": "yok", "meaning": "yok"}
	]`

	words, err := decodeWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decodeWords: %v", err)
	}
	if len(words) != 1 {
		t.Errorf("word count: got %d, want 1", len(words))
	}
}

func TestDecodeWordsBadJSON(t *testing.T) {
	if _, err := decodeWords(strings.NewReader("{not json")); err == nil {
		t.Error("decodeWords should reject malformed input")
	}
}
