package database

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/example/lugat/pkg/models"
)

// seedWord accepts both field layouts found in word files: the newer
// word/transliteration/meaning keys and the older
// ottoman/pronunciation/turkish ones.
type seedWord struct {
	Word            string `json:"word"`
	Ottoman         string `json:"ottoman"`
	Transliteration string `json:"transliteration"`
	Pronunciation   string `json:"pronunciation"`
	Meaning         string `json:"meaning"`
	Turkish         string `json:"turkish"`
	Example         string `json:"example"`
	Category        string `json:"category"`
}

func (s seedWord) toWord() models.Word {
	word := models.Word{
		Ottoman:       s.Ottoman,
		Pronunciation: s.Pronunciation,
		Turkish:       s.Turkish,
		Example:       s.Example,
		Category:      s.Category,
	}
	if word.Ottoman == "" {
		word.Ottoman = s.Word
	}
	if word.Pronunciation == "" {
		word.Pronunciation = s.Transliteration
	}
	if word.Turkish == "" {
		word.Turkish = s.Meaning
	}
	return word
}

// decodeWords parses a word file, dropping entries that lack any of the
// three required fields.
func decodeWords(r io.Reader) ([]models.Word, error) {
	var raw []seedWord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse word file: %v", err)
	}

	var words []models.Word
	for _, s := range raw {
		word := s.toWord()
		if word.Ottoman == "" || word.Pronunciation == "" || word.Turkish == "" {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// SeedWordsFromFile populates an empty word bank from a JSON file and
// returns how many words were inserted. A missing file or an already
// populated table is not an error; both leave the bank untouched.
func SeedWordsFromFile(path string) (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	if count > 0 {
		return 0, nil
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open word file: %v", err)
	}
	defer file.Close()

	words, err := decodeWords(file)
	if err != nil {
		return 0, err
	}

	repo := NewWordRepository()
	for i := range words {
		if err := repo.Create(&words[i]); err != nil {
			return i, err
		}
	}
	return len(words), nil
}
