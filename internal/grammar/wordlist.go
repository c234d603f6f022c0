// Package grammar builds syntactically templated sentences. Every choice it
// makes (template, words, modifier order, commas, punctuation, cluster size)
// is driven by bytes taken from an entropy-backed byte source.
package grammar

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Category identifies one of the four word lists.
type Category string

const (
	CategoryNouns      Category = "nouns"
	CategoryVerbs      Category = "verbs"
	CategoryAdjectives Category = "adjectives"
	CategoryAdverbs    Category = "adverbs"
)

// WordList is an ordered, non-empty list of words for one category.
// Immutable once loaded.
type WordList []string

// Lists holds the four category lists the engine draws from.
type Lists struct {
	Nouns      WordList
	Verbs      WordList
	Adjectives WordList
	Adverbs    WordList
}

// Validate reports the first empty category. An empty list would make every
// sentence invalid, so this is a fatal startup condition.
func (l Lists) Validate() error {
	for _, c := range []struct {
		category Category
		words    WordList
	}{
		{CategoryNouns, l.Nouns},
		{CategoryVerbs, l.Verbs},
		{CategoryAdjectives, l.Adjectives},
		{CategoryAdverbs, l.Adverbs},
	} {
		if len(c.words) == 0 {
			return fmt.Errorf("word list %q is empty", c.category)
		}
	}

	return nil
}

// LoadWordList reads a UTF-8 word list, one word per line, skipping blank
// lines. A missing or empty file is an error; there is no retry for these.
func LoadWordList(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words WordList
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}

	return words, nil
}

// LoadLists loads the four category files (nouns.txt, verbs.txt,
// adjectives.txt, adverbs.txt) from dir.
func LoadLists(dir string) (Lists, error) {
	var lists Lists
	for _, c := range []struct {
		category Category
		dst      *WordList
	}{
		{CategoryNouns, &lists.Nouns},
		{CategoryVerbs, &lists.Verbs},
		{CategoryAdjectives, &lists.Adjectives},
		{CategoryAdverbs, &lists.Adverbs},
	} {
		words, err := LoadWordList(filepath.Join(dir, string(c.category)+".txt"))
		if err != nil {
			return Lists{}, fmt.Errorf("loading %s: %w", c.category, err)
		}
		*c.dst = words
	}

	return lists, nil
}
