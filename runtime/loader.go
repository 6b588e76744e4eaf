package runtime

import (
	"bufio"
	"bytes"
	"fmt"
	"hangman-bot/errors"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Dictionary carries the result of the loading process including metadata for logging.
type Dictionary struct {
	Words     []string
	Languages []string
}

// DictionaryLoader reads one word per line from "<lang>.txt" files.
type DictionaryLoader struct {
	fs fs.FS
}

func NewDictionaryLoader(f fs.FS) *DictionaryLoader {
	return &DictionaryLoader{fs: f}
}

// LoadAll parses every .txt file of dir into a sorted list of unique, lowercased words.
// When languages is not empty only the matching files are read.
func (l *DictionaryLoader) LoadAll(dir string, languages ...string) (*Dictionary, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var loaded []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		// "es.txt" -> "es"
		lang := strings.TrimSuffix(entry.Name(), ".txt")
		if len(languages) > 0 && !slices.Contains(languages, lang) {
			continue
		}
		loaded = append(loaded, lang)

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if mtype := mimetype.Detect(data); !mtype.Is("text/plain") {
			return nil, fmt.Errorf("%s is %s: %w", entry.Name(), mtype.String(), errors.ErrNotTextFile)
		}

		// A scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if line != "" {
				uniqueWords[line] = struct{}{}
			}
		}

		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &Dictionary{
		Words:     words,
		Languages: loaded,
	}, nil
}
