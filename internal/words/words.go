// internal/words/words.go
//
// Word list loading and secret-word selection.
//
// Responsibilities:
//   - Read whitespace-separated tokens from a file, reader, or the embedded default list.
//   - Deduplicate them and fix an order (ascending, NFC-normalized) so that
//     selection by index is reproducible across runs.
//   - Pick the word at index mod count.
//
// Tokens are kept as they appear in the source: no case folding and no
// filtering, so the count matches what the list holds.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmptyList is returned when a source holds no words.
var ErrEmptyList = errors.New("words: word list is empty")

// List is a deduplicated word list in ascending order.
type List []string

// Parse reads every whitespace-separated token from r.
func Parse(r io.Reader) (List, error) {
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		seen[norm.NFC.String(sc.Text())] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}

	out := make(List, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	slices.Sort(out)
	return out, nil
}

// Load parses the word list at path.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Default parses the embedded word list.
func Default() (List, error) {
	r, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return Parse(r)
}

// Pick returns the word at index mod len(l). Negative indexes wrap around.
func (l List) Pick(index int) (string, error) {
	n := len(l)
	if n == 0 {
		return "", ErrEmptyList
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return l[i], nil
}

// Choose reads a word list from r and picks the word at index.
// It returns the number of distinct words along with the choice.
func Choose(r io.Reader, index int) (int, string, error) {
	l, err := Parse(r)
	if err != nil {
		return 0, "", err
	}
	w, err := l.Pick(index)
	return len(l), w, err
}

// ChooseFile is Choose over the file at path.
func ChooseFile(path string, index int) (int, string, error) {
	l, err := Load(path)
	if err != nil {
		return 0, "", err
	}
	w, err := l.Pick(index)
	return len(l), w, err
}
