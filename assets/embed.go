package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// readBody returns the file without blank and "#" comment lines.
func readBody(name string) (io.Reader, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return strings.NewReader(b.String()), nil
}

// DefaultWords is the built-in word list used when no file is configured.
func DefaultWords() (io.Reader, error) {
	return readBody("words.txt")
}
