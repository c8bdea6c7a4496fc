package genelist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
)

var gzipMagic = []byte{0x1f, 0x8b}

// readList reads one entry per line from path. Blank lines and lines
// starting with '#' are skipped, duplicates are dropped and the first-seen
// order is kept. Gzip-compressed files are decompressed transparently.
func readList(fsys afero.Fs, path string) ([]string, error) {
	fh, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("encountered the following error while opening the file: %w", err)
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	var r io.Reader = br
	if head, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(head, gzipMagic) {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("encountered the following error while trying to decompress the file: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var entries []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Only the first column counts; the rest may hold notes.
		entry := strings.Fields(line)[0]
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", path, err)
	}
	return entries, nil
}
