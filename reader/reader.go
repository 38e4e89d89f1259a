// Package reader holds the glue shared by the corpus dialect readers:
// sentence block scanning, file and directory expansion, corpus escape
// decoding and the unified corpus format error.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/srlgrob/sentence"
)

// Corpus is a dialect reader. Read accepts a file path or a directory
// path; directories recurse and are filtered by the dialect's filename
// suffix. Sentences are returned in first-encountered order.
type Corpus interface {
	Read(path string) ([]*sent.Sentence, error)
	ReadFile(path string) ([]*sent.Sentence, error)
}

// maxLineSize bounds a single corpus line. Role columns grow with the
// number of predicates but stay far below this.
const maxLineSize = 1024 * 1024

// Blocks scans r incrementally and calls fn once per blank-line
// separated block of lines. line is the 1-based line number of the first
// line of the block. Comment lines are delivered as part of the block;
// the dialects decide what a comment means. Working memory is bounded by
// the largest single block.
func Blocks(r io.Reader, fn func(lines []string, line int) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var block []string
	start := 0
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			if len(block) > 0 {
				if err := fn(block, start); err != nil {
					return err
				}
				block = nil
			}
			continue
		}
		if len(block) == 0 {
			start = n
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(block) > 0 {
		return fn(block, start)
	}
	return nil
}

// Walk expands path to the corpus files to read. A single file is
// returned as is; a directory recurses and keeps files matching the
// dialect suffix, in lexical order so corpus output is reproducible.
func Walk(path, suffix string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// escapes are the PTB-style codes some corpora use for bracket, brace
// and quote characters in token surface forms.
var escapes = map[string]string{
	"-LRB-": "(",
	"-RRB-": ")",
	"-LSB-": "[",
	"-RSB-": "]",
	"-LCB-": "{",
	"-RCB-": "}",
	"``":    `"`,
	"''":    `"`,
}

// DecodeEscapes replaces a PTB escape code with its literal punctuation
// character. Forms that are not escape codes pass through unchanged.
func DecodeEscapes(form string) string {
	if lit, ok := escapes[form]; ok {
		return lit
	}
	return form
}

// FormatError reports a malformed corpus file: a line with fewer columns
// than the dialect requires, or annotation that does not resolve. It
// aborts reading the file; a partially built sentence is never returned.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Formatf builds a FormatError for the given file position.
func Formatf(path string, line int, format string, args ...any) *FormatError {
	return &FormatError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}
